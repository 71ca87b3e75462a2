// file: internals/features/scheduling/resources/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/resources/controller"
)

// ResourceAdminRoutes mounts students, faculty and halls.
func ResourceAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	students := controller.NewStudentController(db, v)
	sg := r.Group("/students")
	sg.Post("/", students.Create)
	sg.Get("/", students.List)
	sg.Get("/:id", students.GetByID)
	sg.Patch("/:id", students.Patch)
	sg.Delete("/:id", students.Delete)

	faculty := controller.NewFacultyController(db, v)
	fg := r.Group("/faculty")
	fg.Post("/", faculty.Create)
	fg.Get("/", faculty.List)
	fg.Get("/:id", faculty.GetByID)
	fg.Patch("/:id", faculty.Patch)
	fg.Delete("/:id", faculty.Delete)

	halls := controller.NewHallController(db, v)
	hg := r.Group("/halls")
	hg.Post("/", halls.Create)
	hg.Get("/", halls.List)
	hg.Get("/:id", halls.GetByID)
	hg.Patch("/:id", halls.Patch)
	hg.Delete("/:id", halls.Delete)
}
