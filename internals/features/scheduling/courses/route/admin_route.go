// file: internals/features/scheduling/courses/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/courses/controller"
	"campusku_backend/internals/features/scheduling/courses/service"
)

// CourseAdminRoutes mounts course CRUD, the scheduled-count endpoint and the
// six relation families.
func CourseAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewCourseController(db, v)

	g := r.Group("/courses")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/scheduled-count", ctl.AdjustScheduledCount)

	relations := []struct {
		prefix string
		rel    service.RelKind
	}{
		{"/compulsory-faculty", service.RelCompulsoryFaculty},
		{"/compulsory-halls", service.RelCompulsoryHalls},
		{"/compulsory-faculty-groups", service.RelCompulsoryFacultyGroups},
		{"/compulsory-hall-groups", service.RelCompulsoryHallGroups},
		{"/enrolled-students", service.RelEnrolledStudents},
		{"/enrolled-student-groups", service.RelEnrolledStudentGroups},
	}
	for _, it := range relations {
		g.Get("/:id"+it.prefix, ctl.ListLinks(it.rel))
		g.Post("/:id"+it.prefix, ctl.AddLinks(it.rel))
		g.Delete("/:id"+it.prefix, ctl.RemoveLinks(it.rel))
	}
}
