// file: internals/features/scheduling/groups/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/groups/controller"
	"campusku_backend/internals/features/scheduling/groups/service"
)

// GroupAdminRoutes mounts the three group families; one controller per kind.
func GroupAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	mount(r, "/student-groups", controller.NewGroupController(db, v, service.StudentKind))
	mount(r, "/faculty-groups", controller.NewGroupController(db, v, service.FacultyKind))
	mount(r, "/hall-groups", controller.NewGroupController(db, v, service.HallKind))
}

func mount(r fiber.Router, prefix string, ctl *controller.GroupController) {
	g := r.Group(prefix)
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/members", ctl.AddMembers)
	g.Delete("/:id/members", ctl.RemoveMembers)
}
