// file: internals/features/scheduling/sessions/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/sessions/controller"
	"campusku_backend/internals/middlewares"
)

// SessionAdminRoutes mounts the session CRUD + cascade + export endpoints.
func SessionAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSessionController(db, v)

	g := r.Group("/sessions")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", middlewares.CascadeRateLimiter(), ctl.Delete)
	g.Get("/:id/export", ctl.Export)
}
