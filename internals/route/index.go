// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "campusku_backend/internals/features/scheduling/courses/route"
	groupRoute "campusku_backend/internals/features/scheduling/groups/route"
	resourceRoute "campusku_backend/internals/features/scheduling/resources/route"
	sessionRoute "campusku_backend/internals/features/scheduling/sessions/route"
	authMiddleware "campusku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()
	v := validator.New()

	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting session routes...")
	sessionRoute.SessionAdminRoutes(admin, db, v)

	log.Println("[INFO] Mounting resource routes...")
	resourceRoute.ResourceAdminRoutes(admin, db, v)

	log.Println("[INFO] Mounting group routes...")
	groupRoute.GroupAdminRoutes(admin, db, v)

	log.Println("[INFO] Mounting course routes...")
	courseRoute.CourseAdminRoutes(admin, db, v)
}
