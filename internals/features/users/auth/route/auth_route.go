// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/Osland07/tensitrack/internals/features/users/auth/controller"
	rateLimiter "github.com/Osland07/tensitrack/internals/middlewares"
	authMiddleware "github.com/Osland07/tensitrack/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC — Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/logout", authController.Logout)

	// ==========================
	// PROTECTED — Base: /api/u
	// ==========================
	protected := app.Group("/api/u", authMiddleware.AuthMiddleware())
	protected.Get("/me", authController.Me)
}
