// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/Osland07/tensitrack/internals/features/users/user/controller"
	authMiddleware "github.com/Osland07/tensitrack/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	profileController := controller.NewProfileController(db)
	adminController := controller.NewUserAdminController(db)

	// ==========================
	// PROTECTED — Base: /api/u
	// ==========================
	protected := app.Group("/api/u", authMiddleware.AuthMiddleware())
	protected.Get("/profile", profileController.Profile)

	// ==========================
	// ADMIN — Base: /api/a/users (permission per aksi)
	// ==========================
	admin := app.Group("/api/a/users", authMiddleware.AuthMiddleware())
	admin.Get("/", authMiddleware.RequirePermission(db, "view users"), adminController.List)
	admin.Post("/", authMiddleware.RequirePermission(db, "create users"), adminController.Create)
	admin.Put("/:id", authMiddleware.RequirePermission(db, "edit users"), adminController.Update)
	admin.Delete("/:id", authMiddleware.RequirePermission(db, "delete users"), adminController.Delete)
}
