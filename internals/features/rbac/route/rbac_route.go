// file: internals/features/rbac/route/rbac_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/Osland07/tensitrack/internals/features/rbac/controller"
	authMiddleware "github.com/Osland07/tensitrack/internals/middlewares/auth"
)

func RbacRoutes(app *fiber.App, db *gorm.DB) {
	roleController := controller.NewRoleController(db)
	permissionController := controller.NewPermissionController(db)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	roles := admin.Group("/roles")
	roles.Get("/", authMiddleware.RequirePermission(db, "view roles"), roleController.List)
	roles.Post("/", authMiddleware.RequirePermission(db, "create roles"), roleController.Create)
	roles.Put("/:id", authMiddleware.RequirePermission(db, "edit roles"), roleController.Update)
	roles.Delete("/:id", authMiddleware.RequirePermission(db, "delete roles"), roleController.Delete)

	permissions := admin.Group("/permissions")
	permissions.Get("/", authMiddleware.RequirePermission(db, "view permissions"), permissionController.List)
	permissions.Post("/", authMiddleware.RequirePermission(db, "create permissions"), permissionController.Create)
	permissions.Put("/:id", authMiddleware.RequirePermission(db, "edit permissions"), permissionController.Update)
	permissions.Delete("/:id", authMiddleware.RequirePermission(db, "delete permissions"), permissionController.Delete)
}
