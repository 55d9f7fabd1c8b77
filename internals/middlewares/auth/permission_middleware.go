// internals/middlewares/auth/permission_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequirePermission membatasi route pada user yang punya permission tertentu
// lewat role-nya. Role superadmin selalu lolos.
func RequirePermission(db *gorm.DB, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		if roles, ok := c.Locals("roles").([]string); ok {
			for _, r := range roles {
				if r == "superadmin" {
					return c.Next()
				}
			}
		}

		var count int64
		err = db.Table("permissions").
			Joins("JOIN permission_role ON permission_role.permission_id = permissions.id").
			Joins("JOIN role_user ON role_user.role_id = permission_role.role_id").
			Where("role_user.user_id = ? AND permissions.name = ?", userID, permission).
			Count(&count).Error
		if err != nil {
			log.Println("[ERROR] Gagal cek permission:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak memiliki akses untuk aksi ini")
		}
		return c.Next()
	}
}
