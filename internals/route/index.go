// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rbacRoute "github.com/Osland07/tensitrack/internals/features/rbac/route"
	screeningRoute "github.com/Osland07/tensitrack/internals/features/screening/route"
	authRoute "github.com/Osland07/tensitrack/internals/features/users/auth/route"
	userRoute "github.com/Osland07/tensitrack/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up RbacRoutes...")
	rbacRoute.RbacRoutes(app, db)

	log.Println("[INFO] Setting up ScreeningRoutes...")
	screeningRoute.ScreeningRoutes(app, db)
}
