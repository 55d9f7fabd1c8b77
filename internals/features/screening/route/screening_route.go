// file: internals/features/screening/route/screening_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/Osland07/tensitrack/internals/features/screening/controller"
	authMiddleware "github.com/Osland07/tensitrack/internals/middlewares/auth"
)

// ScreeningRoutes memasang endpoint skrining publik + manajemen katalog admin.
func ScreeningRoutes(app *fiber.App, db *gorm.DB) {
	screeningController := controller.NewScreeningController(db)

	// ==========================
	// PUBLIC — Base: /api/screening
	// submit boleh anonim; identitas dipakai kalau ada token valid
	// ==========================
	public := app.Group("/api/screening", authMiddleware.OptionalAuthMiddleware())
	public.Get("/questions", screeningController.GetQuestions)
	public.Post("/submit", screeningController.SubmitScreening)

	// BMI wajib login
	app.Post("/api/screening/bmi",
		authMiddleware.AuthMiddleware(),
		screeningController.SaveBmiDetails,
	)

	// ==========================
	// ADMIN — Base: /api/a (auth + permission per aksi)
	// ==========================
	factorController := controller.NewRiskFactorAdminController(db)
	levelController := controller.NewRiskLevelAdminController(db)
	historyController := controller.NewScreeningHistoryAdminController(db)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	factors := admin.Group("/risk-factors")
	factors.Get("/", authMiddleware.RequirePermission(db, "risk-factors.view"), factorController.List)
	factors.Post("/", authMiddleware.RequirePermission(db, "risk-factors.create"), factorController.Create)
	factors.Put("/:id", authMiddleware.RequirePermission(db, "risk-factors.edit"), factorController.Update)
	factors.Delete("/:id", authMiddleware.RequirePermission(db, "risk-factors.delete"), factorController.Delete)

	levels := admin.Group("/risk-levels")
	levels.Get("/", authMiddleware.RequirePermission(db, "risk-levels.view"), levelController.List)
	levels.Post("/", authMiddleware.RequirePermission(db, "risk-levels.create"), levelController.Create)
	levels.Put("/:id", authMiddleware.RequirePermission(db, "risk-levels.edit"), levelController.Update)
	levels.Delete("/:id", authMiddleware.RequirePermission(db, "risk-levels.delete"), levelController.Delete)

	histories := admin.Group("/screening-histories")
	histories.Get("/", authMiddleware.RequirePermission(db, "screening-history.view"), historyController.List)
	histories.Get("/:id", authMiddleware.RequirePermission(db, "screening-history.view"), historyController.Detail)
	histories.Delete("/:id", authMiddleware.RequirePermission(db, "screening-history.delete"), historyController.Delete)
}
