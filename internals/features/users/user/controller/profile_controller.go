package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	screeningModel "github.com/Osland07/tensitrack/internals/features/screening/model"
	dto "github.com/Osland07/tensitrack/internals/features/users/user/dto"
	model "github.com/Osland07/tensitrack/internals/features/users/user/model"
	helper "github.com/Osland07/tensitrack/internals/helpers"
)

// ProfileController: halaman profil klien — data user (tinggi/berat/BMI)
// plus riwayat skrining miliknya sendiri.
type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

func (ctrl *ProfileController) Profile(c *fiber.Ctx) error {
	userID := helper.GetUserID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	paging := helper.ResolvePaging(c, 10, 100)
	search := c.Query("search")

	q := ctrl.DB.Model(&screeningModel.ScreeningHistoryModel{}).Where("user_id = ?", userID)
	if search != "" {
		q = q.Where("screening_result ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung riwayat skrining:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var histories []screeningModel.ScreeningHistoryModel
	if err := q.Preload("RiskLevel").
		Order("screening_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&histories).Error; err != nil {
		log.Println("[ERROR] Gagal ambil riwayat skrining:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Profil", fiber.Map{
		"user":                dto.ToUserResponse(&user),
		"screening_histories": histories,
	}, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
