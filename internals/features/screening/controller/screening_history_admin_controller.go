package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "github.com/Osland07/tensitrack/internals/features/screening/model"
	helper "github.com/Osland07/tensitrack/internals/helpers"
)

// ScreeningHistoryAdminController: riwayat skrining lintas user (admin).
// Hanya baca + hapus; mesin skrining sendiri tidak pernah mengubah riwayat.
type ScreeningHistoryAdminController struct {
	DB *gorm.DB
}

func NewScreeningHistoryAdminController(db *gorm.DB) *ScreeningHistoryAdminController {
	return &ScreeningHistoryAdminController{DB: db}
}

func (ctrl *ScreeningHistoryAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := c.Query("search")

	q := ctrl.DB.Model(&model.ScreeningHistoryModel{})
	if search != "" {
		q = q.Where("screening_result ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung riwayat skrining:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var histories []model.ScreeningHistoryModel
	if err := q.Preload("RiskLevel").
		Order("screening_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&histories).Error; err != nil {
		log.Println("[ERROR] Gagal ambil riwayat skrining:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar riwayat skrining", histories,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *ScreeningHistoryAdminController) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var history model.ScreeningHistoryModel
	if err := ctrl.DB.Preload("RiskLevel").Preload("Answers").First(&history, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Riwayat skrining tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail riwayat skrining", history)
}

// Delete menghapus riwayat beserta jawabannya (operasi administratif).
func (ctrl *ScreeningHistoryAdminController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("screening_history_id = ?", id).
			Delete(&model.ScreeningAnswerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ScreeningHistoryModel{}, id).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus riwayat skrining:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus riwayat skrining")
	}
	return helper.JsonDeleted(c, "Riwayat skrining berhasil dihapus", fiber.Map{"id": id})
}
