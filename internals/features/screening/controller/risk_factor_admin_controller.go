package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/Osland07/tensitrack/internals/features/screening/dto"
	model "github.com/Osland07/tensitrack/internals/features/screening/model"
	helper "github.com/Osland07/tensitrack/internals/helpers"
)

// RiskFactorAdminController: manajemen katalog faktor risiko (admin).
type RiskFactorAdminController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewRiskFactorAdminController(db *gorm.DB) *RiskFactorAdminController {
	return &RiskFactorAdminController{DB: db, validate: validator.New()}
}

func (ctrl *RiskFactorAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := c.Query("search")

	q := ctrl.DB.Model(&model.RiskFactorModel{})
	if search != "" {
		q = q.Where("code ILIKE ? OR name ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung faktor risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var factors []model.RiskFactorModel
	if err := q.Order(`"order" ASC`).Offset(paging.Offset).Limit(paging.Limit).Find(&factors).Error; err != nil {
		log.Println("[ERROR] Gagal ambil faktor risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar faktor risiko", factors,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *RiskFactorAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateRiskFactorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	factor := model.RiskFactorModel{
		Code:       req.Code,
		Name:       req.Name,
		Score:      req.Score,
		Suggestion: req.Suggestion,
		Order:      req.Order,
	}
	if err := ctrl.DB.Create(&factor).Error; err != nil {
		log.Println("[ERROR] Gagal simpan faktor risiko:", err)
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan faktor risiko (kode harus unik)")
	}
	return helper.JsonCreated(c, "Faktor risiko berhasil ditambahkan", factor)
}

func (ctrl *RiskFactorAdminController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var factor model.RiskFactorModel
	if err := ctrl.DB.First(&factor, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Faktor risiko tidak ditemukan")
	}

	var req dto.UpdateRiskFactorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	if req.Code != nil {
		factor.Code = *req.Code
	}
	if req.Name != nil {
		factor.Name = *req.Name
	}
	if req.Score != nil {
		factor.Score = *req.Score
	}
	if req.Suggestion != nil {
		factor.Suggestion = req.Suggestion
	}
	if req.Order != nil {
		factor.Order = *req.Order
	}

	if err := ctrl.DB.Save(&factor).Error; err != nil {
		log.Println("[ERROR] Gagal update faktor risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui faktor risiko")
	}
	return helper.JsonUpdated(c, "Faktor risiko berhasil diperbarui", factor)
}

func (ctrl *RiskFactorAdminController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.DB.Delete(&model.RiskFactorModel{}, id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus faktor risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus faktor risiko")
	}
	return helper.JsonDeleted(c, "Faktor risiko berhasil dihapus", fiber.Map{"id": id})
}
