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

// RiskLevelAdminController: manajemen katalog tingkat risiko (admin).
type RiskLevelAdminController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewRiskLevelAdminController(db *gorm.DB) *RiskLevelAdminController {
	return &RiskLevelAdminController{DB: db, validate: validator.New()}
}

func (ctrl *RiskLevelAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := c.Query("search")

	q := ctrl.DB.Model(&model.RiskLevelModel{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung tingkat risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var levels []model.RiskLevelModel
	if err := q.Order("id ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&levels).Error; err != nil {
		log.Println("[ERROR] Gagal ambil tingkat risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar tingkat risiko", levels,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *RiskLevelAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateRiskLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	level := model.RiskLevelModel{
		Name:        req.Name,
		Description: req.Description,
		Suggestion:  req.Suggestion,
	}
	if err := ctrl.DB.Create(&level).Error; err != nil {
		log.Println("[ERROR] Gagal simpan tingkat risiko:", err)
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan tingkat risiko (nama harus unik)")
	}
	return helper.JsonCreated(c, "Tingkat risiko berhasil ditambahkan", level)
}

func (ctrl *RiskLevelAdminController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var level model.RiskLevelModel
	if err := ctrl.DB.First(&level, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tingkat risiko tidak ditemukan")
	}

	var req dto.UpdateRiskLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	if req.Name != nil {
		level.Name = *req.Name
	}
	if req.Description != nil {
		level.Description = *req.Description
	}
	if req.Suggestion != nil {
		level.Suggestion = req.Suggestion
	}

	if err := ctrl.DB.Save(&level).Error; err != nil {
		log.Println("[ERROR] Gagal update tingkat risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tingkat risiko")
	}
	return helper.JsonUpdated(c, "Tingkat risiko berhasil diperbarui", level)
}

func (ctrl *RiskLevelAdminController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.DB.Delete(&model.RiskLevelModel{}, id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus tingkat risiko:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tingkat risiko")
	}
	return helper.JsonDeleted(c, "Tingkat risiko berhasil dihapus", fiber.Map{"id": id})
}
