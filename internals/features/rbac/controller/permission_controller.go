package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/Osland07/tensitrack/internals/features/rbac/dto"
	model "github.com/Osland07/tensitrack/internals/features/rbac/model"
	helper "github.com/Osland07/tensitrack/internals/helpers"
)

type PermissionController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewPermissionController(db *gorm.DB) *PermissionController {
	return &PermissionController{DB: db, validate: validator.New()}
}

func (ctrl *PermissionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := c.Query("search")

	q := ctrl.DB.Model(&model.PermissionModel{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung permissions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var permissions []model.PermissionModel
	if err := q.Order("name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&permissions).Error; err != nil {
		log.Println("[ERROR] Gagal ambil permissions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar permission", permissions,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *PermissionController) Create(c *fiber.Ctx) error {
	var req dto.CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	permission := model.PermissionModel{Name: req.Name}
	if err := ctrl.DB.Create(&permission).Error; err != nil {
		log.Println("[ERROR] Gagal simpan permission:", err)
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan permission (nama harus unik)")
	}
	return helper.JsonCreated(c, "Permission berhasil ditambahkan", permission)
}

func (ctrl *PermissionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var permission model.PermissionModel
	if err := ctrl.DB.First(&permission, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Permission tidak ditemukan")
	}

	var req dto.UpdatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	permission.Name = req.Name
	if err := ctrl.DB.Save(&permission).Error; err != nil {
		log.Println("[ERROR] Gagal update permission:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui permission")
	}
	return helper.JsonUpdated(c, "Permission berhasil diperbarui", permission)
}

func (ctrl *PermissionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.DB.Delete(&model.PermissionModel{}, id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus permission:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus permission")
	}
	return helper.JsonDeleted(c, "Permission berhasil dihapus", fiber.Map{"id": id})
}
