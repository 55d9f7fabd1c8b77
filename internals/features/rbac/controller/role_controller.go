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

// RoleController: CRUD role + sinkronisasi permission per role.
type RoleController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db, validate: validator.New()}
}

func (ctrl *RoleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := c.Query("search")

	q := ctrl.DB.Model(&model.RoleModel{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung roles:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var roles []model.RoleModel
	if err := q.Preload("Permissions").
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&roles).Error; err != nil {
		log.Println("[ERROR] Gagal ambil roles:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar peran", roles,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *RoleController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	role := model.RoleModel{Name: req.Name}
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		return syncPermissions(tx, &role, req.Permissions)
	})
	if err != nil {
		log.Println("[ERROR] Gagal simpan role:", err)
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan peran (nama harus unik)")
	}
	return helper.JsonCreated(c, "Peran berhasil ditambahkan", role)
}

func (ctrl *RoleController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var role model.RoleModel
	if err := ctrl.DB.Preload("Permissions").First(&role, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Peran tidak ditemukan")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	if req.Name != nil {
		role.Name = *req.Name
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&role).Error; err != nil {
			return err
		}
		if req.Permissions != nil {
			return syncPermissions(tx, &role, *req.Permissions)
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal update role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui peran")
	}
	return helper.JsonUpdated(c, "Peran berhasil diperbarui", role)
}

func (ctrl *RoleController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var role model.RoleModel
	if err := ctrl.DB.First(&role, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Peran tidak ditemukan")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&role).Association("Permissions").Clear(); err != nil {
			return err
		}
		return tx.Delete(&role).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus peran")
	}
	return helper.JsonDeleted(c, "Peran berhasil dihapus", fiber.Map{"id": id})
}

// syncPermissions mengganti seluruh permission role dengan daftar id baru.
func syncPermissions(tx *gorm.DB, role *model.RoleModel, permissionIDs []uint) error {
	if permissionIDs == nil {
		permissionIDs = []uint{}
	}
	var permissions []model.PermissionModel
	if len(permissionIDs) > 0 {
		if err := tx.Where("id IN ?", permissionIDs).Find(&permissions).Error; err != nil {
			return err
		}
	}
	return tx.Model(role).Association("Permissions").Replace(&permissions)
}
