package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	rbacModel "github.com/Osland07/tensitrack/internals/features/rbac/model"
	dto "github.com/Osland07/tensitrack/internals/features/users/user/dto"
	model "github.com/Osland07/tensitrack/internals/features/users/user/model"
	helper "github.com/Osland07/tensitrack/internals/helpers"
)

// UserAdminController: CRUD user oleh admin (list+search, create dengan role,
// update parsial, delete).
type UserAdminController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db, validate: validator.New()}
}

func (ctrl *UserAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := c.Query("search")

	q := ctrl.DB.Model(&model.UserModel{})
	if search != "" {
		q = q.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var users []model.UserModel
	if err := q.Preload("Roles").
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Gagal ambil users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}
	return helper.JsonList(c, "Daftar pengguna", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *UserAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	var role rbacModel.RoleModel
	if err := ctrl.DB.First(&role, req.RoleID).Error; err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"role_id": {"Role tidak ditemukan."},
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := model.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	} else {
		user.IsActive = true
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Model(&user).Association("Roles").Append(&role)
	})
	if err != nil {
		log.Println("[ERROR] Gagal simpan user:", err)
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	return helper.JsonCreated(c, "Pengguna berhasil ditambahkan", dto.ToUserResponse(&user))
}

func (ctrl *UserAdminController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.Preload("Roles").First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		user.Password = string(hashed)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if req.RoleID != nil {
			var role rbacModel.RoleModel
			if err := tx.First(&role, *req.RoleID).Error; err != nil {
				return err
			}
			return tx.Model(&user).Association("Roles").Replace(&role)
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengguna")
	}

	return helper.JsonUpdated(c, "Pengguna berhasil diperbarui", dto.ToUserResponse(&user))
}

func (ctrl *UserAdminController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Association("Roles").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengguna")
	}
	return helper.JsonDeleted(c, "Pengguna berhasil dihapus", fiber.Map{"id": user.ID})
}
