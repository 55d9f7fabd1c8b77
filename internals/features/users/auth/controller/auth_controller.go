package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	rbacModel "github.com/Osland07/tensitrack/internals/features/rbac/model"
	dto "github.com/Osland07/tensitrack/internals/features/users/auth/dto"
	service "github.com/Osland07/tensitrack/internals/features/users/auth/service"
	userModel "github.com/Osland07/tensitrack/internals/features/users/user/model"
	helper "github.com/Osland07/tensitrack/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, validate: validator.New()}
}

// 📝 Register membuat user baru dengan role default "user".
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		var defaultRole rbacModel.RoleModel
		if err := tx.Where("name = ?", "user").First(&defaultRole).Error; err != nil {
			// role default belum di-seed: user tetap dibuat tanpa role
			log.Println("[WARN] Role default 'user' tidak ditemukan:", err)
			return nil
		}
		return tx.Model(&user).Association("Roles").Append(&defaultRole)
	})
	if err != nil {
		log.Println("[ERROR] Gagal register:", err)
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// 🔑 Login memverifikasi kredensial dan menerbitkan access token.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	var user userModel.UserModel
	if err := ctrl.DB.Preload("Roles").Where("email = ?", req.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.GenerateAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] Gagal buat token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// cookie untuk web client; body untuk mobile/API client
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User: dto.UserSnapshot{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Roles: roles,
		},
	})
}

// 👤 Me mengembalikan identitas user dari token.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := helper.GetUserID(c)

	var user userModel.UserModel
	if err := ctrl.DB.Preload("Roles").First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}
	return helper.JsonOK(c, "Profil user", dto.UserSnapshot{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Roles: roles,
	})
}

// 🚪 Logout menghapus cookie access token.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}
