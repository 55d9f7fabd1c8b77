package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/Osland07/tensitrack/internals/features/screening/dto"
	service "github.com/Osland07/tensitrack/internals/features/screening/service"
	helper "github.com/Osland07/tensitrack/internals/helpers"
)

type ScreeningController struct {
	Service    *service.ScreeningService
	BmiService *service.BmiService
	validate   *validator.Validate
}

func NewScreeningController(db *gorm.DB) *ScreeningController {
	return &ScreeningController{
		Service:    service.NewScreeningService(db),
		BmiService: service.NewBmiService(db),
		validate:   validator.New(),
	}
}

// 📋 GetQuestions mengembalikan daftar pertanyaan kuisioner terurut.
func (ctrl *ScreeningController) GetQuestions(c *fiber.Ctx) error {
	factors, err := ctrl.Service.ListQuestions(c.UserContext())
	if err != nil {
		log.Println("[ERROR] Gagal ambil pertanyaan skrining:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}

	questions := make([]dto.QuestionResponse, 0, len(factors))
	for _, f := range factors {
		questions = append(questions, dto.QuestionResponse{ID: f.ID, Name: f.Name})
	}
	return c.Status(fiber.StatusOK).JSON(questions)
}

// 🩺 SubmitScreening menerima jawaban + BMI, menghitung klasifikasi risiko,
// menyimpan riwayat, dan mengembalikan hasilnya. Boleh anonim.
func (ctrl *ScreeningController) SubmitScreening(c *fiber.Ctx) error {
	var req dto.SubmitScreeningRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	input := req.ToInput()
	input.UserID = helper.GetUserIDPtr(c)

	result, err := ctrl.Service.Submit(c.UserContext(), input)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return helper.JsonValidationError(c, map[string][]string(ve.Fields))
		}
		log.Println("[ERROR] Gagal proses skrining:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses skrining")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// ⚖️ SaveBmiDetails menyimpan tinggi/berat/BMI ke profil user (wajib login).
func (ctrl *ScreeningController) SaveBmiDetails(c *fiber.Ctx) error {
	userID := helper.GetUserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User not authenticated.",
		})
	}

	var req dto.SaveBmiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	err := ctrl.BmiService.SaveBmiDetails(c.UserContext(), service.SaveBmiInput{
		UserID: userID,
		Height: req.Height,
		Weight: req.Weight,
		Bmi:    req.Bmi,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return helper.JsonValidationError(c, map[string][]string(ve.Fields))
		case errors.Is(err, service.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not authenticated.",
			})
		case errors.Is(err, service.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		default:
			log.Println("[ERROR] Gagal simpan BMI:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan BMI")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "BMI details saved successfully.",
	})
}
