package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/Osland07/tensitrack/internals/features/users/user/model"
)

// BmiService menyimpan tinggi/berat/BMI ke profil user. Terpisah dari
// skrining: kalkulator BMI bisa dipakai tanpa mengisi kuisioner.
type BmiService struct {
	DB *gorm.DB
}

func NewBmiService(db *gorm.DB) *BmiService {
	return &BmiService{DB: db}
}

type SaveBmiInput struct {
	UserID uuid.UUID
	Height float64
	Weight float64
	Bmi    float64
}

// SaveBmiDetails menimpa tiga kolom profil. Idempoten: nilai sama dikirim
// dua kali hasilnya tetap sama (hanya updated_at yang bergeser).
func (s *BmiService) SaveBmiDetails(ctx context.Context, in SaveBmiInput) error {
	if in.UserID == uuid.Nil {
		return ErrUnauthenticated
	}

	var ve *ValidationError
	ensure := func() *ValidationError {
		if ve == nil {
			ve = &ValidationError{Fields: FieldErrors{}}
		}
		return ve
	}
	if in.Height < 1 {
		ensure().add("height", "Tinggi minimal 1.")
	}
	if in.Weight < 1 {
		ensure().add("weight", "Berat minimal 1.")
	}
	if in.Bmi < 1 {
		ensure().add("bmi", "BMI minimal 1.")
	}
	if ve != nil {
		return ve
	}

	res := s.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", in.UserID).
		Updates(map[string]interface{}{
			"height": in.Height,
			"weight": in.Weight,
			"bmi":    in.Bmi,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
