package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/Osland07/tensitrack/internals/features/screening/model"
)

// ScreeningService: mesin skor & klasifikasi risiko hipertensi.
// Satu kali baca katalog (bulk), satu kali tulis riwayat (transaksi).
type ScreeningService struct {
	DB *gorm.DB
}

func NewScreeningService(db *gorm.DB) *ScreeningService {
	return &ScreeningService{DB: db}
}

type AnswerInput struct {
	FactorID uint
	Answer   bool
}

type SubmitScreeningInput struct {
	Answers []AnswerInput
	Bmi     float64
	UserID  *uuid.UUID // nil = skrining tamu
}

type SubmitScreeningResult struct {
	RiskLevel          string   `json:"riskLevel"`
	RiskDescription    string   `json:"riskDescription"`
	Suggestions        []string `json:"suggestions"`
	ScreeningHistoryID uint     `json:"screeningHistoryId"`
	TotalScore         int      `json:"totalScore"`
}

// ListQuestions mengembalikan faktor risiko terurut kolom "order"
// (urutan tampil kuisioner).
func (s *ScreeningService) ListQuestions(ctx context.Context) ([]model.RiskFactorModel, error) {
	var factors []model.RiskFactorModel
	if err := s.DB.WithContext(ctx).Order(`"order" ASC`).Find(&factors).Error; err != nil {
		return nil, err
	}
	return factors, nil
}

// Submit menjalankan satu siklus skrining: validasi → agregasi skor →
// klasifikasi → rakit saran → simpan riwayat. Validasi gagal = tidak ada
// baris apa pun yang ditulis.
func (s *ScreeningService) Submit(ctx context.Context, in SubmitScreeningInput) (*SubmitScreeningResult, error) {
	if err := validateSubmitInput(in); err != nil {
		return nil, err
	}

	// 1) Resolve semua faktor sekali jalan (bukan query per jawaban).
	ids := make([]uint, 0, len(in.Answers))
	for _, a := range in.Answers {
		ids = append(ids, a.FactorID)
	}
	var factors []model.RiskFactorModel
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&factors).Error; err != nil {
		return nil, err
	}
	factorByID := make(map[uint]model.RiskFactorModel, len(factors))
	for _, f := range factors {
		factorByID[f.ID] = f
	}
	for _, a := range in.Answers {
		if _, ok := factorByID[a.FactorID]; !ok {
			return nil, newValidationError("answers",
				fmt.Sprintf("Faktor risiko dengan id %d tidak ditemukan.", a.FactorID))
		}
	}

	// 2) Agregasi satu lintasan: skor + kode + faktor "ya" (urutan submit).
	totalScore := 0
	trueCodes := make([]string, 0, len(in.Answers))
	trueFactors := make([]model.RiskFactorModel, 0, len(in.Answers))
	for _, a := range in.Answers {
		if !a.Answer {
			continue
		}
		f := factorByID[a.FactorID]
		totalScore += f.Score
		trueCodes = append(trueCodes, f.Code)
		trueFactors = append(trueFactors, f)
	}

	// 3) Klasifikasi + resolve katalog tingkat risiko.
	levelName := ClassifyRisk(trueCodes)
	description := DescTidakDiketahui
	var levelID *uint
	var level model.RiskLevelModel
	err := s.DB.WithContext(ctx).Where("name = ?", levelName).First(&level).Error
	switch {
	case err == nil:
		description = level.Description
		levelID = &level.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// label tetap dipakai, deskripsi fallback, risk_level_id null
	default:
		return nil, err
	}

	// 4) Saran: faktor "ya" berurutan, lalu saran tingkat risiko, lalu dedup.
	suggestions := make([]string, 0, len(trueFactors)+1)
	for _, f := range trueFactors {
		if f.Suggestion != nil && *f.Suggestion != "" {
			suggestions = append(suggestions, *f.Suggestion)
		}
	}
	if levelID != nil && level.Suggestion != nil && *level.Suggestion != "" {
		suggestions = append(suggestions, *level.Suggestion)
	}
	suggestions = dedupeStrings(suggestions)

	// 5) Simpan riwayat + seluruh jawaban (termasuk "tidak") dalam satu transaksi.
	history := model.ScreeningHistoryModel{
		UserID:          in.UserID,
		ScreeningDate:   time.Now(),
		Bmi:             in.Bmi,
		ScreeningResult: levelName,
		RiskLevelID:     levelID,
	}
	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		answers := make([]model.ScreeningAnswerModel, 0, len(in.Answers))
		for _, a := range in.Answers {
			answers = append(answers, model.ScreeningAnswerModel{
				ScreeningHistoryID: history.ID,
				RiskFactorID:       a.FactorID,
				Answer:             a.Answer,
			})
		}
		return tx.CreateInBatches(&answers, 100).Error
	}); err != nil {
		return nil, err
	}

	return &SubmitScreeningResult{
		RiskLevel:          levelName,
		RiskDescription:    description,
		Suggestions:        suggestions,
		ScreeningHistoryID: history.ID,
		TotalScore:         totalScore,
	}, nil
}

func validateSubmitInput(in SubmitScreeningInput) error {
	var ve *ValidationError
	ensure := func() *ValidationError {
		if ve == nil {
			ve = &ValidationError{Fields: FieldErrors{}}
		}
		return ve
	}

	if len(in.Answers) == 0 {
		ensure().add("answers", "Jawaban wajib diisi.")
	}
	if in.Bmi <= 0 {
		ensure().add("bmi", "BMI harus lebih dari 0.")
	}
	// Duplikat id ditolak eksplisit: satu faktor tidak boleh dihitung dua kali.
	seen := make(map[uint]struct{}, len(in.Answers))
	for _, a := range in.Answers {
		if _, dup := seen[a.FactorID]; dup {
			ensure().add("answers", fmt.Sprintf("Faktor risiko dengan id %d dikirim lebih dari sekali.", a.FactorID))
			break
		}
		seen[a.FactorID] = struct{}{}
	}

	if ve != nil {
		return ve
	}
	return nil
}
