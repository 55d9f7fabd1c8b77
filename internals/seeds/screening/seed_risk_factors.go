package screening

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "github.com/Osland07/tensitrack/internals/features/screening/model"
)

type riskFactorSeed struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Score      int     `json:"score"`
	Suggestion *string `json:"suggestion"`
	Order      int     `json:"order"`
}

func SeedRiskFactorsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []riskFactorSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	// Ambil kode yang sudah ada, sekali query
	var existingCodes []string
	if err := db.Model(&model.RiskFactorModel{}).Pluck("code", &existingCodes).Error; err != nil {
		log.Printf("❌ Gagal ambil kode yang sudah ada: %v", err)
		return
	}
	existingMap := make(map[string]bool, len(existingCodes))
	for _, code := range existingCodes {
		existingMap[code] = true
	}

	var newFactors []model.RiskFactorModel
	for _, s := range seeds {
		if existingMap[s.Code] {
			continue
		}
		newFactors = append(newFactors, model.RiskFactorModel{
			Code:       s.Code,
			Name:       s.Name,
			Score:      s.Score,
			Suggestion: s.Suggestion,
			Order:      s.Order,
		})
	}

	if len(newFactors) > 0 {
		if err := db.Create(&newFactors).Error; err != nil {
			log.Printf("❌ Gagal seed risk factors: %v", err)
			return
		}
	}
	log.Printf("✅ Seed risk factors selesai (%d baru).", len(newFactors))
}
