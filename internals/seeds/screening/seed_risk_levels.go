package screening

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "github.com/Osland07/tensitrack/internals/features/screening/model"
)

type riskLevelSeed struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Suggestion  *string `json:"suggestion"`
}

func SeedRiskLevelsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []riskLevelSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	created := 0
	for _, s := range seeds {
		var existing model.RiskLevelModel
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&model.RiskLevelModel{
			Name:        s.Name,
			Description: s.Description,
			Suggestion:  s.Suggestion,
		}).Error; err != nil {
			log.Printf("❌ Gagal seed risk level '%s': %v", s.Name, err)
			continue
		}
		created++
	}
	log.Printf("✅ Seed risk levels selesai (%d baru).", created)
}
