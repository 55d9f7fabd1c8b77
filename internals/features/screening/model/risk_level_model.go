package model

import (
	"time"
)

// RiskLevelModel merepresentasikan tabel risk_levels
// (Rendah / Sedang / Tinggi) beserta deskripsi dan saran umumnya.
type RiskLevelModel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:50;unique;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Suggestion  *string `gorm:"type:text" json:"suggestion,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RiskLevelModel) TableName() string {
	return "risk_levels"
}
