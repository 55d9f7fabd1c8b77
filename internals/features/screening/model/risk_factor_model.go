package model

import (
	"time"
)

// RiskFactorModel merepresentasikan tabel risk_factors: satu pertanyaan
// ya/tidak pada kuisioner skrining hipertensi. Code unik berpola "E01".."E11",
// Order menentukan urutan tampil pertanyaan.
type RiskFactorModel struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Code       string  `gorm:"size:10;unique;not null" json:"code"`
	Name       string  `gorm:"type:text;not null" json:"name"`
	Score      int     `gorm:"not null" json:"score"`
	Suggestion *string `gorm:"type:text" json:"suggestion,omitempty"`
	Order      int     `gorm:"column:order;not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RiskFactorModel) TableName() string {
	return "risk_factors"
}
