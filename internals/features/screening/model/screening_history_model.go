package model

import (
	"time"

	"github.com/google/uuid"
)

// ScreeningHistoryModel merepresentasikan tabel screening_histories: satu
// pengisian kuisioner beserta hasilnya. UserID nullable (skrining tamu);
// RiskLevelID nullable bila label hasil tidak ditemukan di katalog.
type ScreeningHistoryModel struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ScreeningDate   time.Time  `gorm:"not null" json:"screening_date"`
	Bmi             float64    `gorm:"type:numeric(5,2);not null" json:"bmi"`
	ScreeningResult string     `gorm:"size:50;not null" json:"screening_result"`
	RiskLevelID     *uint      `gorm:"index" json:"risk_level_id,omitempty"`

	RiskLevel *RiskLevelModel        `gorm:"foreignKey:RiskLevelID" json:"risk_level,omitempty"`
	Answers   []ScreeningAnswerModel `gorm:"foreignKey:ScreeningHistoryID" json:"answers,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScreeningHistoryModel) TableName() string {
	return "screening_histories"
}

// ScreeningAnswerModel: jawaban per faktor yang menempel pada satu riwayat
// (termasuk jawaban "tidak", supaya kuisioner bisa direkonstruksi utuh).
type ScreeningAnswerModel struct {
	ScreeningHistoryID uint `gorm:"primaryKey;autoIncrement:false" json:"screening_history_id"`
	RiskFactorID       uint `gorm:"primaryKey;autoIncrement:false" json:"risk_factor_id"`
	Answer             bool `gorm:"not null" json:"answer"`
}

func (ScreeningAnswerModel) TableName() string {
	return "screening_history_risk_factor"
}
