package model

import (
	"time"
)

// PermissionModel merepresentasikan tabel permissions
// (mis. "risk-factors.edit", "screening-history.view").
type PermissionModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:150;unique;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PermissionModel) TableName() string {
	return "permissions"
}
