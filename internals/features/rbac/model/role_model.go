package model

import (
	"time"
)

// RoleModel merepresentasikan tabel roles (superadmin/admin/user).
type RoleModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;unique;not null" json:"name"`

	Permissions []PermissionModel `gorm:"many2many:permission_role;joinForeignKey:RoleID;joinReferences:PermissionID" json:"permissions,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RoleModel) TableName() string {
	return "roles"
}
