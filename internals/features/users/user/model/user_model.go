package model

import (
	"time"

	"github.com/google/uuid"

	rbacModel "github.com/Osland07/tensitrack/internals/features/rbac/model"
)

// UserModel merepresentasikan tabel users di database.
// Height/Weight/Bmi nullable: terisi setelah user menyimpan hasil kalkulator BMI.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Height *float64 `gorm:"type:numeric(5,2)" json:"height,omitempty"`
	Weight *float64 `gorm:"type:numeric(5,2)" json:"weight,omitempty"`
	Bmi    *float64 `gorm:"type:numeric(5,2)" json:"bmi,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	Roles []rbacModel.RoleModel `gorm:"many2many:role_user;joinForeignKey:UserID;joinReferences:RoleID" json:"roles,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
