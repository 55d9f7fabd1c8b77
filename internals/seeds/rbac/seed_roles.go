package rbac

import (
	"log"

	"gorm.io/gorm"

	model "github.com/Osland07/tensitrack/internals/features/rbac/model"
)

// adminPermissions: hak role admin — manajemen katalog skrining + riwayat.
var adminPermissions = []string{
	"risk-levels.view", "risk-levels.create", "risk-levels.edit", "risk-levels.delete", "risk-levels.print",
	"risk-factors.view", "risk-factors.create", "risk-factors.edit", "risk-factors.delete", "risk-factors.print",
	"rules.view", "rules.create", "rules.edit", "rules.delete",
	"screening-history.view", "screening-history.delete", "screening-history.print",
}

func SeedRoles(db *gorm.DB) {
	firstOrCreateRole(db, "superadmin")
	adminRole := firstOrCreateRole(db, "admin")
	firstOrCreateRole(db, "user")

	if adminRole == nil {
		return
	}

	var permissions []model.PermissionModel
	if err := db.Where("name IN ?", adminPermissions).Find(&permissions).Error; err != nil {
		log.Printf("❌ Gagal ambil permissions untuk role admin: %v", err)
		return
	}
	if err := db.Model(adminRole).Association("Permissions").Replace(&permissions); err != nil {
		log.Printf("❌ Gagal sync permissions role admin: %v", err)
		return
	}
	log.Println("✅ Seed roles selesai.")
}

func firstOrCreateRole(db *gorm.DB, name string) *model.RoleModel {
	var role model.RoleModel
	if err := db.Where("name = ?", name).First(&role).Error; err == nil {
		return &role
	}
	role = model.RoleModel{Name: name}
	if err := db.Create(&role).Error; err != nil {
		log.Printf("❌ Gagal seed role '%s': %v", name, err)
		return nil
	}
	return &role
}
