package rbac

import (
	"log"

	"gorm.io/gorm"

	model "github.com/Osland07/tensitrack/internals/features/rbac/model"
)

var permissionNames = []string{
	"view users", "create users", "edit users", "delete users",
	"view roles", "create roles", "edit roles", "delete roles",
	"view permissions", "create permissions", "edit permissions", "delete permissions",

	"risk-levels.view", "risk-levels.create", "risk-levels.edit", "risk-levels.delete", "risk-levels.print",
	"risk-factors.view", "risk-factors.create", "risk-factors.edit", "risk-factors.delete", "risk-factors.print",
	"rules.view", "rules.create", "rules.edit", "rules.delete",
	"screening-history.view", "screening-history.delete", "screening-history.print",

	"manage all",
}

func SeedPermissions(db *gorm.DB) {
	for _, name := range permissionNames {
		var existing model.PermissionModel
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&model.PermissionModel{Name: name}).Error; err != nil {
			log.Printf("❌ Gagal seed permission '%s': %v", name, err)
		}
	}
	log.Println("✅ Seed permissions selesai.")
}
