package seeds

import (
	"gorm.io/gorm"

	rbacSeeds "github.com/Osland07/tensitrack/internals/seeds/rbac"
	screeningSeeds "github.com/Osland07/tensitrack/internals/seeds/screening"
	userSeeds "github.com/Osland07/tensitrack/internals/seeds/users"
)

// RunAllSeeds mengisi data referensi. Semua seeder idempoten
// (baris yang sudah ada dilewati), aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	rbacSeeds.SeedPermissions(db)
	rbacSeeds.SeedRoles(db)
	userSeeds.SeedUsers(db)

	screeningSeeds.SeedRiskFactorsFromJSON(db, "internals/seeds/screening/data_risk_factors.json")
	screeningSeeds.SeedRiskLevelsFromJSON(db, "internals/seeds/screening/data_risk_levels.json")
}
