package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	rbacModel "github.com/Osland07/tensitrack/internals/features/rbac/model"
	userModel "github.com/Osland07/tensitrack/internals/features/users/user/model"
)

type userSeed struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var defaultUsers = []userSeed{
	{Name: "User", Email: "user@example.com", Password: "password", Role: "user"},
	{Name: "Admin", Email: "admin@example.com", Password: "password", Role: "admin"},
	{Name: "Super Admin", Email: "superadmin@example.com", Password: "password", Role: "superadmin"},
}

func SeedUsers(db *gorm.DB) {
	for _, seed := range defaultUsers {
		var existing userModel.UserModel
		if err := db.Where("email = ?", seed.Email).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password seed '%s': %v", seed.Email, err)
			continue
		}

		user := userModel.UserModel{
			Name:     seed.Name,
			Email:    seed.Email,
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal seed user '%s': %v", seed.Email, err)
			continue
		}

		var role rbacModel.RoleModel
		if err := db.Where("name = ?", seed.Role).First(&role).Error; err != nil {
			log.Printf("⚠️ Role '%s' belum ada, user '%s' dibuat tanpa role", seed.Role, seed.Email)
			continue
		}
		if err := db.Model(&user).Association("Roles").Append(&role); err != nil {
			log.Printf("❌ Gagal attach role untuk '%s': %v", seed.Email, err)
		}
	}
	log.Println("✅ Seed users selesai.")
}
