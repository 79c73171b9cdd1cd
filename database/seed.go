package database

import (
	"log"

	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates a bootstrap MainAdmin from MAIN_ADMIN_EMAIL and
// MAIN_ADMIN_PASSWORD when no MainAdmin exists yet. Deployments that rely on
// self-service registration leave both unset.
func SeedData(db *gorm.DB) {
	email := config.Config("MAIN_ADMIN_EMAIL")
	password := config.Config("MAIN_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&model.Admin{}).Where("role = ?", constants.ROLE_MAIN_ADMIN).Count(&count).Error; err != nil {
		log.Println("failed to check for existing MainAdmin:", err)
		return
	}
	if count > 0 {
		return
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.Admin{
		Email:    email,
		Password: string(bytes),
		Role:     constants.ROLE_MAIN_ADMIN,
	}
	if err := db.Where(model.Admin{Email: email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed MainAdmin account:", err)
	}
}
