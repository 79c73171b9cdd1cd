package database

import (
	"fmt"
	"strconv"

	"hotel_manager/config"
	"hotel_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Admin{},
		&model.Hotel{},
		&model.Guest{},
	)

	// The MainAdmin existence check in register is not transactional; this
	// index makes the database the arbiter when two registrations race.
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_single_main_admin ON admins (role) WHERE role = 'MainAdmin'`)

	fmt.Println("Database Migrated")

	SeedData(DB)
}
