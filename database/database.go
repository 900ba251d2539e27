package database

import (
	"fmt"
	"log"
	"os"

	"coretalents-backend/internal/domain/billing"
	"coretalents-backend/internal/domain/blog"
	"coretalents-backend/internal/domain/plans"
	"coretalents-backend/internal/domain/resumes"
	"coretalents-backend/internal/domain/reviews"
	"coretalents-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&plans.Plan{},
		&billing.Subscription{},
		&resumes.Resume{},

		// site content
		&blog.Post{},
		&reviews.Review{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
