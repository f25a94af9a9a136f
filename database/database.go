package database

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"caracoroa/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db
	log.Println("✅ Connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil {
		log.Printf("⚠️  Invalid value for DB_AUTO_MIGRATE: %s\n", autoMigrateEnv)
	}

	if autoMigrate {
		log.Println("🟡 Starting auto-migration...")

		if err := DB.AutoMigrate(
			&models.User{},
			&models.Wallet{},
			&models.Bet{},
			&models.Transaction{},
			&models.BetLevel{},
			&models.Session{},
		); err != nil {
			log.Fatal("❌ Failed to auto-migrate database:", err)
		}

		log.Println("✅ Auto migration completed")
	}

	seedDefaultLevels()
}

// seedDefaultLevels inserts the stock tier table on a fresh database only; an
// empty bet_levels table would otherwise reject every wager as an invalid tier.
func seedDefaultLevels() {
	var count int64
	if err := DB.Unscoped().Model(&models.BetLevel{}).Count(&count).Error; err != nil {
		log.Println("❌ Failed to count bet levels:", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := []models.BetLevel{
		{Level: 1, Multiplier: decimal.NewFromFloat(1.9), WinChance: decimal.NewFromInt(50)},
		{Level: 2, Multiplier: decimal.NewFromFloat(4.9), WinChance: decimal.NewFromInt(30)},
		{Level: 3, Multiplier: decimal.NewFromFloat(9.9), WinChance: decimal.NewFromInt(10)},
	}
	if err := DB.Create(&defaults).Error; err != nil {
		log.Println("❌ Failed to seed default bet levels:", err)
		return
	}
	log.Println("✅ Seeded default bet levels")
}
