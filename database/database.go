package database

import (
	"log"
	"os"

	"worldbuilding-app/internal/domain/users"
	"worldbuilding-app/internal/domain/worlds"

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

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
}

// Migrate creates/updates every domain table, join tables included. Shared
// with tests, which run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// identity
		&users.User{},
		&users.VerificationToken{},

		// owner entities
		&worlds.Series{},
		&worlds.Book{},

		// resources
		&worlds.Battle{},
		&worlds.Character{},
		&worlds.Creature{},
		&worlds.Setting{},
		&worlds.Transport{},
	)
}
