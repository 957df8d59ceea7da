package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB opens the database. With DB_URL set the server runs against
// Postgres; without it the app falls back to a local sqlite file (the
// desktop shell ships this way), DB_PATH overriding the default location.
func ConnectDB() {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if dsn := os.Getenv("DB_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./timehair.db"
		}
		log.Printf("DB_URL not set, using local sqlite database at %s", path)
		db, err = gorm.Open(sqlite.Open(path), gormCfg)
	}

	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
