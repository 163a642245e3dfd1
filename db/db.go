package db

import (
	"log"
	"os"
	"path/filepath"

	"tidytask/config"
	"tidytask/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Connect opens the database connection (sqlite3 by default) and migrates the
// schema. Set AUTOMIGRATE=0 to skip migration on environments managed by hand.
func Connect(cfg config.Configuration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.Database == "postgres" || cfg.Database == "postgresql" {
		log.Println("Using postgresql connection...")
		path := "host=" + cfg.DbHost + " port=" + cfg.DbPort
		path += " user=" + cfg.DbUser + " dbname=" + cfg.DbName
		path += " password=" + cfg.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Println("Using sqlite3 connection...")
		dir := filepath.Dir("db/database.db")
		db, err = gorm.Open("sqlite3", dir+"/database.db")
	}

	if err != nil {
		log.Println("Got error when connect database, the error is: " + err.Error())
		return nil, err
	}

	if getenv("AUTOMIGRATE", "1") == "1" {
		Migrate(db)
	}

	return db, nil
}

// Migrate creates/updates the User and Todo tables.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Todo{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
