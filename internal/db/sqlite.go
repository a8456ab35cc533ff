package db

import (
	"log"

	"cinerec/internal/config"
	"cinerec/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var sqlDB *gorm.DB

// InitSQLite abre la base relacional de estado de usuarios
// (users, ratings, watch history) y migra el esquema.
func InitSQLite(cfg *config.Config) {
	gdb, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("[sqlite] error abriendo %s: %v", cfg.SQLitePath, err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Rating{}, &models.WatchHistory{}); err != nil {
		log.Fatalf("[sqlite] error migrando esquema: %v", err)
	}

	sqlDB = gdb
	log.Printf("[sqlite] abierto %s\n", cfg.SQLitePath)
}

func SQL() *gorm.DB {
	return sqlDB
}
