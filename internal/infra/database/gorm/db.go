package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/pkg/resource"
)

var Db *gorm.DB

// Init opens the Postgres connection and migrates the refresh history table.
func Init() error {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&entity.RefreshRecord{}); err != nil {
		return fmt.Errorf("failed to migrate refresh history: %w", err)
	}

	Db = db
	return nil
}
