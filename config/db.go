package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shopapi/models"
)

// Connect opens the Postgres connection described by the environment and
// reconciles the schema for both entity tables: columns are added or altered
// to match the models, existing data is never dropped.
func Connect() (*gorm.DB, error) {
	err_env := godotenv.Load()
	if err_env != nil {
		log.Println("Error Loading .env file")
	}
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
		return nil, err
	}
	return db, nil
}
