package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initializes and returns the database connection
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	pgConnStr := os.Getenv("POSTGRES_CONN_STR")
	if pgConnStr == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(pgConnStr), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL!")
	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing PostgreSQL connection: %v\n", err)
	} else {
		log.Println("PostgreSQL connection closed.")
	}
}
