package database

import (
	"fmt"
	"log"
	"os"
	"restaurant_manager/model"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := os.Getenv("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	log.Println("Connection opened to database")
	Migrate(DB)
	SeedData(DB)
}

func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&model.Account{},
		&model.Table{},
		&model.Reservation{},
	); err != nil {
		panic(fmt.Sprintf("failed to migrate database: %v", err))
	}
}

// Close releases the pooled connections; invoked from the shutdown path.
func Close() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println("failed to reach underlying connection pool:", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("failed to close database:", err)
	}
}
