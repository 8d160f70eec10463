package db

import (
	"os"
	"time"

	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: impossible to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL not defined")
		panic("database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("could not connect to the database")
	}

	// Queries against a stuck connection must fail instead of hanging the
	// request; statement_timeout applies server-side to every session.
	DB.Exec("SET statement_timeout = '10s'")

	sqlDB, err := DB.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.LiveTV{},
		&models.LiveTVCategory{},
		&models.Movie{},
		&models.Series{},
		&models.Event{},
		&models.Radio{},
		&models.Category{},
		&models.Language{},
		&models.Actor{},
		&models.Director{},
		&models.Page{},
		&models.FAQ{},
		&models.Ad{},
		&models.Notification{},
		&models.Contact{},
		&models.Feedback{},
		&models.Plan{},
		&models.Subscription{},
		&models.SubscriptionTransaction{},
		&models.PaymentMethod{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}
