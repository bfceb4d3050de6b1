package config

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	BaseURL   string
	UploadDir string
	Email     EmailConfig
}

type EmailConfig struct {
	SendgridKey string
	From        string
	FromName    string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=assignmate sslmode=disable"
		log.Println("DATABASE_URL not set, using local PostgreSQL database")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:        db,
		BaseURL:   getenv("BASE_URL", "http://localhost:3000"),
		UploadDir: getenv("UPLOAD_DIR", "./media"),
		Email: EmailConfig{
			SendgridKey: os.Getenv("SENDGRID_API_KEY"),
			From:        getenv("EMAIL_FROM", "no-reply@assignmate.local"),
			FromName:    getenv("EMAIL_FROM_NAME", "AssignMate"),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
