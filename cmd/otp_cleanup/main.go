package main

import (
	"context"
	"log"
	"os"

	"kabstudio/internal/database"
	"kabstudio/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	removed, err := repository.NewOTPRepository(db).DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("otp cleanup failed: %v", err)
	}

	log.Printf("otp cleanup completed: removed=%d", removed)
}
