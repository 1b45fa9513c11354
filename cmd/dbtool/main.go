package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"order-grouping-service/internal/adapters/repositories"
	"order-grouping-service/internal/config"
	"order-grouping-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/orders.json")
	if err := initAndSeed(database, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Println("Seeding orders...")
	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
