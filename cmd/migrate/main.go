package main

import (
	"database/sql"
	"log"

	"fintrack/internal/config"
	"fintrack/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Applies pending migrations and exits. Used by deploy jobs that run schema
// changes before the API rolls out; the server itself only migrates when
// AUTO_MIGRATE is set.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("Database readiness check failed: %v", err)
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		log.Fatalf("Failed to read migration status: %v", err)
	}

	log.Printf("Migrations complete. Version: %d, Dirty: %v", version, dirty)
}
