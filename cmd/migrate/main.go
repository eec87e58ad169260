package main

import (
	"log"
	"os"

	"event-admission-platform/internal/config"
	"event-admission-platform/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	dbConfig := database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	migrator := database.NewMigrator(db.DB)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := migrator.RunMigrations(); err != nil {
			log.Fatal("Migration failed:", err)
		}
		log.Println("Migrations completed")
	case "status":
		if err := migrator.GetMigrationStatus(); err != nil {
			log.Fatal("Failed to get migration status:", err)
		}
	default:
		log.Fatalf("Unknown command %q (expected: up, status)", command)
	}
}
