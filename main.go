package main

import (
	"context"
	"log"
	"os"

	"LogiTrack/CronJobs"
	"LogiTrack/FiberConfig"
	"LogiTrack/Models"
	"LogiTrack/Store"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}
	if err := Models.Connect(dbPath); err != nil {
		log.Fatal("Failed to open local store:", err)
	}

	ctx := context.Background()

	// The remote mirror is optional; without it every read and write is
	// served from the local store alone.
	var remote Store.RemoteStore
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		firestoreStore, err := Store.NewFirestoreStore(ctx, projectID, os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if err != nil {
			log.Printf("Firestore mirror disabled: %v", err)
		} else {
			remote = firestoreStore
		}
	}

	rates := Models.DefaultRates()
	if path := os.Getenv("RATES_FILE"); path != "" {
		loaded, err := Models.LoadRatesFile(path)
		if err != nil {
			log.Printf("Ignoring rates file: %v", err)
		} else {
			rates = loaded
		}
	}

	data := Store.NewData(Store.NewGateway(Store.NewLocalStore(Models.DB), remote), rates)
	if err := data.EnsureUsers(ctx); err != nil {
		log.Printf("Seeding default users reported: %v", err)
	}

	checker := CronJobs.NewOverdueChecker(data, true)
	if err := checker.Start(); err != nil {
		log.Printf("Failed to start overdue sweep: %v", err)
	}

	FiberConfig.FiberConfig(data)
}
