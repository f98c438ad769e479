// Seed loads the starter fleet and the default staff account into the
// database. Safe to run against an empty schema; rerunning duplicates rows.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Seeding database...", "host", cfg.Database.Host, "database", cfg.Database.Database)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	if err := seedStaff(ctx, store); err != nil {
		log.Fatalf("Failed to seed staff: %v", err)
	}
	if err := seedVehicles(ctx, store); err != nil {
		log.Fatalf("Failed to seed vehicles: %v", err)
	}

	logger.Info("Seeding complete")
}

func seedStaff(ctx context.Context, store *postgres.Store) error {
	password := os.Getenv("SEED_STAFF_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := &domain.Staff{
		EmployeeCode: "EMP001",
		Name:         "Front Desk Admin",
		Email:        "admin@carrental.example.com",
		PasswordHash: string(hash),
	}
	if err := store.Staff().Create(ctx, staff); err != nil {
		return err
	}

	logger.Info("Seeded staff account", "employee_code", staff.EmployeeCode, "id", staff.ID)
	return nil
}

func seedVehicles(ctx context.Context, store *postgres.Store) error {
	vehicles := []domain.Vehicle{
		{
			Name:        "Toyota Camry",
			Category:    "Sedan",
			PricePerDay: 45,
			Features:    []string{"5 Seats", "Automatic", "Air Conditioning", "Bluetooth"},
			ImageURL:    "images/toyota-camry.jpg",
		},
		{
			Name:        "Honda CR-V",
			Category:    "SUV",
			PricePerDay: 65,
			Features:    []string{"7 Seats", "Automatic", "AWD", "Navigation"},
			ImageURL:    "images/honda-crv.jpg",
		},
		{
			Name:        "Tesla Model 3",
			Category:    "Electric Sedan",
			PricePerDay: 85,
			Features:    []string{"5 Seats", "Autopilot", "Electric", "Premium Sound"},
			ImageURL:    "images/tesla-model3.jpg",
		},
		{
			Name:        "Ford Explorer",
			Category:    "SUV",
			PricePerDay: 70,
			Features:    []string{"7 Seats", "Automatic", "4WD", "Leather Seats"},
			ImageURL:    "images/ford-explorer.jpg",
		},
		{
			Name:        "BMW 3 Series",
			Category:    "Luxury Sedan",
			PricePerDay: 95,
			Features:    []string{"5 Seats", "Automatic", "Sport Mode", "Premium Interior"},
			ImageURL:    "images/bmw-3series.jpg",
		},
		{
			Name:        "Chevrolet Tahoe",
			Category:    "Large SUV",
			PricePerDay: 80,
			Features:    []string{"8 Seats", "Automatic", "4WD", "Towing Capacity"},
			ImageURL:    "images/chevrolet-tahoe.jpg",
		},
	}

	for i := range vehicles {
		v := &vehicles[i]
		v.Status = domain.VehicleStatusAvailable
		if err := store.Vehicles().Create(ctx, v); err != nil {
			return err
		}
		logger.Info("Seeded vehicle", "id", v.ID, "name", v.Name, "price_per_day", v.PricePerDay)
	}
	return nil
}
