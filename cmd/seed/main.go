package main

import (
	"context"
	"log"

	"elitemotors/internal/cache"
	"elitemotors/internal/config"
	"elitemotors/internal/db"
	"elitemotors/internal/model"
	"elitemotors/internal/repository"
	"elitemotors/internal/service"
)

// Seeds the starter catalog from the command line. Shares the emptiness
// guard with POST /api/seed, so running it against a populated database is
// a no-op.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBConnectTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Ensure the schema is up to date before writing
	if err := gormDB.AutoMigrate(&model.Car{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	carRepo := repository.NewCarRepository(gormDB)
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	carService := service.NewCarService(carRepo, cacheClient)

	created, existing, err := carService.Seed(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed cars: %v", err)
	}

	if created == 0 {
		log.Printf("Database already has %d cars, nothing to do", existing)
		return
	}
	log.Printf("Seed completed successfully!")
	log.Printf("  - Cars created: %d", created)
}
