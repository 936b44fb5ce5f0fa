package main

import (
	"log"
	"net/http"
	"os"

	"elitemotors/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"elitemotors/internal/auth"
	"elitemotors/internal/cache"
	"elitemotors/internal/config"
	"elitemotors/internal/db"
	"elitemotors/internal/handler"
	"elitemotors/internal/model"
	"elitemotors/internal/repository"
	"elitemotors/internal/router"
	"elitemotors/internal/service"
)

// @title Elite Motors API
// @version 1.0
// @description Inventory management API for the Elite Motors dealership: car listings, favorites, test drives and role-based administration.
// @host localhost:8000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBConnectTimeout)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Favorite{},
			&model.TestDrive{},
			&model.ContactInquiry{},
			&model.Car{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models; parents first so the foreign keys resolve
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Car{},
		&model.Favorite{},
		&model.TestDrive{},
		&model.ContactInquiry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	carRepo := repository.NewCarRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	testDriveRepo := repository.NewTestDriveRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	carService := service.NewCarService(carRepo, cacheClient)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, carRepo)
	testDriveService := service.NewTestDriveService(testDriveRepo, carRepo)
	contactService := service.NewContactService(contactRepo)

	// Initialize handlers
	carHandler := handler.NewCarHandler(carService)
	authHandler := handler.NewAuthHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	testDriveHandler := handler.NewTestDriveHandler(testDriveService)
	contactHandler := handler.NewContactHandler(contactService)
	adminHandler := handler.NewAdminHandler(userService)
	seedHandler := handler.NewSeedHandler(carService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		carHandler,
		authHandler,
		favoriteHandler,
		testDriveHandler,
		contactHandler,
		adminHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
