package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"elitemotors/internal/auth"
	"elitemotors/internal/config"
	"elitemotors/internal/errors"
	"elitemotors/internal/handler"
	"elitemotors/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userLoader auth.UserLoader,
	carHandler *handler.CarHandler,
	authHandler *handler.AuthHandler,
	favoriteHandler *handler.FavoriteHandler,
	testDriveHandler *handler.TestDriveHandler,
	contactHandler *handler.ContactHandler,
	adminHandler *handler.AdminHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Welcome to Elite Motors API",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Signature/expiry gate; user resolution happens in auth.LoadUser behind it.
	requireJWT := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
	loadUser := auth.LoadUser(jwtService, userLoader)
	staffOnly := auth.RequireRole(model.RoleOwner, model.RoleAdmin)
	adminOnly := auth.RequireRole(model.RoleAdmin)

	api := e.Group("/api")

	// Public routes
	api.GET("/cars", carHandler.ListCars)
	api.GET("/cars/featured", carHandler.ListFeatured)
	api.GET("/cars/:id", carHandler.GetCar)
	api.POST("/seed", seedHandler.Seed)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/contact", contactHandler.CreateInquiry, auth.OptionalUser(jwtService, userLoader))

	// Inventory mutations, owner or admin only
	api.POST("/cars", carHandler.CreateCar, requireJWT, loadUser, staffOnly)
	api.PUT("/cars/:id", carHandler.UpdateCar, requireJWT, loadUser, staffOnly)
	api.DELETE("/cars/:id", carHandler.DeleteCar, requireJWT, loadUser, staffOnly)

	// Any authenticated user
	secured := api.Group("", requireJWT, loadUser)
	secured.GET("/auth/me", authHandler.Me)
	secured.GET("/user/favorites", favoriteHandler.ListFavorites)
	secured.POST("/user/favorites", favoriteHandler.AddFavorite)
	secured.DELETE("/user/favorites/:car_id", favoriteHandler.RemoveFavorite)
	secured.GET("/user/test-drives", testDriveHandler.ListTestDrives)
	secured.POST("/user/test-drives", testDriveHandler.CreateTestDrive)

	// Admin only
	admin := api.Group("/admin", requireJWT, loadUser, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
