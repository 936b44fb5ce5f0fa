package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elitemotors/internal/auth"
	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/service"
)

// FavoriteHandler handles the current user's saved cars.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoriteRequest represents an add-favorite payload.
type FavoriteRequest struct {
	CarID uint `json:"car_id" validate:"required"`
}

// ListFavorites godoc
// @Summary List the current user's favorite cars
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CarResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/favorites [get]
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	user := auth.CurrentUser(c)
	cars, err := h.favoriteService.ListFavorites(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, model.CarResponses(cars))
}

// AddFavorite godoc
// @Summary Add a car to favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FavoriteRequest true "Car to favorite"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/favorites [post]
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := auth.CurrentUser(c)
	if err := h.favoriteService.AddFavorite(c.Request().Context(), user.ID, req.CarID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Car added to favorites",
	})
}

// RemoveFavorite godoc
// @Summary Remove a car from favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param car_id path int true "Car ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/favorites/{car_id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	carID, httpErr := parseID(c, "car_id")
	if httpErr != nil {
		return httpErr
	}

	user := auth.CurrentUser(c)
	if err := h.favoriteService.RemoveFavorite(c.Request().Context(), user.ID, carID); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Car removed from favorites",
	})
}
