package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"elitemotors/internal/errors"
	"elitemotors/internal/service"
)

// SeedHandler handles the starter-catalog seed endpoint.
type SeedHandler struct {
	carService service.CarService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(carService service.CarService) *SeedHandler {
	return &SeedHandler{carService: carService}
}

// SeedResponse represents the seed result.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Seed godoc
// @Summary Seed the starter catalog
// @Description Inserts the sample inventory only when the cars table is empty. A second call reports the existing count and writes nothing.
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	created, existing, err := h.carService.Seed(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if created == 0 {
		return c.JSON(http.StatusOK, SeedResponse{
			Message: fmt.Sprintf("Database already has %d cars", existing),
			Count:   existing,
		})
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Message: fmt.Sprintf("Added %d cars to database", created),
		Count:   created,
	})
}
