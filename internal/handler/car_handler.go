package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/service"
)

// CarHandler handles inventory endpoints.
type CarHandler struct {
	carService service.CarService
}

// NewCarHandler creates a new car handler.
func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// CarSpecsRequest carries the nested specs object of a car payload.
type CarSpecsRequest struct {
	Engine       string `json:"engine" validate:"required"`
	Transmission string `json:"transmission" validate:"required"`
	Fuel         string `json:"fuel" validate:"required"`
}

// CarRequest represents a create/update car payload.
type CarRequest struct {
	Name        string          `json:"name" validate:"required"`
	Price       int             `json:"price" validate:"gte=0"`
	Year        int             `json:"year" validate:"gte=0"`
	Mileage     int             `json:"mileage" validate:"gte=0"`
	Image       string          `json:"image" validate:"required,url"`
	Featured    bool            `json:"featured"`
	Description string          `json:"description" validate:"required"`
	Color       string          `json:"color"`
	Specs       CarSpecsRequest `json:"specs" validate:"required"`
}

func (r *CarRequest) toModel() *model.Car {
	return &model.Car{
		Name:         r.Name,
		Price:        r.Price,
		Year:         r.Year,
		Mileage:      r.Mileage,
		Image:        r.Image,
		Featured:     r.Featured,
		Description:  r.Description,
		Color:        r.Color,
		Engine:       r.Specs.Engine,
		Transmission: r.Specs.Transmission,
		Fuel:         r.Specs.Fuel,
	}
}

// ListCars godoc
// @Summary List all cars
// @Tags cars
// @Produce json
// @Success 200 {array} model.CarResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars [get]
func (h *CarHandler) ListCars(c echo.Context) error {
	cars, err := h.carService.ListCars(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, model.CarResponses(cars))
}

// ListFeatured godoc
// @Summary List featured cars
// @Tags cars
// @Produce json
// @Success 200 {array} model.CarResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars/featured [get]
func (h *CarHandler) ListFeatured(c echo.Context) error {
	cars, err := h.carService.ListFeatured(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, model.CarResponses(cars))
}

// GetCar godoc
// @Summary Get a car by id
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} model.CarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	car, err := h.carService.GetCar(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, car.Response())
}

// CreateCar godoc
// @Summary Add a car to the inventory
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CarRequest true "Car payload"
// @Success 201 {object} model.CarResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /cars [post]
func (h *CarHandler) CreateCar(c echo.Context) error {
	var req CarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	car, err := h.carService.CreateCar(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, car.Response())
}

// UpdateCar godoc
// @Summary Update a car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Param request body CarRequest true "Car payload"
// @Success 200 {object} model.CarResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /cars/{id} [put]
func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req CarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	car, err := h.carService.UpdateCar(c.Request().Context(), id, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, car.Response())
}

// DeleteCar godoc
// @Summary Delete a car
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	if err := h.carService.DeleteCar(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Car deleted successfully",
	})
}

// parseID parses a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, *echo.HTTPError) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
