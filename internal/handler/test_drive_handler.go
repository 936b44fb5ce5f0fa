package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elitemotors/internal/auth"
	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/service"
)

// TestDriveHandler handles the current user's test-drive requests.
type TestDriveHandler struct {
	driveService service.TestDriveService
}

// NewTestDriveHandler creates a new test-drive handler.
func NewTestDriveHandler(driveService service.TestDriveService) *TestDriveHandler {
	return &TestDriveHandler{driveService: driveService}
}

// TestDriveRequest represents a test-drive booking payload.
type TestDriveRequest struct {
	CarID         uint   `json:"car_id" validate:"required"`
	PreferredDate string `json:"preferred_date" validate:"required"`
	PreferredTime string `json:"preferred_time" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Message       string `json:"message"`
}

// ListTestDrives godoc
// @Summary List the current user's test-drive requests
// @Tags test-drives
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TestDriveResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/test-drives [get]
func (h *TestDriveHandler) ListTestDrives(c echo.Context) error {
	user := auth.CurrentUser(c)
	drives, err := h.driveService.ListTestDrives(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, model.TestDriveResponses(drives))
}

// CreateTestDrive godoc
// @Summary Request a test drive
// @Tags test-drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestDriveRequest true "Booking details"
// @Success 201 {object} model.TestDriveResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/test-drives [post]
func (h *TestDriveHandler) CreateTestDrive(c echo.Context) error {
	var req TestDriveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := auth.CurrentUser(c)
	drive := &model.TestDrive{
		UserID:        user.ID,
		CarID:         req.CarID,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Phone:         req.Phone,
		Message:       req.Message,
	}

	created, err := h.driveService.CreateTestDrive(c.Request().Context(), drive)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created.Response())
}
