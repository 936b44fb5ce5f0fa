package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elitemotors/internal/auth"
	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/service"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// CreateInquiry godoc
// @Summary Submit a contact inquiry
// @Description Public endpoint. When a valid bearer token accompanies the request the inquiry is attached to that user.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Inquiry"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) CreateInquiry(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry := &model.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if user := auth.CurrentUser(c); user != nil {
		inquiry.UserID = &user.ID
	}

	if _, err := h.contactService.CreateInquiry(c.Request().Context(), inquiry); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Thank you for contacting us. We will get back to you soon.",
	})
}
