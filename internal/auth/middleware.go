package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "elitemotors/internal/errors"
	"elitemotors/internal/model"
)

const currentUserKey = "currentUser"

// UserLoader resolves a stored user from the email carried in token claims.
type UserLoader interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// LoadUser resolves the bearer token to a stored user and puts it in the
// request context. It runs behind the echojwt signature/expiry gate, so a
// parse failure here still means 401. Inactive accounts are rejected.
func LoadUser(jwtService *JWTService, loader UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, httpErr := resolveUser(c, jwtService, loader)
			if httpErr != nil {
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// OptionalUser resolves the bearer token when one is present but lets the
// request through anonymously otherwise. Used on public endpoints that
// attach the author when known.
func OptionalUser(jwtService *JWTService, loader UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if bearerToken(c) != "" {
				if user, httpErr := resolveUser(c, jwtService, loader); httpErr == nil {
					c.Set(currentUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests whose resolved user is outside the allowed
// roles. Must run after LoadUser.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHENTICATED",
				})
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "insufficient permissions",
				Code:  "FORBIDDEN",
			})
		}
	}
}

// CurrentUser returns the user resolved by LoadUser, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

func resolveUser(c echo.Context, jwtService *JWTService, loader UserLoader) (*model.User, *apperrors.HTTPError) {
	token := bearerToken(c)
	if token == "" {
		return nil, apperrors.NewHTTPError(http.StatusUnauthorized, "missing bearer token", "UNAUTHENTICATED")
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.NewHTTPError(http.StatusUnauthorized, "invalid or expired token", "UNAUTHENTICATED")
	}

	user, err := loader.FindByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		return nil, apperrors.NewHTTPError(http.StatusUnauthorized, "invalid or expired token", "UNAUTHENTICATED")
	}
	if !user.Active {
		return nil, apperrors.MapErrorToHTTP(apperrors.ErrAccountInactive)
	}
	return user, nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
