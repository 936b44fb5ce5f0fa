package errors

import (
	"errors"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrCarNotFound is returned when a car is not found.
	ErrCarNotFound = errors.New("Car not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrFavoriteNotFound is returned when a car is not in the user's favorites.
	ErrFavoriteNotFound = errors.New("Car not in favorites")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrUsernameTaken is returned when registering with a username already in use.
	ErrUsernameTaken = errors.New("Username already taken")
	// ErrFavoriteExists is returned when favoriting a car twice.
	ErrFavoriteExists = errors.New("Car is already in favorites")
	// ErrInvalidCredentials is returned when login lookup or password check fails.
	ErrInvalidCredentials = errors.New("Invalid username or password")
	// ErrAccountInactive is returned when the account's active flag is false.
	ErrAccountInactive = errors.New("Account is inactive")
	// ErrInvalidRole is returned when a role value is outside the enumeration.
	ErrInvalidRole = errors.New("Invalid role")
	// ErrSelfDelete is returned when an admin tries to delete their own account.
	ErrSelfDelete = errors.New("Cannot delete your own account")
)

// IsDuplicateKey reports whether err is a unique-constraint violation,
// either as translated by GORM or raw from the MySQL driver (error 1062).
// Create paths that pre-check for duplicates still need this: a concurrent
// writer can win the race and the insert then fails on the unique index.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate-resource
// errors deliberately map to 400 with a specific message; the frontend keys
// off the detail string.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrCarNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CAR_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrFavoriteNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FAVORITE_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrUsernameTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case ErrFavoriteExists:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FAVORITE_EXISTS")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrAccountInactive:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ACCOUNT_INACTIVE")
	case ErrInvalidRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case ErrSelfDelete:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_DELETE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
