package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"elitemotors/internal/model"
)

// stubLoader serves a fixed set of users keyed by email.
type stubLoader struct {
	users map[string]*model.User
}

func (s *stubLoader) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func callWithToken(t *testing.T, mw echo.MiddlewareFunc, token string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return rec, handler(c)
}

func TestLoadUser(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	active := &model.User{ID: 1, Email: "active@x.com", Role: model.RoleUser, Active: true}
	inactive := &model.User{ID: 2, Email: "inactive@x.com", Role: model.RoleUser, Active: false}
	loader := &stubLoader{users: map[string]*model.User{
		active.Email:   active,
		inactive.Email: inactive,
	}}
	mw := LoadUser(jwtService, loader)

	t.Run("resolves active user", func(t *testing.T) {
		token, err := jwtService.GenerateToken(active)
		assert.NoError(t, err)

		_, err = callWithToken(t, mw, token)
		assert.NoError(t, err)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := callWithToken(t, mw, "")
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		token, err := jwtService.GenerateToken(&model.User{ID: 3, Email: "gone@x.com", Role: model.RoleUser})
		assert.NoError(t, err)

		_, err = callWithToken(t, mw, token)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("inactive account", func(t *testing.T) {
		token, err := jwtService.GenerateToken(inactive)
		assert.NoError(t, err)

		_, err = callWithToken(t, mw, token)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	runWithUser := func(user *model.User, mw echo.MiddlewareFunc) error {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if user != nil {
			c.Set(currentUserKey, user)
		}
		handler := mw(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})
		return handler(c)
	}

	staffOnly := RequireRole(model.RoleOwner, model.RoleAdmin)

	t.Run("owner passes", func(t *testing.T) {
		assert.NoError(t, runWithUser(&model.User{Role: model.RoleOwner}, staffOnly))
	})

	t.Run("admin passes", func(t *testing.T) {
		assert.NoError(t, runWithUser(&model.User{Role: model.RoleAdmin}, staffOnly))
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		err := runWithUser(&model.User{Role: model.RoleUser}, staffOnly)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("no resolved user is unauthenticated", func(t *testing.T) {
		err := runWithUser(nil, staffOnly)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestOptionalUser(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	known := &model.User{ID: 1, Email: "known@x.com", Role: model.RoleUser, Active: true}
	loader := &stubLoader{users: map[string]*model.User{known.Email: known}}
	mw := OptionalUser(jwtService, loader)

	t.Run("anonymous request passes through", func(t *testing.T) {
		_, err := callWithToken(t, mw, "")
		assert.NoError(t, err)
	})

	t.Run("garbage token still passes through", func(t *testing.T) {
		_, err := callWithToken(t, mw, "garbage")
		assert.NoError(t, err)
	})

	t.Run("valid token attaches the user", func(t *testing.T) {
		token, err := jwtService.GenerateToken(known)
		assert.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var resolved *model.User
		handler := mw(func(c echo.Context) error {
			resolved = CurrentUser(c)
			return c.String(http.StatusOK, "ok")
		})
		assert.NoError(t, handler(c))
		assert.NotNil(t, resolved)
		assert.Equal(t, known.ID, resolved.ID)
	})
}
