package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	shttp "shopgate/backend/internal/http"
	"shopgate/backend/internal/service/mock"
)

func TestJWTAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockAuthService(ctrl)
	middleware := shttp.JWTAuthMiddleware(mockAuth)

	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	t.Run("MissingAuth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := middleware(handler)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAuth.EXPECT().ValidateToken("invalid-token").Return(false, nil)

		err := middleware(handler)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidateTokenError", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer error-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAuth.EXPECT().ValidateToken("error-token").Return(false, errors.New("validate failed"))

		err := middleware(handler)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidTokenHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAuth.EXPECT().ValidateToken("valid-token").Return(true, nil)

		err := middleware(handler)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", rec.Body.String())
	})

	t.Run("ValidTokenCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: shttp.AuthCookieName, Value: "cookie-token"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAuth.EXPECT().ValidateToken("cookie-token").Return(true, nil)

		err := middleware(handler)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	mw := shttp.RequestIDMiddleware()

	t.Run("GeneratesID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := func(c echo.Context) error {
			id, ok := c.Get("requestId").(string)
			require.True(t, ok)
			require.NotEmpty(t, id)
			return c.NoContent(http.StatusOK)
		}

		require.NoError(t, mw(handler)(c))
		require.NotEmpty(t, rec.Header().Get(shttp.RequestIDHeader))
	})

	t.Run("PreservesCallerID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(shttp.RequestIDHeader, "caller-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}

		require.NoError(t, mw(handler)(c))
		require.Equal(t, "caller-id", rec.Header().Get(shttp.RequestIDHeader))
	})
}

func TestRequestLoggerMiddleware_StatusBranches(t *testing.T) {
	e := echo.New()
	mw := shttp.RequestLoggerMiddleware()

	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "ok", statusCode: http.StatusOK},
		{name: "client_error", statusCode: http.StatusBadRequest},
		{name: "server_error", statusCode: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := func(c echo.Context) error {
				return c.JSON(tc.statusCode, map[string]string{"status": "ok"})
			}

			err := mw(handler)(c)
			require.NoError(t, err)
			require.Equal(t, tc.statusCode, rec.Code)
		})
	}
}

func TestThrottleMiddleware(t *testing.T) {
	e := echo.New()
	// One token, no refill worth mentioning within the test
	mw := shttp.ThrottleMiddleware(0.001, 1)

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(handler)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	require.NoError(t, mw(handler)(c))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}
