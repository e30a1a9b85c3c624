package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/expense-tracker/internal/errors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		HandleErrorGin(c, err, testLogger())
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		errorCode  string
	}{
		{"not found", apperrors.Wrap(apperrors.ErrNotFound, "expense not found"), http.StatusNotFound, "not_found"},
		{"conflict", apperrors.Wrap(apperrors.ErrConflict, "user already exists"), http.StatusConflict, "conflict"},
		{"invalid input", apperrors.Wrap(apperrors.ErrInvalidInput, "bad filter"), http.StatusUnprocessableEntity, "invalid_input"},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperrors.Wrap(apperrors.ErrForbidden, "not your expense"), http.StatusForbidden, "forbidden"},
		{"internal", apperrors.New("database is on fire"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithError(t, tt.err)
			assert.Equal(t, tt.statusCode, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.errorCode, resp.Error)
		})
	}
}

func TestHandleErrorGinDoesNotLeakInternalDetails(t *testing.T) {
	w := performWithError(t, apperrors.New("pq: connection refused"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Message, "pq:")
}

func TestHandleBadRequestGin(t *testing.T) {
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		HandleBadRequestGin(c, apperrors.New("invalid json"), testLogger())
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleValidationErrorGin(t *testing.T) {
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		HandleValidationErrorGin(c, apperrors.New("title: cannot be blank"), testLogger())
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
