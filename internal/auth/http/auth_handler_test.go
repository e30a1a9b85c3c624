package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/auth/http/mocks"
)

func setupAuthRouter(authUC *mocks.MockAuthUseCase) *gin.Engine {
	handler := NewAuthHandler(authUC, testLogger())
	router := gin.New()
	router.POST("/v1/auth/register", handler.RegisterHandler)
	router.POST("/v1/auth/login", handler.LoginHandler)
	return router
}

func performJSONRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success_Returns201", func(t *testing.T) {
		authUC := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(authUC)

		user := &authDomain.AuthUser{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  "alice",
			Email:     "alice@example.com",
			Role:      authDomain.RoleUser,
			AccountID: uuid.Must(uuid.NewV7()),
			CreatedAt: time.Date(2025, 11, 16, 10, 30, 0, 0, time.UTC),
		}
		authUC.On("Register", mock.Anything, mock.MatchedBy(func(input *authDomain.RegisterInput) bool {
			return input.Username == "alice" && input.Email == "alice@example.com"
		})).
			Return(user, nil).
			Once()

		w := performJSONRequest(router, http.MethodPost, "/v1/auth/register", gin.H{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "Str0ng!Password",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
		assert.NotContains(t, w.Body.String(), "password")
		authUC.AssertExpectations(t)
	})

	t.Run("Error_MalformedJSON_Returns400", func(t *testing.T) {
		authUC := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(authUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader([]byte("{not-json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		authUC.AssertNotCalled(t, "Register")
	})

	t.Run("Error_InvalidEmail_Returns422", func(t *testing.T) {
		authUC := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(authUC)

		w := performJSONRequest(router, http.MethodPost, "/v1/auth/register", gin.H{
			"username": "alice",
			"email":    "not-an-email",
			"password": "Str0ng!Password",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		authUC.AssertNotCalled(t, "Register")
	})

	t.Run("Error_UsernameTaken_Returns409", func(t *testing.T) {
		authUC := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(authUC)

		authUC.On("Register", mock.Anything, mock.AnythingOfType("*domain.RegisterInput")).
			Return(nil, authDomain.ErrUserAlreadyExists).
			Once()

		w := performJSONRequest(router, http.MethodPost, "/v1/auth/register", gin.H{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "Str0ng!Password",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "conflict")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success_Returns200WithToken", func(t *testing.T) {
		authUC := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(authUC)

		authUC.On("Login", mock.Anything, mock.MatchedBy(func(input *authDomain.LoginInput) bool {
			return input.Identifier == "alice"
		})).
			Return(&authDomain.TokenOutput{
				AccessToken: "signed-token",
				TokenType:   "Bearer",
				ExpiresIn:   120,
			}, nil).
			Once()

		w := performJSONRequest(router, http.MethodPost, "/v1/auth/login", gin.H{
			"identifier": "alice",
			"password":   "Str0ng!Password",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp["access_token"])
		assert.Equal(t, "Bearer", resp["token_type"])
		assert.Equal(t, float64(120), resp["expires_in"])
	})

	t.Run("Error_BadCredentials_Returns401", func(t *testing.T) {
		authUC := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(authUC)

		authUC.On("Login", mock.Anything, mock.AnythingOfType("*domain.LoginInput")).
			Return(nil, authDomain.ErrInvalidCredentials).
			Once()

		w := performJSONRequest(router, http.MethodPost, "/v1/auth/login", gin.H{
			"identifier": "alice",
			"password":   "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		// The body never reveals whether the identifier or the password failed
		assert.Contains(t, w.Body.String(), "Authentication is required")
	})

	t.Run("Error_MissingIdentifier_Returns422", func(t *testing.T) {
		authUC := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(authUC)

		w := performJSONRequest(router, http.MethodPost, "/v1/auth/login", gin.H{
			"password": "Str0ng!Password",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		authUC.AssertNotCalled(t, "Login")
	})
}
