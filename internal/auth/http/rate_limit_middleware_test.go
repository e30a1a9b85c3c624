package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
)

// principalInjector attaches a fixed principal so the rate limiter can key on it.
func principalInjector(principal *authDomain.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("AllowsWithinLimit", func(t *testing.T) {
		principal := &authDomain.Principal{Username: "alice", AccountID: uuid.Must(uuid.NewV7())}
		router := gin.New()
		router.Use(principalInjector(principal))
		router.Use(RateLimitMiddleware(10, 5, testLogger()))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Returns429BeyondBurst", func(t *testing.T) {
		principal := &authDomain.Principal{Username: "alice", AccountID: uuid.Must(uuid.NewV7())}
		router := gin.New()
		router.Use(principalInjector(principal))
		router.Use(RateLimitMiddleware(0.001, 2, testLogger()))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		var lastCode int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("IndependentLimitsPerAccount", func(t *testing.T) {
		limiter := RateLimitMiddleware(0.001, 1, testLogger())

		handlerFor := func(principal *authDomain.Principal) http.Handler {
			r := gin.New()
			r.Use(principalInjector(principal), limiter)
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
			return r
		}

		alice := &authDomain.Principal{Username: "alice", AccountID: uuid.Must(uuid.NewV7())}
		bob := &authDomain.Principal{Username: "bob", AccountID: uuid.Must(uuid.NewV7())}

		aliceRouter := handlerFor(alice)
		bobRouter := handlerFor(bob)

		// Exhaust alice's budget
		w1 := httptest.NewRecorder()
		aliceRouter.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/", nil))
		w2 := httptest.NewRecorder()
		aliceRouter.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/", nil))

		// Bob is unaffected
		w3 := httptest.NewRecorder()
		bobRouter.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
		assert.Equal(t, http.StatusOK, w3.Code)
	})

	t.Run("Returns401WithoutPrincipal", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(10, 5, testLogger()))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLoginRateLimitMiddleware(t *testing.T) {
	t.Run("Returns429BeyondBurst", func(t *testing.T) {
		router := gin.New()
		router.Use(LoginRateLimitMiddleware(0.001, 2, testLogger()))
		router.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

		var lastCode int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "203.0.113.10:4321"
			router.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("SetsRetryAfterHeader", func(t *testing.T) {
		router := gin.New()
		router.Use(LoginRateLimitMiddleware(0.001, 1, testLogger()))
		router.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

		var last *httptest.ResponseRecorder
		for i := 0; i < 2; i++ {
			last = httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "203.0.113.11:4321"
			router.ServeHTTP(last, req)
		}

		assert.Equal(t, http.StatusTooManyRequests, last.Code)
		assert.NotEmpty(t, last.Header().Get("Retry-After"))
	})
}
