package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw...)
	router.GET("/customers", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func doRequest(router http.Handler, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/customers", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSWithConfig(t *testing.T) {
	t.Run("default config sets no CORS headers", func(t *testing.T) {
		router := newTestRouter(CORSWithConfig(DefaultCORSConfig()))

		w := doRequest(router, http.MethodGet, "http://malicious.com")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allows listed origins", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://example.com"}
		cfg.AllowCredentials = true
		router := newTestRouter(CORSWithConfig(cfg))

		for _, origin := range cfg.AllowOrigins {
			w := doRequest(router, http.MethodGet, origin)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, "GET, POST, PATCH, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
			assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
		}
	})

	t.Run("ignores unlisted origins", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"http://allowed.com"}
		router := newTestRouter(CORSWithConfig(cfg))

		w := doRequest(router, http.MethodGet, "http://not-allowed.com")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard never allows credentials", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"*"}
		cfg.AllowCredentials = true
		router := newTestRouter(CORSWithConfig(cfg))

		w := doRequest(router, http.MethodGet, "http://anywhere.com")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight answers 204", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"http://localhost:3000"}
		router := newTestRouter(CORSWithConfig(cfg))

		w := doRequest(router, http.MethodOptions, "http://localhost:3000")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

		w = doRequest(router, http.MethodOptions, "http://not-allowed.com")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("same-origin requests pass through", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"*"}
		router := newTestRouter(CORSWithConfig(cfg))

		w := doRequest(router, http.MethodGet, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()
	assert.Empty(t, cfg.AllowOrigins)
	assert.False(t, cfg.AllowCredentials)
	assert.Contains(t, cfg.AllowMethods, "PATCH")
	assert.Contains(t, cfg.AllowHeaders, RequestIDHeader)
	assert.Equal(t, 12*time.Hour, cfg.MaxAge)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/customers", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	serve := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/customers", nil)
		if header != "" {
			req.Header.Set(RequestIDHeader, header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("generates a 32 hex character ID", func(t *testing.T) {
		w := serve("")
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 32)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("generated IDs differ", func(t *testing.T) {
		assert.NotEqual(t, serve("").Body.String(), serve("").Body.String())
	})

	t.Run("propagates the client ID", func(t *testing.T) {
		w := serve("test-request-id")
		assert.Equal(t, "test-request-id", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-request-id", w.Body.String())
	})

	t.Run("truncates long client IDs", func(t *testing.T) {
		w := serve(strings.Repeat("a", 500))
		assert.Len(t, w.Body.String(), MaxRequestIDLength)
	})
}

func TestSecureWithConfig(t *testing.T) {
	t.Run("default headers", func(t *testing.T) {
		w := doRequest(newTestRouter(SecureWithConfig(DefaultSecurityConfig())), http.MethodGet, "")

		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
		assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", w.Header().Get("Content-Security-Policy"))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("HSTS when enabled", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.HSTSEnabled = true
		cfg.HSTSMaxAge = 600
		w := doRequest(newTestRouter(SecureWithConfig(cfg)), http.MethodGet, "")

		assert.Equal(t, "max-age=600; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("empty CSP is omitted", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.CSPDirective = ""
		w := doRequest(newTestRouter(SecureWithConfig(cfg)), http.MethodGet, "")

		assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	})
}
