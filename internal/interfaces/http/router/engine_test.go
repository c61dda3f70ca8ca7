package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	financeapp "github.com/dashboard/backend/internal/application/finance"
	identityapp "github.com/dashboard/backend/internal/application/identity"
	partnerapp "github.com/dashboard/backend/internal/application/partner"
	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/infrastructure/config"
	"github.com/dashboard/backend/internal/infrastructure/metrics"
	"github.com/dashboard/backend/internal/infrastructure/persistence"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/dashboard/backend/internal/interfaces/http/handler"
	"github.com/dashboard/backend/internal/interfaces/http/middleware"
	"github.com/dashboard/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestEngine(t *testing.T, httpCfg config.HTTPConfig) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	pagination := config.PaginationConfig{DefaultLimit: 6, MaxLimit: 50}
	customerRepo := persistence.NewGormCustomerRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)

	handlers := Handlers{
		Customer: handler.NewCustomerHandler(pagination, partnerapp.NewCustomerService(customerRepo)),
		Invoice:  handler.NewInvoiceHandler(pagination, financeapp.NewInvoiceService(invoiceRepo, customerRepo)),
		Revenue:  handler.NewRevenueHandler(financeapp.NewRevenueService(persistence.NewGormRevenueRepository(db))),
		User:     handler.NewUserHandler(identityapp.NewUserService(persistence.NewGormUserRepository(db))),
		Health: handler.NewHealthHandler(pingFunc(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})),
	}

	reg := prometheus.NewRegistry()
	engine, err := NewEngine(Options{
		Logger:      zaptest.NewLogger(t),
		HTTP:        httpCfg,
		Security:    middleware.DefaultSecurityConfig(),
		Metrics:     metrics.NewHTTPMetrics(reg),
		Gatherer:    reg,
		MetricsPath: "/metrics",
	}, handlers)
	require.NoError(t, err)
	return engine, db
}

func TestNewEngine_Routes(t *testing.T) {
	engine, db := newTestEngine(t, config.HTTPConfig{})
	a := testutil.SeedCustomer(t, db, "Customer A", "a@example.com")
	b := testutil.SeedCustomer(t, db, "Customer B", "b@example.com")
	testutil.SeedInvoice(t, db, b.ID, 100, finance.InvoiceStatusPaid, testutil.Date(2024, 1, 1))
	testutil.SeedInvoice(t, db, b.ID, 50, finance.InvoiceStatusPending, testutil.Date(2024, 1, 2))
	testutil.SeedRevenue(t, db, "Jan", 2000)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/customers", http.StatusOK},
		{"GET", "/customers/all", http.StatusOK},
		{"GET", "/customers/count", http.StatusOK},
		{"GET", "/customers/pages", http.StatusOK},
		{"GET", "/customers/" + a.ID.String(), http.StatusOK},
		{"GET", "/invoices", http.StatusOK},
		{"GET", "/invoices/all", http.StatusOK},
		{"GET", "/invoices/count", http.StatusOK},
		{"GET", "/invoices/pages", http.StatusOK},
		{"GET", "/invoices/latest", http.StatusOK},
		{"GET", "/invoices/status", http.StatusOK},
		{"GET", "/revenue", http.StatusOK},
		{"GET", "/revenue/Jan", http.StatusOK},
		{"GET", "/users", http.StatusOK},
		{"GET", "/health", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := testutil.PerformRequest(t, engine, tt.method, tt.path, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	t.Run("customer totals", func(t *testing.T) {
		w := testutil.PerformRequest(t, engine, "GET", "/customers", nil)
		rows := testutil.DecodeJSON[[]partnerapp.CustomerSummaryResponse](t, w)
		require.Len(t, rows, 2)
		assert.Equal(t, partnerapp.CustomerSummaryResponse{
			ID: a.ID, Name: a.Name, Email: a.Email, ImageURL: a.ImageURL,
		}, rows[0])
		assert.Equal(t, partnerapp.CustomerSummaryResponse{
			ID: b.ID, Name: b.Name, Email: b.Email, ImageURL: b.ImageURL,
			TotalInvoices: 2, TotalPending: 50, TotalPaid: 100,
		}, rows[1])
	})
}

func TestNewEngine_TrailingSlashRedirects(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{})

	w := testutil.PerformRequest(t, engine, "GET", "/customers/", nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/customers", w.Header().Get("Location"))

	w = testutil.PerformRequest(t, engine, "POST", "/users/", map[string]string{})
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestNewEngine_UnknownRoute(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{})

	w := testutil.PerformRequest(t, engine, "GET", "/products", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := testutil.DecodeJSON[dto.ErrorResponse](t, w)
	assert.Equal(t, "Not Found", body.Detail)
	assert.Equal(t, dto.ErrCodeNotFound, body.Code)
}

func TestNewEngine_RequestIDAndSecurityHeaders(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{})

	req := httptest.NewRequest("GET", "/customers?limit=99", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-request-1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "client-request-1", w.Header().Get(middleware.RequestIDHeader))
	body := testutil.DecodeJSON[dto.ErrorResponse](t, w)
	assert.Equal(t, "client-request-1", body.RequestID)
	assert.Equal(t, dto.LimitMessage(50), body.Detail)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestNewEngine_Metrics(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{})

	testutil.PerformRequest(t, engine, "GET", "/customers", nil)
	testutil.PerformRequest(t, engine, "GET", "/nowhere", nil)

	w := testutil.PerformRequest(t, engine, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, `dashboard_http_requests_total{method="GET",route="/customers",status="200"} 1`)
	assert.Contains(t, out, `dashboard_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.NotContains(t, out, "/nowhere")
}

func TestNewEngine_BodyLimit(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{MaxBodySize: 64})

	w := testutil.PerformRequest(t, engine, "POST", "/customers", map[string]string{
		"name":      strings.Repeat("x", 100),
		"email":     "big@example.com",
		"image_url": "/big.png",
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestNewEngine_CORS(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{CORSAllowOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/customers", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestNewEngine_RecoversPanics(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{})
	engine.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := testutil.PerformRequest(t, engine, "GET", "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := testutil.DecodeJSON[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.MsgInternalError, body.Detail)
	assert.NotEmpty(t, body.RequestID)
}

func TestNewEngine_InvalidTrustedProxies(t *testing.T) {
	_, err := NewEngine(Options{HTTP: config.HTTPConfig{TrustedProxies: []string{"not-an-ip"}}}, Handlers{})
	assert.Error(t, err)
}

func TestCORSConfig(t *testing.T) {
	defaults := corsConfig(config.HTTPConfig{})
	assert.Equal(t, middleware.DefaultCORSConfig(), defaults)

	custom := corsConfig(config.HTTPConfig{
		CORSAllowOrigins: []string{"https://dashboard.example.com"},
		CORSAllowMethods: []string{"GET"},
	})
	assert.Equal(t, []string{"https://dashboard.example.com"}, custom.AllowOrigins)
	assert.Equal(t, []string{"GET"}, custom.AllowMethods)
	assert.Equal(t, defaults.AllowHeaders, custom.AllowHeaders)
}
