package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	financeapp "github.com/dashboard/backend/internal/application/finance"
	identityapp "github.com/dashboard/backend/internal/application/identity"
	partnerapp "github.com/dashboard/backend/internal/application/partner"
	"github.com/dashboard/backend/internal/infrastructure/config"
	"github.com/dashboard/backend/internal/infrastructure/logger"
	"github.com/dashboard/backend/internal/infrastructure/persistence"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/dashboard/backend/internal/interfaces/http/middleware"
	"github.com/dashboard/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

var testPagination = config.PaginationConfig{DefaultLimit: 6, MaxLimit: 50}

type testServer struct {
	db     *gorm.DB
	engine *gin.Engine
	logs   *observer.ObservedLogs
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithPagination(t, testPagination)
}

func newTestServerWithPagination(t *testing.T, pagination config.PaginationConfig) *testServer {
	t.Helper()

	db := testutil.NewTestDB(t)
	customerRepo := persistence.NewGormCustomerRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)

	customers := NewCustomerHandler(pagination, partnerapp.NewCustomerService(customerRepo))
	invoices := NewInvoiceHandler(pagination, financeapp.NewInvoiceService(invoiceRepo, customerRepo))
	revenue := NewRevenueHandler(financeapp.NewRevenueService(persistence.NewGormRevenueRepository(db)))
	users := NewUserHandler(identityapp.NewUserService(persistence.NewGormUserRepository(db)))

	core, logs := observer.New(zap.DebugLevel)
	engine := gin.New()
	engine.Use(middleware.RequestID(), logger.GinMiddleware(zap.New(core)))

	engine.GET("/customers", customers.List)
	engine.GET("/customers/all", customers.All)
	engine.GET("/customers/count", customers.Count)
	engine.GET("/customers/pages", customers.Pages)
	engine.GET("/customers/:id", customers.GetByID)
	engine.POST("/customers", customers.Create)
	engine.PATCH("/customers/:id", customers.Update)

	engine.GET("/invoices", invoices.List)
	engine.GET("/invoices/all", invoices.All)
	engine.GET("/invoices/count", invoices.Count)
	engine.GET("/invoices/pages", invoices.Pages)
	engine.GET("/invoices/latest", invoices.Latest)
	engine.GET("/invoices/status", invoices.Status)
	engine.GET("/invoices/:id", invoices.GetByID)
	engine.POST("/invoices", invoices.Create)
	engine.PATCH("/invoices/:id", invoices.Update)

	engine.GET("/revenue", revenue.List)
	engine.GET("/revenue/:month", revenue.GetByMonth)
	engine.PATCH("/revenue/:month", revenue.Update)

	engine.GET("/users", users.List)
	engine.GET("/users/:id", users.GetByID)
	engine.POST("/users", users.Create)
	engine.PATCH("/users/:id", users.Update)

	return &testServer{db: db, engine: engine, logs: logs}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.PerformRequest(t, s.engine, method, path, body)
}

// closeDB makes every following query fail.
func (s *testServer) closeDB(t *testing.T) {
	t.Helper()
	sqlDB, err := s.db.DB()
	if err != nil {
		t.Fatal(err)
	}
	_ = sqlDB.Close()
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int, code, detail string) {
	t.Helper()
	assert.Equal(t, status, w.Code, "body: %s", w.Body.String())
	body := testutil.DecodeJSON[dto.ErrorResponse](t, w)
	assert.Equal(t, code, body.Code)
	assert.Equal(t, detail, body.Detail)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body.RequestID)
}

func assertInternalError(t *testing.T, s *testServer, w *httptest.ResponseRecorder) {
	t.Helper()
	assertErrorBody(t, w, http.StatusInternalServerError, dto.ErrCodeInternal, dto.MsgInternalError)
	assert.NotContains(t, w.Body.String(), "database is closed")
	assert.Equal(t, 1, s.logs.FilterMessage("Request failed").Len())
}
