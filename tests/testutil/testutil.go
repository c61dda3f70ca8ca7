// Package testutil provides common test utilities for the dashboard backend:
// mocked and in-memory GORM databases, fixture builders and HTTP helpers.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dashboard/backend/internal/infrastructure/persistence/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockDB wraps a GORM database with sqlmock for testing.
type MockDB struct {
	DB    *gorm.DB
	Mock  sqlmock.Sqlmock
	SqlDB *sql.DB
}

// NewMockDB creates a GORM handle on the postgres dialector backed by sqlmock.
// Queries are matched as regular expressions. The connection is closed on cleanup.
func NewMockDB(t *testing.T) *MockDB {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open GORM connection")

	return &MockDB{
		DB:    gormDB,
		Mock:  mock,
		SqlDB: mockDB,
	}
}

// ExpectationsWereMet verifies that all expectations were met.
func (m *MockDB) ExpectationsWereMet(t *testing.T) {
	t.Helper()
	require.NoError(t, m.Mock.ExpectationsWereMet(), "Unmet database expectations")
}

// NewTestDB opens an in-memory SQLite database with the schema migrated.
// The pool is pinned to one connection because every SQLite in-memory
// connection is a separate database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open sqlite database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.CustomerModel{},
		&models.InvoiceModel{},
		&models.RevenueModel{},
		&models.UserModel{},
	))
	return db
}

// NewTestUUID generates a deterministic UUID for testing.
func NewTestUUID(seed string) uuid.UUID {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(seed))
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedCustomer inserts a customer and returns it.
func SeedCustomer(t *testing.T, db *gorm.DB, name, email string) models.CustomerModel {
	t.Helper()

	m := models.CustomerModel{
		ID:       NewTestUUID("customer:" + email),
		Name:     name,
		Email:    email,
		ImageURL: "/customers/" + email + ".png",
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

// SeedInvoice inserts an invoice for customerID and returns it.
func SeedInvoice(t *testing.T, db *gorm.DB, customerID uuid.UUID, amount int64, status string, date time.Time) models.InvoiceModel {
	t.Helper()

	m := models.InvoiceModel{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       date,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

// SeedRevenue inserts a revenue row.
func SeedRevenue(t *testing.T, db *gorm.DB, month string, revenue int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.RevenueModel{Month: month, Revenue: revenue}).Error)
}
