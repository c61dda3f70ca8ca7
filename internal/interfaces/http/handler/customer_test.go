package handler

import (
	"fmt"
	"net/http"
	"testing"

	partnerapp "github.com/dashboard/backend/internal/application/partner"
	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/dashboard/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_List(t *testing.T) {
	t.Run("aggregates invoices per customer", func(t *testing.T) {
		s := newTestServer(t)
		a := testutil.SeedCustomer(t, s.db, "Customer A", "a@example.com")
		b := testutil.SeedCustomer(t, s.db, "Customer B", "b@example.com")
		testutil.SeedInvoice(t, s.db, b.ID, 100, finance.InvoiceStatusPaid, testutil.Date(2024, 1, 10))
		testutil.SeedInvoice(t, s.db, b.ID, 50, finance.InvoiceStatusPending, testutil.Date(2024, 2, 10))

		w := s.do(t, http.MethodGet, "/customers", nil)

		require.Equal(t, http.StatusOK, w.Code)
		rows := testutil.DecodeJSON[[]partnerapp.CustomerSummaryResponse](t, w)
		require.Len(t, rows, 2)

		assert.Equal(t, a.ID, rows[0].ID)
		assert.Equal(t, int64(0), rows[0].TotalInvoices)
		assert.Equal(t, int64(0), rows[0].TotalPending)
		assert.Equal(t, int64(0), rows[0].TotalPaid)

		assert.Equal(t, b.ID, rows[1].ID)
		assert.Equal(t, int64(2), rows[1].TotalInvoices)
		assert.Equal(t, int64(50), rows[1].TotalPending)
		assert.Equal(t, int64(100), rows[1].TotalPaid)
		assert.Equal(t, b.ImageURL, rows[1].ImageURL)
	})

	t.Run("pages are bounded by limit", func(t *testing.T) {
		s := newTestServer(t)
		for i := 1; i <= 7; i++ {
			testutil.SeedCustomer(t, s.db, fmt.Sprintf("Customer %02d", i), fmt.Sprintf("c%02d@example.com", i))
		}

		first := testutil.DecodeJSON[[]partnerapp.CustomerSummaryResponse](t, s.do(t, http.MethodGet, "/customers?page=1", nil))
		second := testutil.DecodeJSON[[]partnerapp.CustomerSummaryResponse](t, s.do(t, http.MethodGet, "/customers?page=2", nil))
		require.Len(t, first, 6)
		require.Len(t, second, 1)
		assert.Equal(t, "Customer 07", second[0].Name)

		w := s.do(t, http.MethodGet, "/customers?page=3", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())

		small := testutil.DecodeJSON[[]partnerapp.CustomerSummaryResponse](t, s.do(t, http.MethodGet, "/customers?limit=3&page=3", nil))
		require.Len(t, small, 1)
		assert.Equal(t, "Customer 07", small[0].Name)

		w = s.do(t, http.MethodGet, "/customers?page=9223372036854775807&limit=50", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		s := newTestServer(t)
		testutil.SeedCustomer(t, s.db, "Alice Doe", "alice@example.com")
		testutil.SeedCustomer(t, s.db, "Bob Roe", "bob@example.com")

		rows := testutil.DecodeJSON[[]partnerapp.CustomerSummaryResponse](t, s.do(t, http.MethodGet, "/customers?query=ALICE", nil))
		require.Len(t, rows, 1)
		assert.Equal(t, "Alice Doe", rows[0].Name)
	})

	t.Run("empty store returns empty array", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, http.MethodGet, "/customers?query=nobody", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, http.MethodGet, "/customers?limit=51", nil)
		assertErrorBody(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.LimitMessage(50))

		w = s.do(t, http.MethodGet, "/customers?limit=six", nil)
		assertErrorBody(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.LimitMessage(50))

		w = s.do(t, http.MethodGet, "/customers?page=0", nil)
		assertErrorBody(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.MsgInvalidParameters)
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		s := newTestServer(t)
		s.closeDB(t)

		assertInternalError(t, s, s.do(t, http.MethodGet, "/customers", nil))
	})
}

func TestCustomerHandler_All(t *testing.T) {
	s := newTestServer(t)
	testutil.SeedCustomer(t, s.db, "Zed", "zed@example.com")
	testutil.SeedCustomer(t, s.db, "Amy", "amy@example.com")

	w := s.do(t, http.MethodGet, "/customers/all", nil)

	require.Equal(t, http.StatusOK, w.Code)
	customers := testutil.DecodeJSON[[]partnerapp.CustomerResponse](t, w)
	require.Len(t, customers, 2)
	assert.Equal(t, "Amy", customers[0].Name)
	assert.Equal(t, "Zed", customers[1].Name)
}

func TestCustomerHandler_CountAndPages(t *testing.T) {
	s := newTestServer(t)
	for i := 1; i <= 13; i++ {
		testutil.SeedCustomer(t, s.db, fmt.Sprintf("Customer %02d", i), fmt.Sprintf("c%02d@example.com", i))
	}
	testutil.SeedCustomer(t, s.db, "Alice Doe", "alice@example.com")

	count := testutil.DecodeJSON[dto.CountResponse](t, s.do(t, http.MethodGet, "/customers/count", nil))
	assert.Equal(t, int64(14), count.Count)

	count = testutil.DecodeJSON[dto.CountResponse](t, s.do(t, http.MethodGet, "/customers/count?query=alice", nil))
	assert.Equal(t, int64(1), count.Count)

	pages := testutil.DecodeJSON[dto.PagesResponse](t, s.do(t, http.MethodGet, "/customers/pages", nil))
	assert.Equal(t, 3, pages.TotalPages)

	pages = testutil.DecodeJSON[dto.PagesResponse](t, s.do(t, http.MethodGet, "/customers/pages?limit=7", nil))
	assert.Equal(t, 2, pages.TotalPages)

	pages = testutil.DecodeJSON[dto.PagesResponse](t, s.do(t, http.MethodGet, "/customers/pages?query=nobody", nil))
	assert.Equal(t, 0, pages.TotalPages)

	w := s.do(t, http.MethodGet, "/customers/pages?limit=100", nil)
	assertErrorBody(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.LimitMessage(50))
}

func TestCustomerHandler_GetByID(t *testing.T) {
	s := newTestServer(t)
	seeded := testutil.SeedCustomer(t, s.db, "Alice Doe", "alice@example.com")

	t.Run("found", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/customers/"+seeded.ID.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		customer := testutil.DecodeJSON[partnerapp.CustomerResponse](t, w)
		assert.Equal(t, seeded.ID, customer.ID)
		assert.Equal(t, "alice@example.com", customer.Email)
	})

	t.Run("missing", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/customers/"+uuid.New().String(), nil)
		assertErrorBody(t, w, http.StatusNotFound, dto.ErrCodeNotFound, "Customer not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/customers/42", nil)
		assertErrorBody(t, w, http.StatusNotFound, dto.ErrCodeNotFound, "Customer not found")
	})
}

func TestCustomerHandler_Create(t *testing.T) {
	s := newTestServer(t)

	t.Run("creates customer", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/customers", map[string]string{
			"name":      "Delba de Oliveira",
			"email":     "delba@example.com",
			"image_url": "/customers/delba.png",
		})

		require.Equal(t, http.StatusOK, w.Code)
		created := testutil.DecodeJSON[partnerapp.CustomerResponse](t, w)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "Delba de Oliveira", created.Name)

		fetched := testutil.DecodeJSON[partnerapp.CustomerResponse](t, s.do(t, http.MethodGet, "/customers/"+created.ID.String(), nil))
		assert.Equal(t, created, fetched)
	})

	t.Run("missing field", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/customers", map[string]string{"name": "No Email"})
		assertErrorBody(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.MsgInvalidParameters)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/customers", `{"name": `)
		assertErrorBody(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.MsgInvalidParameters)
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	s := newTestServer(t)
	seeded := testutil.SeedCustomer(t, s.db, "Alice Doe", "alice@example.com")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/customers/"+seeded.ID.String(), map[string]string{"email": "alice@new.example.com"})

		require.Equal(t, http.StatusOK, w.Code)
		updated := testutil.DecodeJSON[partnerapp.CustomerResponse](t, w)
		assert.Equal(t, "alice@new.example.com", updated.Email)
		assert.Equal(t, "Alice Doe", updated.Name)
		assert.Equal(t, seeded.ImageURL, updated.ImageURL)

		fetched := testutil.DecodeJSON[partnerapp.CustomerResponse](t, s.do(t, http.MethodGet, "/customers/"+seeded.ID.String(), nil))
		assert.Equal(t, updated, fetched)
	})

	t.Run("empty body changes nothing", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/customers/"+seeded.ID.String(), map[string]string{})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Alice Doe", testutil.DecodeJSON[partnerapp.CustomerResponse](t, w).Name)
	})

	t.Run("missing customer", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/customers/"+uuid.New().String(), map[string]string{"name": "Ghost"})
		assertErrorBody(t, w, http.StatusNotFound, dto.ErrCodeNotFound, "Customer not found")
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/customers/"+seeded.ID.String(), map[string]string{"name": ""})
		assertErrorBody(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.MsgInvalidParameters)
	})
}
