package handler

import (
	"net/http"

	partnerapp "github.com/dashboard/backend/internal/application/partner"
	"github.com/dashboard/backend/internal/infrastructure/config"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

const customerEntity = "Customer"

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(pagination config.PaginationConfig, customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler:     NewBaseHandler(pagination),
		customerService: customerService,
	}
}

// List handles GET /customers?query=&page=&limit=
func (h *CustomerHandler) List(c *gin.Context) {
	req, ok := h.bindList(c)
	if !ok {
		return
	}

	customers, err := h.customerService.List(c.Request.Context(), req.ToListQuery())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// All handles GET /customers/all
func (h *CustomerHandler) All(c *gin.Context) {
	customers, err := h.customerService.All(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Count handles GET /customers/count?query=
func (h *CustomerHandler) Count(c *gin.Context) {
	req, ok := h.bindSearch(c)
	if !ok {
		return
	}

	count, err := h.customerService.Count(c.Request.Context(), req.Query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Pages handles GET /customers/pages?query=&limit=
func (h *CustomerHandler) Pages(c *gin.Context) {
	req, ok := h.bindPages(c)
	if !ok {
		return
	}

	pages, err := h.customerService.TotalPages(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PagesResponse{TotalPages: pages})
}

// GetByID handles GET /customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, customerEntity)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Update handles PATCH /customers/:id. Only the fields present in the body change.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, customerEntity)
	if !ok {
		return
	}

	var req partnerapp.UpdateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
