package handler

import (
	"net/http"

	financeapp "github.com/dashboard/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// RevenueHandler handles the monthly revenue endpoints
type RevenueHandler struct {
	BaseHandler
	revenueService *financeapp.RevenueService
}

// NewRevenueHandler creates a new RevenueHandler
func NewRevenueHandler(revenueService *financeapp.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueService: revenueService}
}

// List handles GET /revenue
func (h *RevenueHandler) List(c *gin.Context) {
	revenue, err := h.revenueService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

// GetByMonth handles GET /revenue/:month
func (h *RevenueHandler) GetByMonth(c *gin.Context) {
	revenue, err := h.revenueService.GetByMonth(c.Request.Context(), c.Param("month"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

// Update handles PATCH /revenue/:month
func (h *RevenueHandler) Update(c *gin.Context) {
	var req financeapp.UpdateRevenueRequest
	if !h.bindJSON(c, &req) {
		return
	}

	revenue, err := h.revenueService.Update(c.Request.Context(), c.Param("month"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}
