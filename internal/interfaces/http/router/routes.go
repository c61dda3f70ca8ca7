package router

import (
	"github.com/dashboard/backend/internal/interfaces/http/handler"
)

// Handlers are the domain endpoints served by the API.
type Handlers struct {
	Customer *handler.CustomerHandler
	Invoice  *handler.InvoiceHandler
	Revenue  *handler.RevenueHandler
	User     *handler.UserHandler
	Health   *handler.HealthHandler
}

func customerRoutes(h *handler.CustomerHandler) *DomainGroup {
	if h == nil {
		return nil
	}
	return NewDomainGroup("/customers").
		GET("", h.List).
		GET("/all", h.All).
		GET("/count", h.Count).
		GET("/pages", h.Pages).
		GET("/:id", h.GetByID).
		POST("", h.Create).
		PATCH("/:id", h.Update)
}

func invoiceRoutes(h *handler.InvoiceHandler) *DomainGroup {
	if h == nil {
		return nil
	}
	return NewDomainGroup("/invoices").
		GET("", h.List).
		GET("/all", h.All).
		GET("/count", h.Count).
		GET("/pages", h.Pages).
		GET("/latest", h.Latest).
		GET("/status", h.Status).
		GET("/:id", h.GetByID).
		POST("", h.Create).
		PATCH("/:id", h.Update)
}

func revenueRoutes(h *handler.RevenueHandler) *DomainGroup {
	if h == nil {
		return nil
	}
	return NewDomainGroup("/revenue").
		GET("", h.List).
		GET("/:month", h.GetByMonth).
		PATCH("/:month", h.Update)
}

func userRoutes(h *handler.UserHandler) *DomainGroup {
	if h == nil {
		return nil
	}
	return NewDomainGroup("/users").
		GET("", h.List).
		GET("/:id", h.GetByID).
		POST("", h.Create).
		PATCH("/:id", h.Update)
}

// registerDomainRoutes mounts the group of every non-nil handler through r.
func registerDomainRoutes(r *Router, h Handlers) {
	r.Register(customerRoutes(h.Customer)).
		Register(invoiceRoutes(h.Invoice)).
		Register(revenueRoutes(h.Revenue)).
		Register(userRoutes(h.User)).
		Setup()
}
