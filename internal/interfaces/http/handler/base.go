// Package handler contains the gin handlers of the dashboard API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/dashboard/backend/internal/infrastructure/config"
	"github.com/dashboard/backend/internal/infrastructure/logger"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/dashboard/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const limitParam = "limit"

// BaseHandler provides common handler utilities
type BaseHandler struct {
	pagination config.PaginationConfig
}

// NewBaseHandler creates a BaseHandler using the given page size bounds
func NewBaseHandler(pagination config.PaginationConfig) BaseHandler {
	return BaseHandler{pagination: pagination}
}

// Error sends an error response with the request ID attached
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, detail string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, detail, middleware.GetRequestID(c)))
}

// NotFound sends a 404 with the "<entity> not found" detail
func (h *BaseHandler) NotFound(c *gin.Context, entity string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, shared.NewNotFoundError(entity).Message)
}

// InvalidParameters sends the generic 422 response
func (h *BaseHandler) InvalidParameters(c *gin.Context) {
	h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.MsgInvalidParameters)
}

// InvalidLimit sends the 422 response reserved for the limit parameter
func (h *BaseHandler) InvalidLimit(c *gin.Context) {
	h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeValidationFailed, dto.LimitMessage(h.maxLimit()))
}

// InternalError logs err and sends an opaque 500
func (h *BaseHandler) InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.L(c.Request.Context()).Error("Request failed", zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, dto.MsgInternalError)
}

// HandleError converts service errors to HTTP responses. Domain errors keep
// their message; anything else is logged and answered with a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if status := dto.GetHTTPStatus(domainErr.Code); status != http.StatusInternalServerError {
			h.Error(c, status, domainErr.Code, domainErr.Message)
			return
		}
	}

	h.InternalError(c, err)
}

// ValidationFailed answers a query binding failure. Any problem with the
// limit parameter gets its own message.
func (h *BaseHandler) ValidationFailed(c *gin.Context, err error) {
	if isLimitError(c, err) {
		h.InvalidLimit(c)
		return
	}
	h.InvalidParameters(c)
}

func isLimitError(c *gin.Context, err error) bool {
	for _, fe := range middleware.FieldErrors(err) {
		if fe.Field == limitParam {
			return true
		}
	}
	// Non-numeric values fail in gin's form mapping, before validation.
	if raw := c.Query(limitParam); raw != "" {
		if _, convErr := strconv.Atoi(raw); convErr != nil {
			return true
		}
	}
	return false
}

// maxLimit is the configured bound, never above what binding accepts.
func (h *BaseHandler) maxLimit() int {
	if h.pagination.MaxLimit <= 0 || h.pagination.MaxLimit > shared.MaxPageSize {
		return shared.MaxPageSize
	}
	return h.pagination.MaxLimit
}

func (h *BaseHandler) defaultLimit() int {
	if h.pagination.DefaultLimit <= 0 {
		return shared.DefaultPageSize
	}
	return min(h.pagination.DefaultLimit, h.maxLimit())
}

// bindList binds query, page and limit, writing the 422 response on failure.
func (h *BaseHandler) bindList(c *gin.Context) (dto.ListRequest, bool) {
	req := dto.DefaultListRequest(h.defaultLimit())
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationFailed(c, err)
		return req, false
	}
	if req.Limit > h.maxLimit() {
		h.InvalidLimit(c)
		return req, false
	}
	return req, true
}

// bindPages binds query and limit, writing the 422 response on failure.
func (h *BaseHandler) bindPages(c *gin.Context) (dto.PagesRequest, bool) {
	req := dto.PagesRequest{Limit: h.defaultLimit()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationFailed(c, err)
		return req, false
	}
	if req.Limit > h.maxLimit() {
		h.InvalidLimit(c)
		return req, false
	}
	return req, true
}

// bindSearch binds the query parameter of the count endpoints.
func (h *BaseHandler) bindSearch(c *gin.Context) (dto.SearchRequest, bool) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationFailed(c, err)
		return req, false
	}
	return req, true
}

// bindJSON binds a request body, answering 422 when it is malformed or
// invalid and 413 when it was cut off by the body limit.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.RequestTooLarge(c)
			return false
		}
		logger.L(c.Request.Context()).Debug("Rejected request body",
			zap.Error(err),
			zap.Any("fields", middleware.FieldErrors(err)),
		)
		h.InvalidParameters(c)
		return false
	}
	return true
}

// parseID parses the :id path parameter. A malformed id cannot match any
// row, so it is answered like a missing one.
func (h *BaseHandler) parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, entity)
		return uuid.Nil, false
	}
	return id, true
}
