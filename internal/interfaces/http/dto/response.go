package dto

import "github.com/dashboard/backend/internal/domain/shared"

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Detail    string `json:"detail"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, detail, requestID string) ErrorResponse {
	return ErrorResponse{
		Detail:    detail,
		Code:      code,
		RequestID: requestID,
	}
}

// CountResponse answers the count endpoints
type CountResponse struct {
	Count int64 `json:"count"`
}

// PagesResponse answers the pages endpoints
type PagesResponse struct {
	TotalPages int `json:"totalPages"`
}

// ListRequest holds the search and pagination query parameters
type ListRequest struct {
	Query string `form:"query" binding:"max=255"`
	Page  int    `form:"page" binding:"min=1"`
	Limit int    `form:"limit" binding:"min=1,max=50"`
}

// DefaultListRequest returns a list request with defaults
func DefaultListRequest(defaultLimit int) ListRequest {
	return ListRequest{
		Page:  1,
		Limit: defaultLimit,
	}
}

// ToListQuery converts the request to a repository query
func (r ListRequest) ToListQuery() shared.ListQuery {
	return shared.ListQuery{
		Search:   r.Query,
		Page:     r.Page,
		PageSize: r.Limit,
	}
}

// SearchRequest holds the query parameter of the count endpoints
type SearchRequest struct {
	Query string `form:"query" binding:"max=255"`
}

// PagesRequest holds the query parameters of the pages endpoints
type PagesRequest struct {
	Query string `form:"query" binding:"max=255"`
	Limit int    `form:"limit" binding:"min=1,max=50"`
}

// HealthResponse answers the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
