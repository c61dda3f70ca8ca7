package shared

import "math"

// Page size bounds of the paginated listings.
const (
	DefaultPageSize = 6
	MaxPageSize     = 50
)

// ListQuery is a validated search and pagination request.
// Page starts at 1 and PageSize is within [1, MaxPageSize].
type ListQuery struct {
	Search   string
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the requested page.
// Pages too far out to compute saturate so that Offset()+PageSize still
// fits in an int and the page reads past every row.
func (q ListQuery) Offset() int {
	if q.Page < 1 || q.PageSize < 1 {
		return 0
	}
	if q.Page-1 > (math.MaxInt-q.PageSize)/q.PageSize {
		return math.MaxInt - q.PageSize
	}
	return (q.Page - 1) * q.PageSize
}

// TotalPages returns ceil(total/pageSize). A non-positive pageSize yields 0.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}
