package domain

// Trip listings are paged; these bound what a client may ask for.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams selects one 1-indexed page of a listing.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams clamps optional query values into a usable page.
// Missing or non-positive values take the defaults; Limit never exceeds
// MaxPageSize.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageSize}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageSize)
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is how many pages of this size total rows fill. Zero rows
// still make zero pages.
func (p PaginationParams) TotalPages(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
