package ports

import "github.com/AlixRomain/P7-Web-Service/internal/core/pagination"

// SearchQuery is the repository-level form of a list request.
type SearchQuery struct {
	Keyword string // case-insensitive substring on the display field; empty = no filter
	Order   string // "asc" or "desc" on the primary key
	Limit   int
	Page    int    // 1-based
	OwnerID *int64 // users only: restrict to one client
}

// NewSearchQuery converts normalized pagination params.
func NewSearchQuery(p pagination.Params) SearchQuery {
	return SearchQuery{Keyword: p.Keyword, Order: p.Order, Limit: p.Limit, Page: p.Page}
}

func (q SearchQuery) Offset() int {
	return pagination.Offset(q.Page, q.Limit)
}

func (q SearchQuery) Descending() bool {
	return q.Order == pagination.OrderDesc
}
