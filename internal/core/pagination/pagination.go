// Package pagination turns a repository page slice into the list envelope
// served by every collection endpoint: items, counters and navigation links.
package pagination

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	maxKeywordLength = 64
)

// ErrInvalidLimit is returned by Paginate when called with a non-positive limit.
var ErrInvalidLimit = errors.New("pagination: limit must be greater than zero")

// Params is a normalized list query.
type Params struct {
	Keyword string
	Order   string
	Limit   int
	Page    int
}

// Defaults holds the per-route page size and the global upper bound.
type Defaults struct {
	Limit    int
	MaxLimit int
}

// ParseParams reads keyword, order, limit and page from a query string.
//
//   - absent or non-numeric limit: d.Limit
//   - limit=0: validation error
//   - negative limit: d.Limit; above d.MaxLimit: d.MaxLimit
//   - page below 1 or non-numeric: 1
//   - order other than asc/desc: asc
//   - keyword must be alphanumeric and at most 64 characters
func ParseParams(raw url.Values, d Defaults) (Params, error) {
	p := Params{
		Keyword: strings.TrimSpace(raw.Get("keyword")),
		Order:   strings.ToLower(strings.TrimSpace(raw.Get("order"))),
		Limit:   d.Limit,
		Page:    1,
	}
	if p.Order != OrderDesc {
		p.Order = OrderAsc
	}

	var verr domain.ValidationError

	if s := raw.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			switch {
			case n == 0:
				verr.Add("limit", "This value should be greater than 0.")
			case n > 0:
				p.Limit = n
			}
		}
	}
	if d.MaxLimit > 0 && p.Limit > d.MaxLimit {
		p.Limit = d.MaxLimit
	}

	if n, err := strconv.Atoi(raw.Get("page")); err == nil && n > 1 {
		p.Page = n
	}

	if p.Keyword != "" && !validKeyword(p.Keyword) {
		verr.Add("keyword", "This value should contain only letters and digits (64 characters max).")
	}

	if len(verr.Violations) > 0 {
		return Params{}, &verr
	}
	return p, nil
}

func validKeyword(s string) bool {
	if len([]rune(s)) > maxKeywordLength {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Offset is the number of rows to skip for page.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// Pages is ceil(total/limit). It is 0 for an empty collection.
func Pages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}

// Link is a single HAL-style hyperlink.
type Link struct {
	Href string `json:"href"`
}

// Links are the navigation links of a page. Next and Previous are omitted
// at the ends of the collection.
type Links struct {
	Self     Link  `json:"self"`
	First    Link  `json:"first"`
	Last     Link  `json:"last"`
	Next     *Link `json:"next,omitempty"`
	Previous *Link `json:"previous,omitempty"`
}

// Envelope is the JSON body of every list endpoint.
type Envelope[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
	Links Links `json:"_links"`
}

// LinkFunc renders the href of the same listing with the given params.
type LinkFunc func(p Params) string

// Query encodes p as the query string used in navigation links.
func (p Params) Query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("order", p.Order)
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	return q
}

// Paginate assembles the envelope for one page of results. items is the
// already-fetched page slice and total the unpaged count.
func Paginate[T any](p Params, items []T, total int64, link LinkFunc) (Envelope[T], error) {
	if p.Limit <= 0 {
		return Envelope[T]{}, ErrInvalidLimit
	}
	if items == nil {
		items = []T{}
	}

	pages := Pages(total, p.Limit)
	at := func(page int) Link {
		q := p
		q.Page = page
		return Link{Href: link(q)}
	}

	last := pages
	if last < 1 {
		last = 1
	}

	env := Envelope[T]{
		Items: items,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: pages,
		Total: total,
		Links: Links{
			Self:  at(p.Page),
			First: at(1),
			Last:  at(last),
		},
	}
	if p.Page < pages {
		next := at(p.Page + 1)
		env.Links.Next = &next
	}
	if p.Page > 1 {
		prev := at(p.Page - 1)
		env.Links.Previous = &prev
	}
	return env, nil
}
