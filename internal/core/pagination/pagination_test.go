package pagination

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

var defaults = Defaults{Limit: 5, MaxLimit: 100}

func TestParseParams_Defaults(t *testing.T) {
	p, err := ParseParams(url.Values{}, defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit != 5 || p.Page != 1 || p.Order != OrderAsc || p.Keyword != "" {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestParseParams_Normalizes(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Params
	}{
		{"explicit values", "limit=10&page=3&order=desc&keyword=acme", Params{Keyword: "acme", Order: OrderDesc, Limit: 10, Page: 3}},
		{"unparsable limit falls back", "limit=abc", Params{Order: OrderAsc, Limit: 5, Page: 1}},
		{"negative limit falls back", "limit=-4", Params{Order: OrderAsc, Limit: 5, Page: 1}},
		{"limit capped", "limit=1000", Params{Order: OrderAsc, Limit: 100, Page: 1}},
		{"page zero", "page=0", Params{Order: OrderAsc, Limit: 5, Page: 1}},
		{"negative page", "page=-2", Params{Order: OrderAsc, Limit: 5, Page: 1}},
		{"unknown order", "order=sideways", Params{Order: OrderAsc, Limit: 5, Page: 1}},
		{"uppercase order", "order=DESC", Params{Order: OrderDesc, Limit: 5, Page: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, _ := url.ParseQuery(tc.query)
			got, err := ParseParams(raw, defaults)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseParams_Rejects(t *testing.T) {
	cases := map[string]string{
		"zero limit":          "limit=0",
		"keyword with quote":  "keyword=a'b",
		"keyword with spaces": "keyword=a%20b%25",
		"keyword too long":    "keyword=" + strings.Repeat("a", 65),
	}
	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			raw, _ := url.ParseQuery(query)
			_, err := ParseParams(raw, defaults)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestParseParams_CollectsAllViolations(t *testing.T) {
	raw, _ := url.ParseQuery("limit=0&keyword=%3Bdrop")
	_, err := ParseParams(raw, defaults)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Violations) != 2 {
		t.Errorf("expected 2 violations, got %d", len(ve.Violations))
	}
}

func TestOffsetAndPages(t *testing.T) {
	if got := Offset(3, 5); got != 10 {
		t.Errorf("Offset(3,5) = %d, want 10", got)
	}
	if got := Offset(0, 5); got != 0 {
		t.Errorf("Offset(0,5) = %d, want 0", got)
	}

	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{23, 5, 5},
		{100, 15, 7},
	}
	for _, tc := range cases {
		if got := Pages(tc.total, tc.limit); got != tc.want {
			t.Errorf("Pages(%d,%d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func hrefFor(p Params) string {
	return "/api/mobiles?" + p.Query().Encode()
}

func TestPaginate_LinksPresence(t *testing.T) {
	cases := []struct {
		page         int
		total        int64
		wantNext     bool
		wantPrevious bool
	}{
		{1, 23, true, false},
		{3, 23, true, true},
		{5, 23, false, true},
		{1, 3, false, false},
		{1, 0, false, false},
		{9, 23, false, true},
	}
	for _, tc := range cases {
		p := Params{Order: OrderAsc, Limit: 5, Page: tc.page}
		env, err := Paginate(p, []int{1}, tc.total, hrefFor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if (env.Links.Next != nil) != tc.wantNext {
			t.Errorf("page %d of %d: next present = %v", tc.page, tc.total, env.Links.Next != nil)
		}
		if (env.Links.Previous != nil) != tc.wantPrevious {
			t.Errorf("page %d of %d: previous present = %v", tc.page, tc.total, env.Links.Previous != nil)
		}
	}
}

func TestPaginate_Envelope(t *testing.T) {
	p := Params{Keyword: "phone", Order: OrderDesc, Limit: 5, Page: 2}
	env, err := Paginate(p, []string{"a", "b", "c", "d", "e"}, 23, hrefFor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Pages != 5 || env.Total != 23 || env.Page != 2 || env.Limit != 5 {
		t.Errorf("unexpected counters: %+v", env)
	}
	if len(env.Items) != 5 {
		t.Errorf("expected 5 items, got %d", len(env.Items))
	}
	if !strings.Contains(env.Links.Self.Href, "page=2") || !strings.Contains(env.Links.Self.Href, "keyword=phone") {
		t.Errorf("unexpected self link %q", env.Links.Self.Href)
	}
	if !strings.Contains(env.Links.Last.Href, "page=5") {
		t.Errorf("unexpected last link %q", env.Links.Last.Href)
	}
	if !strings.Contains(env.Links.Next.Href, "page=3") || !strings.Contains(env.Links.Previous.Href, "page=1") {
		t.Errorf("unexpected next/previous links %q %q", env.Links.Next.Href, env.Links.Previous.Href)
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	env, err := Paginate[int](Params{Order: OrderAsc, Limit: 5, Page: 1}, nil, 0, hrefFor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Items == nil || len(env.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %#v", env.Items)
	}
	if env.Pages != 0 {
		t.Errorf("expected 0 pages, got %d", env.Pages)
	}
}

func TestPaginate_RejectsZeroLimit(t *testing.T) {
	_, err := Paginate(Params{Page: 1}, []int{}, 10, hrefFor)
	if !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}
