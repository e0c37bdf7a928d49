package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// parseVia runs ParsePaginationWith inside a real handler so query parsing
// goes through fiber.
func parseVia(t *testing.T, target string, opt PaginationOptions) PaginationParams {
	t.Helper()

	var got PaginationParams
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		got = ParsePaginationWith(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	return got
}

func TestParsePaginationWith(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		opt     PaginationOptions
		page    int
		perPage int
		all     bool
	}{
		{"defaults", "/t", DefaultOpts, 1, 25, false},
		{"explicit page and per_page", "/t?page=3&per_page=10", DefaultOpts, 3, 10, false},
		{"limit alias", "/t?limit=40", DefaultOpts, 1, 40, false},
		{"per_page capped at max", "/t?per_page=9999", DefaultOpts, 1, 200, false},
		{"page below one clamps", "/t?page=0", DefaultOpts, 1, 25, false},
		{"garbage falls back", "/t?page=x&per_page=y", DefaultOpts, 1, 25, false},
		{"admin preset default", "/t", AdminOpts, 1, 50, false},
		{"export preset defaults to the hard cap", "/t", ExportOpts, 1, 10_000, false},
		{"export allows all under hard cap", "/t?per_page=all&page=4", ExportOpts, 1, 10_000, true},
		{"export chunking via per_page", "/t?per_page=500&page=2", ExportOpts, 2, 500, false},
		{"default preset rejects all", "/t?per_page=all", DefaultOpts, 1, 25, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseVia(t, tc.target, tc.opt)
			if p.Page != tc.page || p.PerPage != tc.perPage || p.All != tc.all {
				t.Errorf("got page=%d per_page=%d all=%v, want page=%d per_page=%d all=%v",
					p.Page, p.PerPage, p.All, tc.page, tc.perPage, tc.all)
			}
		})
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "payment_created_at",
		"amount":     "payment_amount_cents",
	}

	cases := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"known key", "amount", "asc", "payment_amount_cents ASC"},
		{"empty key uses default", "", "desc", "payment_created_at DESC"},
		{"unknown key falls back", "user_password", "desc", "payment_created_at DESC"},
		{
			"subselect payload never reaches the clause",
			"payment_created_at,(SELECT CASE WHEN (1=1) THEN pg_sleep(5) ELSE pg_sleep(0) END)",
			"desc",
			"payment_created_at DESC",
		},
		{"direction defaults to desc", "amount", "drop table", "payment_amount_cents DESC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PaginationParams{SortBy: tc.sortBy, SortOrder: tc.sortOrder}
			got, err := p.SafeOrderClause(allowed, "created_at")
			if err != nil {
				t.Fatalf("SafeOrderClause returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("SafeOrderClause(%q, %q) = %q, want %q", tc.sortBy, tc.sortOrder, got, tc.want)
			}
		})
	}

	t.Run("missing default key errors", func(t *testing.T) {
		p := PaginationParams{SortBy: "nope"}
		if _, err := p.SafeOrderClause(allowed, "also-nope"); err == nil {
			t.Fatal("expected error when the default key is not whitelisted")
		}
	})
}

func TestOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 25, 0},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{100, 0, 0},
	}

	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.perPage); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}
