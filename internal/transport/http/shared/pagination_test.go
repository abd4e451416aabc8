package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", url: "/records", wantLimit: 100, wantOffset: 0},
		{name: "explicit page", url: "/records?limit=25&offset=50", wantLimit: 25, wantOffset: 50},
		{name: "limit capped at max", url: "/records?limit=9999", wantLimit: 500, wantOffset: 0},
		{name: "garbage falls back", url: "/records?limit=abc&offset=-3", wantLimit: 100, wantOffset: 0},
		{name: "zero limit falls back", url: "/records?limit=0", wantLimit: 100, wantOffset: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			page := ParsePagination(r, 100, 500)
			if page.Limit != tc.wantLimit || page.Offset != tc.wantOffset {
				t.Fatalf("got limit=%d offset=%d, want limit=%d offset=%d",
					page.Limit, page.Offset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
