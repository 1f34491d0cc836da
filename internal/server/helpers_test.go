package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHumanizeParam(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"id":        "ID",
		"userId":    "user ID",
		"commentId": "comment ID",
		"blogPostId": "blog post ID",
		"slug":      "slug",
	}
	for in, want := range cases {
		if got := humanizeParam(in); got != want {
			t.Errorf("humanizeParam(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePagination(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	var page Pagination
	app.Get("/x", func(c *fiber.Ctx) error {
		page = parsePagination(c, 20)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 20, 0},
		{"?limit=5&offset=10", 5, 10},
		{"?limit=0", 20, 0},
		{"?limit=-3&offset=-1", 20, 0},
		{"?limit=500", 100, 0},
		{"?limit=abc", 20, 0},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x"+tc.query, nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		_ = resp.Body.Close()
		if page.Limit != tc.wantLimit || page.Offset != tc.wantOffset {
			t.Errorf("query %q: got %d/%d, want %d/%d",
				tc.query, page.Limit, page.Offset, tc.wantLimit, tc.wantOffset)
		}
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	s := &Server{}
	app := fiber.New()
	var gotID uint
	var gotErr error
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		gotID, gotErr = s.parseID(c, "id")
		if gotErr != nil {
			return nil
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things/42", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	_ = resp.Body.Close()
	if gotErr != nil || gotID != 42 {
		t.Fatalf("expected id 42, got %d (%v)", gotID, gotErr)
	}

	for _, bad := range []string{"abc", "0", "-1"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things/"+bad, nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%q: expected 400, got %d", bad, resp.StatusCode)
		}
		_ = resp.Body.Close()
		if gotErr == nil {
			t.Fatalf("%q: expected sentinel error", bad)
		}
	}
}
