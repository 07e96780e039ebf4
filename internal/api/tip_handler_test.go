package api

import (
	"net/http"
	"testing"

	"preptrack/internal/database"
)

func TestTipsAreGlobal(t *testing.T) {
	router, db, _ := newTestRouter(t)

	if err := database.SeedTips(db); err != nil {
		t.Fatalf("seed tips: %v", err)
	}

	// No userId required: the catalog is shared across accounts.
	w := doJSON(t, router, http.MethodGet, "/api/tips", nil)
	mustStatus(t, w, http.StatusOK)

	var tips []tipResponse
	decodeBody(t, w, &tips)
	if len(tips) == 0 {
		t.Fatal("expected seeded tips")
	}
	for _, tip := range tips {
		if tip.Title == "" || tip.Category == "" {
			t.Fatalf("incomplete tip: %+v", tip)
		}
	}
}
