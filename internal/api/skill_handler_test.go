package api

import (
	"net/http"
	"testing"
)

func TestSkillCreateListRoundTrip(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"userId":      1,
		"skillName":   "React",
		"category":    "technical",
		"level":       60,
		"targetLevel": 90,
	})
	mustStatus(t, w, http.StatusCreated)

	var created skillResponse
	decodeBody(t, w, &created)
	if created.ID == 0 || created.SkillName != "React" || created.Level != 60 || created.TargetLevel != 90 {
		t.Fatalf("unexpected creation payload: %+v", created)
	}

	w = doJSON(t, router, http.MethodGet, "/api/skills?userId=1", nil)
	mustStatus(t, w, http.StatusOK)

	var listed []skillResponse
	decodeBody(t, w, &listed)
	if len(listed) != 1 || listed[0] != created {
		t.Fatalf("list does not round-trip creation: %+v", listed)
	}
}

func TestSkillCreateDefaultsAndClamping(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"userId":    1,
		"skillName": "DSA",
		"category":  "aptitude",
	})
	mustStatus(t, w, http.StatusCreated)

	var created skillResponse
	decodeBody(t, w, &created)
	if created.Level != 0 || created.TargetLevel != 100 {
		t.Fatalf("expected defaults 0/100, got %d/%d", created.Level, created.TargetLevel)
	}

	w = doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"userId":    1,
		"skillName": "SQL",
		"category":  "technical",
		"level":     150,
	})
	mustStatus(t, w, http.StatusCreated)
	decodeBody(t, w, &created)
	if created.Level != 100 {
		t.Fatalf("expected level clamped to 100, got %d", created.Level)
	}
}

func TestSkillCreateValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// Unknown category.
	w := doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"userId":    1,
		"skillName": "Juggling",
		"category":  "hobby",
	})
	mustStatus(t, w, http.StatusBadRequest)

	// Missing caller identity.
	w = doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"skillName": "SQL",
		"category":  "technical",
	})
	mustStatus(t, w, http.StatusUnauthorized)
}

func TestSkillUpdateScopedToOwner(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"userId":    1,
		"skillName": "React",
		"category":  "technical",
		"level":     60,
	})
	mustStatus(t, w, http.StatusCreated)
	var created skillResponse
	decodeBody(t, w, &created)

	w = doJSON(t, router, http.MethodPatch, "/api/skills/1", map[string]any{
		"userId": 2,
		"level":  75,
	})
	mustStatus(t, w, http.StatusNotFound)

	w = doJSON(t, router, http.MethodPatch, "/api/skills/1", map[string]any{
		"userId": 1,
		"level":  75,
	})
	mustStatus(t, w, http.StatusOK)

	var updated skillResponse
	decodeBody(t, w, &updated)
	if updated.Level != 75 {
		t.Fatalf("expected level 75, got %d", updated.Level)
	}
	if updated.SkillName != "React" {
		t.Fatalf("untouched field changed: %q", updated.SkillName)
	}
}

func TestSkillDelete(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"userId":    1,
		"skillName": "SQL",
		"category":  "technical",
	})
	mustStatus(t, w, http.StatusCreated)

	w = doJSON(t, router, http.MethodDelete, "/api/skills/1?userId=1", nil)
	mustStatus(t, w, http.StatusNoContent)

	w = doJSON(t, router, http.MethodDelete, "/api/skills/1?userId=1", nil)
	mustStatus(t, w, http.StatusNotFound)

	w = doJSON(t, router, http.MethodDelete, "/api/skills/1", nil)
	mustStatus(t, w, http.StatusBadRequest)
}
