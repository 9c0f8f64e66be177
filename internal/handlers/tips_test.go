package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnshRaj112/moodtracker-backend/internal/services"
)

func TestGetTips(t *testing.T) {
	h := New(&stubMoodStore{}, newTestSessions(), &stubAuth{}, services.NewTipsRotator(time.Hour), "")

	req := httptest.NewRequest(http.MethodGet, "/api/tips", nil)
	rec := httptest.NewRecorder()
	h.GetTips(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var tips services.Tips
	if err := json.Unmarshal(rec.Body.Bytes(), &tips); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if tips.Exercise == "" || tips.Sleep == "" || tips.Nutrition == "" {
		t.Errorf("All three tip categories must be populated, got %+v", tips)
	}
}
