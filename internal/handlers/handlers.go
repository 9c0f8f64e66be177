package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/AnshRaj112/moodtracker-backend/internal/models"
	"github.com/AnshRaj112/moodtracker-backend/internal/services"
	"github.com/go-playground/validator/v10"
)

// MoodStore is the persistence surface handlers need.
type MoodStore interface {
	Insert(ctx context.Context, mood *models.Mood) error
	List(ctx context.Context, userID string, since time.Time, limit int64) ([]models.Mood, error)
}

// SessionValidator resolves bearer tokens to users.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (services.AuthUser, bool, error)
	Invalidate(ctx context.Context, token string) error
}

// AuthGateway is the slice of the identity provider handlers call directly.
type AuthGateway interface {
	SendMagicLink(ctx context.Context, email string) error
	SignOut(ctx context.Context, token string) error
}

// Handler carries all handler dependencies. Everything is injected at startup;
// handlers hold no ambient state.
type Handler struct {
	Moods             MoodStore
	Sessions          SessionValidator
	Auth              AuthGateway
	Tips              *services.TipsRotator
	SummaryWebhookURL string
	HTTPClient        *http.Client

	validate *validator.Validate
}

func New(moods MoodStore, sessions SessionValidator, auth AuthGateway, tips *services.TipsRotator, summaryWebhookURL string) *Handler {
	return &Handler{
		Moods:             moods,
		Sessions:          sessions,
		Auth:              auth,
		Tips:              tips,
		SummaryWebhookURL: summaryWebhookURL,
		HTTPClient:        &http.Client{},
		validate:          validator.New(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireSession validates the request's bearer token and returns the user.
// Writes the 401 itself when the session is missing or invalid.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (services.AuthUser, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	user, ok, err := h.Sessions.Validate(r.Context(), token)
	if err != nil || !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return services.AuthUser{}, false
	}
	return user, true
}
