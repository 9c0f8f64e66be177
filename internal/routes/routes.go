package routes

import (
	"github.com/AnshRaj112/moodtracker-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	// Auth gateway (magic-link sign-in via the external identity provider)
	r.Post("/api/auth/magic-link", h.RequestMagicLink)
	r.Get("/api/auth/me", h.GetMe)
	r.Post("/api/auth/signout", h.SignOut)

	// Mood routes
	r.Post("/api/mood", h.CreateMood)
	r.Get("/api/mood", h.GetMoods)

	// Weekly summary relay
	r.Post("/api/weekly-summary", h.WeeklySummary)

	// Rotating wellness tips
	r.Get("/api/tips", h.GetTips)
}
