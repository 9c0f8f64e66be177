package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/AnshRaj112/moodtracker-backend/internal/models"
	"github.com/go-playground/validator/v10"
)

// CreateMoodRequest is the JSON body for POST /api/mood. Validation happens
// here at the boundary, never in the store.
type CreateMoodRequest struct {
	Mood      string `json:"mood" validate:"required"`
	Intensity int    `json:"intensity" validate:"required,min=1,max=5"`
	Note      string `json:"note"`
}

// CreateMood persists a new mood entry for the authenticated user.
func (h *Handler) CreateMood(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req CreateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, moodValidationMessage(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	mood := models.Mood{
		UserID:    user.ID.String(),
		Mood:      req.Mood,
		Intensity: req.Intensity,
		Note:      req.Note,
	}

	if err := h.Moods.Insert(ctx, &mood); err != nil {
		log.Printf("[CreateMood] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save mood")
		return
	}

	writeJSON(w, http.StatusCreated, mood)
}

// GetMoods returns the authenticated user's entries, newest first.
// Optional query params: days (window, e.g. 7 for the weekly chart), limit.
func (h *Handler) GetMoods(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var since time.Time
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if days, err := strconv.Atoi(daysStr); err == nil && days > 0 {
			since = time.Now().UTC().AddDate(0, 0, -days)
		}
	}

	var limit int64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.ParseInt(limitStr, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	moods, err := h.Moods.List(ctx, user.ID.String(), since, limit)
	if err != nil {
		log.Printf("[GetMoods] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch moods")
		return
	}
	if moods == nil {
		// An empty week is an empty array, never null
		moods = []models.Mood{}
	}

	writeJSON(w, http.StatusOK, moods)
}

func moodValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Mood":
			return "Mood is required"
		case "Intensity":
			return "Intensity must be between 1 and 5"
		}
	}
	return "Invalid request body"
}
