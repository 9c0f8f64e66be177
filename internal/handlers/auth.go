package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// MagicLinkRequest is the JSON body for POST /api/auth/magic-link.
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestMagicLink asks the identity provider to email a one-time sign-in
// link. No credential ever touches this service.
func (h *Handler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	var req MagicLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	if err := h.Auth.SendMagicLink(r.Context(), req.Email); err != nil {
		log.Printf("[RequestMagicLink] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send magic link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Magic link sent! Check your email.",
	})
}

// GetMe returns the user behind the request's bearer token.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// SignOut invalidates the session locally and at the provider. The local
// cache is cleared first so the token stops working even if the provider
// call fails.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.Sessions.Invalidate(r.Context(), token); err != nil {
		log.Printf("[SignOut] cache invalidate: %v", err)
	}

	if err := h.Auth.SignOut(r.Context(), token); err != nil {
		log.Printf("[SignOut] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign out")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}
