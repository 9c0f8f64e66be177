package handlers

import "net/http"

// GetTips returns the current wellness tip of each category. Rotation happens
// server-side on a fixed interval.
func (h *Handler) GetTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Tips.Current())
}
