package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// WeeklySummaryRequest is the JSON body for POST /api/weekly-summary.
type WeeklySummaryRequest struct {
	UserID string `json:"userId"`
}

// WeeklySummary forwards the user id to the external analytics webhook and
// relays its JSON response verbatim. The summary itself is computed entirely
// outside this system.
func (h *Handler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	var req WeeklySummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "No userId provided")
		return
	}

	body, err := json.Marshal(map[string]string{"userId": req.UserID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	outReq, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.SummaryWebhookURL, bytes.NewBuffer(body))
	if err != nil {
		log.Printf("[WeeklySummary] build request: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch summary")
		return
	}
	outReq.Header.Set("Content-Type", "application/json")

	resp, err := h.HTTPClient.Do(outReq)
	if err != nil {
		log.Printf("[WeeklySummary] webhook call failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch summary")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		log.Printf("[WeeklySummary] webhook returned %d: %s", resp.StatusCode, string(detail))
		writeError(w, http.StatusInternalServerError, "Failed to fetch summary")
		return
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[WeeklySummary] read webhook response: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch summary")
		return
	}

	// Relay as-is
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(result)
}
