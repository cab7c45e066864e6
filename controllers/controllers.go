package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/yashasvi9199/MatchFind/models"
	"github.com/yashasvi9199/MatchFind/services"
)

// writeJSON sends a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends a JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// requireCompleteProfile is the restricted-action gate: browsing, search
// and interaction writes are suppressed until the caller's profile has been
// through full wizard submission. On failure it writes the blocking
// response, with the recovery action pointing back at step 0 of the
// wizard, and returns (nil, false).
func requireCompleteProfile(ctx context.Context, w http.ResponseWriter, profiles services.ProfileStore, userID string) (*models.ProfileDraft, bool) {
	profile, err := profiles.FetchProfile(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to fetch profile for gate check (%s): %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return nil, false
	}
	if profile == nil || !profile.IsCompleteProfile {
		writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"error":      "Complete your profile to continue",
			"code":       "PROFILE_INCOMPLETE",
			"resumeStep": 0,
		})
		return nil, false
	}
	return profile, true
}
