package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/yashasvi9199/MatchFind/middleware"
	"github.com/yashasvi9199/MatchFind/services"
)

// ProfileController serves the caller's own stored profile.
type ProfileController struct {
	Profiles services.ProfileStore
}

// GetOwnProfileHandler returns the caller's profile draft, or 404 when the
// user has never completed the wizard and nothing is stored yet. Absence
// is the first-time onboarding signal, not a failure.
func (c *ProfileController) GetOwnProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	profile, err := c.Profiles.FetchProfile(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch profile: "+err.Error())
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
