package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/yashasvi9199/MatchFind/middleware"
	"github.com/yashasvi9199/MatchFind/services"
)

// MatchController serves the discovery feed.
type MatchController struct {
	Matches  *services.MatchService
	Profiles services.ProfileStore
}

// GetPotentialMatchesHandler returns the caller's undecided opposite-gender
// candidates, optionally narrowed by facet query parameters. Gated on
// profile completeness.
func (c *MatchController) GetPotentialMatchesHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	profile, ok := requireCompleteProfile(ctx, w, c.Profiles, userID)
	if !ok {
		return
	}

	candidates, err := c.Matches.PotentialMatches(ctx, userID, profile.Gender)
	if err != nil {
		log.Printf("❌ Failed to fetch potential matches for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch potential matches: "+err.Error())
		return
	}

	q := r.URL.Query()
	filter := services.FacetFilter{
		Caste:            q.Get("caste"),
		Gotra:            q.Get("gotra"),
		SkinColor:        q.Get("skinColor"),
		SiblingsNone:     q.Get("siblings") == "none",
		HealthIssuesNone: q.Get("healthIssues") == "none",
	}
	writeJSON(w, http.StatusOK, services.ApplyFilters(candidates, filter))
}
