package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/yashasvi9199/MatchFind/middleware"
	"github.com/yashasvi9199/MatchFind/services"
)

// SearchController answers the search screen.
type SearchController struct {
	Search   *services.SearchService
	Profiles services.ProfileStore
}

// SearchHandler narrows the caller's potential matches by name, caste,
// gotra and city. Gated on profile completeness.
func (c *SearchController) SearchHandler(w http.ResponseWriter, r *http.Request) {
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

	q := r.URL.Query()
	query := services.SearchQuery{
		Name:  q.Get("name"),
		Caste: q.Get("caste"),
		Gotra: q.Get("gotra"),
		City:  q.Get("city"),
	}

	results, err := c.Search.Search(ctx, userID, profile.Gender, query)
	if err != nil {
		log.Printf("❌ Search failed for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Search failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}
