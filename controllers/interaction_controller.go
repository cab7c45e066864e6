package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yashasvi9199/MatchFind/middleware"
	"github.com/yashasvi9199/MatchFind/services"
	"github.com/yashasvi9199/MatchFind/socket"
)

// InteractionController records like/reject decisions and serves the four
// ledger views.
type InteractionController struct {
	Matches  *services.MatchService
	Profiles services.ProfileStore
	Hub      *socket.Hub
	Validate *validator.Validate
}

// CreateInteractionHandler records the caller's decision toward a target.
// Gated on profile completeness: an incomplete profile means no ledger
// write at all.
func (c *InteractionController) CreateInteractionHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var request struct {
		ToUserID string `json:"toUserId" validate:"required"`
		Kind     string `json:"kind" validate:"required,oneof=INTERESTED REMOVED"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.Validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid interaction request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, ok := requireCompleteProfile(ctx, w, c.Profiles, userID); !ok {
		return
	}

	mutual, err := c.Matches.RecordInteraction(ctx, userID, request.ToUserID, request.Kind)
	if err != nil {
		log.Printf("❌ Failed to record interaction: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to record interaction: "+err.Error())
		return
	}

	if mutual {
		c.Hub.NotifyMatch(userID, request.ToUserID)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Interaction recorded",
		"mutual":  mutual,
	})
}

// GetInteractionsHandler serves the ledger views: liked, likedBy, mutual
// and rejected, selected by the view query parameter.
func (c *InteractionController) GetInteractionsHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, ok := requireCompleteProfile(ctx, w, c.Profiles, userID); !ok {
		return
	}

	view := r.URL.Query().Get("view")
	var (
		profiles interface{}
		err      error
	)
	switch view {
	case "liked":
		profiles, err = c.Matches.Liked(ctx, userID)
	case "likedBy":
		profiles, err = c.Matches.LikedBy(ctx, userID)
	case "mutual":
		profiles, err = c.Matches.Mutual(ctx, userID)
	case "rejected":
		profiles, err = c.Matches.Rejected(ctx, userID)
	default:
		writeError(w, http.StatusBadRequest, "view must be one of liked, likedBy, mutual, rejected")
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch %s view for %s: %v", view, userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch interactions: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}
