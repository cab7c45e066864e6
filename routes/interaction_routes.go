package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/controllers"
	"github.com/yashasvi9199/MatchFind/services"
	"github.com/yashasvi9199/MatchFind/socket"
)

// RegisterInteractionRoutes registers the ledger routes under /api/interactions
func RegisterInteractionRoutes(r *mux.Router, matches *services.MatchService, profiles services.ProfileStore, hub *socket.Hub, validate *validator.Validate) {
	controller := &controllers.InteractionController{
		Matches:  matches,
		Profiles: profiles,
		Hub:      hub,
		Validate: validate,
	}

	interactionRouter := r.PathPrefix("/api/interactions").Subrouter()
	interactionRouter.HandleFunc("", controller.CreateInteractionHandler).Methods("POST")
	interactionRouter.HandleFunc("", controller.GetInteractionsHandler).Methods("GET")
}
