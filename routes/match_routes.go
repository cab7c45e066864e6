package routes

import (
	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/controllers"
	"github.com/yashasvi9199/MatchFind/services"
)

// RegisterMatchRoutes registers the discovery feed under /api/matches
func RegisterMatchRoutes(r *mux.Router, matches *services.MatchService, profiles services.ProfileStore) {
	controller := &controllers.MatchController{Matches: matches, Profiles: profiles}

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.GetPotentialMatchesHandler).Methods("GET")
}
