package routes

import (
	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/controllers"
	"github.com/yashasvi9199/MatchFind/services"
)

// RegisterProfileRoutes sets up routes for profile reads under /api/profiles
func RegisterProfileRoutes(r *mux.Router, profiles services.ProfileStore) {
	controller := &controllers.ProfileController{Profiles: profiles}

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("/me", controller.GetOwnProfileHandler).Methods("GET")
}
