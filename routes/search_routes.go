package routes

import (
	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/controllers"
	"github.com/yashasvi9199/MatchFind/services"
)

// RegisterSearchRoutes registers the search screen under /api/search
func RegisterSearchRoutes(r *mux.Router, search *services.SearchService, profiles services.ProfileStore) {
	controller := &controllers.SearchController{Search: search, Profiles: profiles}

	searchRouter := r.PathPrefix("/api/search").Subrouter()
	searchRouter.HandleFunc("", controller.SearchHandler).Methods("GET")
}
