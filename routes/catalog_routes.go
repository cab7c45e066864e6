package routes

import (
	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/controllers"
)

// RegisterCatalogRoutes serves the selection catalogs under /api/catalog
func RegisterCatalogRoutes(r *mux.Router) {
	controller := &controllers.CatalogController{}
	r.HandleFunc("/api/catalog", controller.GetCatalogHandler).Methods("GET")
	r.HandleFunc("/api/catalog/gotras/{caste}", controller.GetGotrasHandler).Methods("GET")
}
