package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/controllers"
	"github.com/yashasvi9199/MatchFind/services"
	"github.com/yashasvi9199/MatchFind/wizard"
)

// RegisterWizardRoutes registers the profile wizard under /api/wizard
func RegisterWizardRoutes(r *mux.Router, registry *wizard.Registry, profiles services.ProfileStore, validate *validator.Validate) {
	controller := &controllers.WizardController{
		Registry: registry,
		Profiles: profiles,
		Validate: validate,
	}

	wizardRouter := r.PathPrefix("/api/wizard").Subrouter()
	wizardRouter.HandleFunc("", controller.GetStateHandler).Methods("GET")
	wizardRouter.HandleFunc("/target", controller.SetTargetHandler).Methods("POST")
	wizardRouter.HandleFunc("/fields", controller.SetFieldHandler).Methods("POST")
	wizardRouter.HandleFunc("/family", controller.SetFamilyHandler).Methods("POST")
	wizardRouter.HandleFunc("/siblings", controller.AddSiblingHandler).Methods("POST")
	wizardRouter.HandleFunc("/siblings/{index}", controller.UpdateSiblingHandler).Methods("PATCH")
	wizardRouter.HandleFunc("/siblings/{index}/save", controller.SaveSiblingHandler).Methods("POST")
	wizardRouter.HandleFunc("/siblings/{index}", controller.RemoveSiblingHandler).Methods("DELETE")
	wizardRouter.HandleFunc("/tags/{list}", controller.AddTagHandler).Methods("POST")
	wizardRouter.HandleFunc("/tags/{list}/{index}", controller.RemoveTagHandler).Methods("DELETE")
	wizardRouter.HandleFunc("/avatar", controller.SetAvatarHandler).Methods("POST")
	wizardRouter.HandleFunc("/next", controller.NextHandler).Methods("POST")
	wizardRouter.HandleFunc("/back", controller.BackHandler).Methods("POST")
	wizardRouter.HandleFunc("/jump", controller.JumpHandler).Methods("POST")
}
