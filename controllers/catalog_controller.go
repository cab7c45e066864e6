package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/models"
	"github.com/yashasvi9199/MatchFind/wizard"
)

// CatalogController serves the fixed selection catalogs the wizard's form
// controls are populated from.
type CatalogController struct{}

func (c *CatalogController) GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"steps":            wizard.StepNames,
		"castes":           models.CasteData,
		"titles":           models.Titles,
		"bloodGroups":      models.BloodGroups,
		"diets":            models.Diets,
		"skinColors":       models.SkinColors,
		"educationLevels":  models.EducationLevels,
		"educationStreams": models.EducationStreams,
		"salarySlabs":      models.SalarySlabs,
		"indianStates":     models.IndianStates,
	})
}

// GetGotrasHandler serves the gotra catalog for one caste, for the
// dependent gotra dropdown.
func (c *CatalogController) GetGotrasHandler(w http.ResponseWriter, r *http.Request) {
	caste := mux.Vars(r)["caste"]
	gotras := models.GotrasFor(caste)
	if gotras == nil {
		writeError(w, http.StatusNotFound, "Unknown caste")
		return
	}
	writeJSON(w, http.StatusOK, gotras)
}
