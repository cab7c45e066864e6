package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/yashasvi9199/MatchFind/middleware"
	"github.com/yashasvi9199/MatchFind/services"
	"github.com/yashasvi9199/MatchFind/wizard"
)

const maxAvatarBytes = 10 << 20

// WizardController exposes the profile wizard session over HTTP.
type WizardController struct {
	Registry *wizard.Registry
	Profiles services.ProfileStore
	Validate *validator.Validate
}

// session resolves the caller's wizard session, writing the error response
// itself on failure.
func (c *WizardController) session(ctx context.Context, w http.ResponseWriter, r *http.Request) (*wizard.Session, bool) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Missing authenticated user")
		return nil, false
	}
	sess, err := c.Registry.Get(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to open wizard session for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to open wizard session: "+err.Error())
		return nil, false
	}
	return sess, true
}

// GetStateHandler returns the session's render payload.
func (c *WizardController) GetStateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// SetTargetHandler switches the session into the administrative variant,
// editing another user's profile. Admin role required.
func (c *WizardController) SetTargetHandler(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		writeError(w, http.StatusForbidden, "Admin role required")
		return
	}

	var request struct {
		TargetID string `json:"targetId" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.Validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid target request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}

	draft, err := c.Profiles.FetchProfile(ctx, request.TargetID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch target profile: "+err.Error())
		return
	}
	sess.ForTarget(request.TargetID, draft)
	writeJSON(w, http.StatusOK, sess.State())
}

// SetFieldHandler writes one draft field.
func (c *WizardController) SetFieldHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Field string `json:"field" validate:"required"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.Validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid field request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	if ferr := sess.SetField(request.Field, request.Value); ferr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ferr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Field updated"})
}

// SetFamilyHandler writes one field of father, mother or the maternal side.
func (c *WizardController) SetFamilyHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Relation string `json:"relation" validate:"required,oneof=father mother maternalSide"`
		Field    string `json:"field" validate:"required"`
		Value    string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.Validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid family request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	if ferr := sess.SetFamily(request.Relation, request.Field, request.Value); ferr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ferr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Family updated"})
}

// AddSiblingHandler appends an empty sibling row in edit mode.
func (c *WizardController) AddSiblingHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	if err := sess.AddSibling(); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// UpdateSiblingHandler writes one field of the indexed sibling.
func (c *WizardController) UpdateSiblingHandler(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid sibling index")
		return
	}

	var request struct {
		Field string `json:"field" validate:"required"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.Validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid sibling request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	if err := sess.UpdateSibling(index, request.Field, request.Value); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sibling updated"})
}

// SaveSiblingHandler leaves edit mode for the indexed sibling.
func (c *WizardController) SaveSiblingHandler(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid sibling index")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	if err := sess.SaveSibling(index); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// RemoveSiblingHandler deletes the indexed sibling.
func (c *WizardController) RemoveSiblingHandler(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid sibling index")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	if err := sess.RemoveSibling(index); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// AddTagHandler appends a health-issue or expectation tag, chosen by the
// list path variable.
func (c *WizardController) AddTagHandler(w http.ResponseWriter, r *http.Request) {
	list := mux.Vars(r)["list"]

	var request struct {
		Tag string `json:"tag" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.Validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tag request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}

	var err error
	switch list {
	case "health":
		err = sess.AddHealthIssue(request.Tag)
	case "expectations":
		err = sess.AddExpectation(request.Tag)
	default:
		writeError(w, http.StatusNotFound, "Unknown tag list")
		return
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// RemoveTagHandler deletes the indexed tag from the chosen list.
func (c *WizardController) RemoveTagHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tag index")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}

	switch vars["list"] {
	case "health":
		err = sess.RemoveHealthIssue(index)
	case "expectations":
		err = sess.RemoveExpectation(index)
	default:
		writeError(w, http.StatusNotFound, "Unknown tag list")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// SetAvatarHandler stages avatar bytes for upload at submit time.
func (c *WizardController) SetAvatarHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}
	file, _, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read avatar file")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	sess.SetAvatar(data)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Avatar staged"})
}

// NextHandler validates the current step and advances, or submits from the
// last step. Validation failures come back as the error stack, not as an
// HTTP failure.
func (c *WizardController) NextHandler(w http.ResponseWriter, r *http.Request) {
	// Submission may include an avatar upload; give it more room.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}

	errs, submitted, err := sess.Next(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"errors":    errs,
		"submitted": submitted,
		"state":     sess.State(),
	})
}

// BackHandler moves one step backward, no validation.
func (c *WizardController) BackHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	sess.Back()
	writeJSON(w, http.StatusOK, sess.State())
}

// JumpHandler moves to a step via the step indicator, honoring the
// highest-reached watermark.
func (c *WizardController) JumpHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Step int `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sess, ok := c.session(ctx, w, r)
	if !ok {
		return
	}
	errs := sess.JumpTo(request.Step)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"errors": errs,
		"state":  sess.State(),
	})
}
