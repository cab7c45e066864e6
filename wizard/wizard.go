package wizard

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/yashasvi9199/MatchFind/models"
	"github.com/yashasvi9199/MatchFind/utils"
)

// ProfileStore is the persistence collaborator the wizard flushes through.
type ProfileStore interface {
	FetchProfile(ctx context.Context, userID string) (*models.ProfileDraft, error)
	UpsertProfile(ctx context.Context, draft *models.ProfileDraft) error
}

// MediaStore turns pending avatar bytes into a public URL.
type MediaStore interface {
	UploadAvatar(ctx context.Context, data []byte, ownerID string) (string, error)
}

// Session drives one user's pass through the profile wizard: an ordered
// list of steps, a highest-step-reached watermark, per-step validation and
// a final submit through the injected collaborators.
type Session struct {
	mu sync.Mutex

	ownerID  string
	targetID string // differs from ownerID only for admin edits
	admin    bool

	draft          *models.ProfileDraft
	current        int
	highestReached int
	editingSibling int // index of the unsaved sibling row, -1 when none
	pendingAvatar  []byte

	errors []FieldError

	profiles ProfileStore
	media    MediaStore
}

// Snapshot is the render payload for a session.
type Snapshot struct {
	Steps          []string             `json:"steps"`
	CurrentStep    int                  `json:"currentStep"`
	HighestReached int                  `json:"highestReached"`
	EditingSibling *int                 `json:"editingSibling"`
	Draft          *models.ProfileDraft `json:"draft"`
	Errors         []FieldError         `json:"errors"`
	Submitted      bool                 `json:"submitted"`
}

func NewSession(ownerID string, draft *models.ProfileDraft, profiles ProfileStore, media MediaStore) *Session {
	if draft == nil {
		draft = models.NewProfileDraft(ownerID)
	}
	return &Session{
		ownerID:        ownerID,
		targetID:       ownerID,
		draft:          draft,
		editingSibling: -1,
		profiles:       profiles,
		media:          media,
	}
}

// ForTarget switches the session into the administrative variant: the
// draft and the eventual submit belong to targetID, not the caller.
func (s *Session) ForTarget(targetID string, draft *models.ProfileDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetID = targetID
	s.admin = true
	if draft != nil {
		s.draft = draft
	}
	s.draft.UserID = targetID
}

// State returns a copy of the session's render payload. The draft is
// deep-copied so callers can encode it after the lock is released without
// racing concurrent edits on the same session.
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Steps:          StepNames,
		CurrentStep:    s.current,
		HighestReached: s.highestReached,
		Draft:          s.draft.Clone(),
		Errors:         append([]FieldError(nil), s.errors...),
		Submitted:      s.draft.IsCompleteProfile,
	}
	if s.editingSibling >= 0 {
		idx := s.editingSibling
		snap.EditingSibling = &idx
	}
	return snap
}

// clearError drops any surfaced error for the field the user just edited.
func (s *Session) clearError(field string) {
	kept := s.errors[:0]
	for _, e := range s.errors {
		if e.Field != field {
			kept = append(kept, e)
		}
	}
	s.errors = kept
}

// SetField writes one draft field, sanitizing the value and enforcing the
// cross-field invariants (caste resets gotra, occupation type exclusivity).
func (s *Session) SetField(field, value string) *FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := utils.SanitizeInput(value)
	d := s.draft

	switch field {
	case "title":
		d.Title = v
	case "name":
		d.Name = v
	case "gender":
		if v != "" && v != models.GenderMale && v != models.GenderFemale {
			return &FieldError{Field: "gender", Message: "Gender must be Male or Female"}
		}
		d.Gender = v
	case "age":
		n, err := strconv.Atoi(v)
		if err != nil {
			return &FieldError{Field: "age", Message: "Age must be a number"}
		}
		d.Age = n
	case "height":
		d.Height = v
	case "weight":
		d.Weight = v
	case "skinColor":
		d.SkinColor = v
	case "bloodGroup":
		d.BloodGroup = v
	case "diet":
		d.Diet = v
	case "bio":
		d.Bio = v
	case "caste":
		if v != d.Caste {
			// A new caste invalidates whichever gotra was chosen before.
			d.Gotra = ""
		}
		d.Caste = v
	case "gotra":
		if v != "" && !models.ValidGotra(d.Caste, v) {
			return &FieldError{Field: "gotra", Message: "Gotra is not valid for the selected caste"}
		}
		d.Gotra = v
	case "birthPlace":
		d.BirthPlace = v
	case "birthTime":
		d.BirthTime = v
	case "nativeCountry":
		d.NativeCountry = v
	case "nativeState":
		d.NativeState = v
	case "nativeCity":
		d.NativeCity = v
	case "currentCountry":
		d.CurrentCountry = v
	case "currentState":
		d.CurrentState = v
	case "currentCity":
		d.CurrentCity = v
	case "educationLevel":
		d.EducationLevel = v
	case "educationStream":
		d.EducationStream = v
	case "educationDegree":
		d.EducationDegree = v
	case "occupationType":
		switch v {
		case models.OccupationJob:
			d.BusinessName = ""
			d.BusinessCategory = ""
		case models.OccupationBusiness:
			d.CompanyName = ""
			d.Designation = ""
		default:
			return &FieldError{Field: "occupationType", Message: "Occupation type must be Job or Business"}
		}
		d.OccupationType = v
	case "companyName":
		d.CompanyName = v
	case "designation":
		d.Designation = v
	case "businessName":
		d.BusinessName = v
	case "businessCategory":
		d.BusinessCategory = v
	case "occupation":
		d.Occupation = v
	case "salary":
		d.Salary = v
	case "partnerAgeMin":
		n, err := strconv.Atoi(v)
		if err != nil {
			return &FieldError{Field: "partnerAgeMin", Message: "Partner age must be a number"}
		}
		d.PartnerAgeMin = n
	case "partnerAgeMax":
		n, err := strconv.Atoi(v)
		if err != nil {
			return &FieldError{Field: "partnerAgeMax", Message: "Partner age must be a number"}
		}
		d.PartnerAgeMax = n
	default:
		return &FieldError{Field: field, Message: "Unknown field"}
	}

	s.clearError(field)
	return nil
}

// SetFamily writes one field of father, mother or the maternal side.
func (s *Session) SetFamily(relation, field, value string) *FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()

	var m *models.FamilyMember
	switch relation {
	case "father":
		m = &s.draft.Father
	case "mother":
		m = &s.draft.Mother
	case "maternalSide":
		m = &s.draft.MaternalSide
	default:
		return &FieldError{Field: relation, Message: "Unknown relation"}
	}

	v := utils.SanitizeInput(value)
	switch field {
	case "title":
		m.Title = v
	case "name":
		m.Name = v
	case "gotra":
		m.Gotra = v
	case "caste":
		m.Caste = v
	case "occupation":
		m.Occupation = v
	default:
		return &FieldError{Field: relation + "." + field, Message: "Unknown field"}
	}

	s.clearError(relation + "." + field)
	return nil
}

// AddSibling appends an empty sibling row and puts it in edit mode. Only
// one sibling may be in edit mode at a time.
func (s *Session) AddSibling() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingSibling >= 0 {
		return fmt.Errorf("sibling %d is still being edited", s.editingSibling)
	}
	s.draft.Siblings = append(s.draft.Siblings, models.FamilyMember{Title: "Mr"})
	s.editingSibling = len(s.draft.Siblings) - 1
	return nil
}

// UpdateSibling writes one field of the sibling at index.
func (s *Session) UpdateSibling(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Siblings) {
		return fmt.Errorf("no sibling at index %d", index)
	}
	v := utils.SanitizeInput(value)
	sib := &s.draft.Siblings[index]
	switch field {
	case "title":
		sib.Title = v
	case "name":
		sib.Name = utils.TitleCase(v)
	case "gotra":
		sib.Gotra = v
	case "caste":
		sib.Caste = v
	case "occupation":
		sib.Occupation = utils.TitleCase(v)
	default:
		return fmt.Errorf("unknown sibling field %q", field)
	}
	return nil
}

// SaveSibling leaves edit mode for the sibling at index. The row must have
// a well-formed name.
func (s *Session) SaveSibling(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Siblings) {
		return fmt.Errorf("no sibling at index %d", index)
	}
	sib := s.draft.Siblings[index]
	if sib.Name == "" || !utils.IsAlphaSpace(sib.Name) {
		return fmt.Errorf("sibling name must contain letters and spaces only")
	}
	if sib.Occupation != "" && !utils.IsAlphaSpace(sib.Occupation) {
		return fmt.Errorf("sibling occupation must contain letters and spaces only")
	}
	if s.editingSibling == index {
		s.editingSibling = -1
	}
	s.clearError("siblings")
	return nil
}

// RemoveSibling deletes the sibling at index.
func (s *Session) RemoveSibling(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Siblings) {
		return fmt.Errorf("no sibling at index %d", index)
	}
	s.draft.Siblings = append(s.draft.Siblings[:index], s.draft.Siblings[index+1:]...)
	switch {
	case s.editingSibling == index:
		s.editingSibling = -1
	case s.editingSibling > index:
		s.editingSibling--
	}
	return nil
}

// AddHealthIssue appends a health tag of at most three words.
func (s *Session) AddHealthIssue(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tag = utils.SanitizeInput(tag)
	if tag == "" {
		return fmt.Errorf("health issue must not be empty")
	}
	if utils.WordCount(tag) > 3 {
		return fmt.Errorf("health issue must be at most 3 words")
	}
	s.draft.HealthIssues = append(s.draft.HealthIssues, tag)
	return nil
}

// RemoveHealthIssue deletes the tag at index.
func (s *Session) RemoveHealthIssue(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.HealthIssues) {
		return fmt.Errorf("no health issue at index %d", index)
	}
	s.draft.HealthIssues = append(s.draft.HealthIssues[:index], s.draft.HealthIssues[index+1:]...)
	return nil
}

// AddExpectation appends a partner expectation of at most ten words.
func (s *Session) AddExpectation(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tag = utils.SanitizeInput(tag)
	if tag == "" {
		return fmt.Errorf("expectation must not be empty")
	}
	if utils.WordCount(tag) > 10 {
		return fmt.Errorf("expectation must be at most 10 words")
	}
	s.draft.Expectations = append(s.draft.Expectations, tag)
	s.clearError("expectations")
	return nil
}

// RemoveExpectation deletes the tag at index.
func (s *Session) RemoveExpectation(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Expectations) {
		return fmt.Errorf("no expectation at index %d", index)
	}
	s.draft.Expectations = append(s.draft.Expectations[:index], s.draft.Expectations[index+1:]...)
	return nil
}

// SetAvatar stages avatar bytes for upload at submit time.
func (s *Session) SetAvatar(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingAvatar = data
	s.clearError("avatar")
}

func (s *Session) hasPendingAvatar() bool {
	return len(s.pendingAvatar) > 0
}

// siblingBlocked reports whether the unsaved-sibling guard applies. The
// administrative variant bypasses it.
func (s *Session) siblingBlocked() bool {
	return !s.admin && s.editingSibling >= 0
}

// validate runs the current step's rules under the session lock.
func (s *Session) validate(step int) []FieldError {
	return ValidateStep(step, s.draft, s.siblingBlocked(), s.hasPendingAvatar())
}

// Next validates the current step; on failure the surfaced errors stay and
// the step does not change. On success it advances, raising the watermark,
// or submits when already at the last step. Returns true once submitted.
func (s *Session) Next(ctx context.Context) ([]FieldError, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := s.validate(s.current)
	if len(errs) > 0 {
		s.errors = errs
		return errs, false, nil
	}
	s.errors = nil

	if s.current < len(StepNames)-1 {
		s.current++
		if s.current > s.highestReached {
			s.highestReached = s.current
		}
		return nil, false, nil
	}

	if err := s.submit(ctx); err != nil {
		// Keep the draft intact for a manual retry.
		s.errors = []FieldError{{Field: "submit", Message: err.Error()}}
		return s.errors, false, nil
	}
	return nil, true, nil
}

// Back moves one step backward unconditionally.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current > 0 {
		s.current--
	}
}

// JumpTo moves to step k via the step indicator. Only steps at or below
// the watermark are reachable; jumping backward is unconditional, jumping
// forward first re-validates the current step.
func (s *Session) JumpTo(k int) []FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k < 0 || k >= len(StepNames) || k > s.highestReached || k == s.current {
		return s.errors
	}
	if k < s.current {
		s.errors = nil
		s.current = k
		return nil
	}
	errs := s.validate(s.current)
	if len(errs) > 0 {
		s.errors = errs
		return errs
	}
	s.errors = nil
	s.current = k
	return nil
}

// submit flushes the draft: pending avatar through the media collaborator,
// composed education string, completeness flag, then the profile store.
// Caller holds the lock.
func (s *Session) submit(ctx context.Context) error {
	if len(s.pendingAvatar) > 0 {
		url, err := s.media.UploadAvatar(ctx, s.pendingAvatar, s.targetID)
		if err != nil {
			return fmt.Errorf("failed to upload profile photo: %w", err)
		}
		s.draft.AvatarURL = url
		s.pendingAvatar = nil
	}

	edu := s.draft.EducationLevel
	if s.draft.EducationStream != "" {
		edu += " - " + s.draft.EducationStream
	}
	if s.draft.EducationDegree != "" {
		edu += " (" + s.draft.EducationDegree + ")"
	}
	s.draft.Education = edu

	switch s.draft.OccupationType {
	case models.OccupationJob:
		s.draft.Occupation = s.draft.Designation
	case models.OccupationBusiness:
		s.draft.Occupation = s.draft.BusinessName
	}

	s.draft.UserID = s.targetID
	s.draft.IsCompleteProfile = true
	if err := s.profiles.UpsertProfile(ctx, s.draft); err != nil {
		s.draft.IsCompleteProfile = false
		return fmt.Errorf("failed to save profile: %w", err)
	}

	log.Printf("✅ Profile submitted for %s", s.targetID)
	return nil
}
