package wizard

import (
	"fmt"
	"regexp"

	"github.com/yashasvi9199/MatchFind/models"
	"github.com/yashasvi9199/MatchFind/utils"
)

// FieldError is one field-scoped validation failure. Errors are additive
// and recoverable; they only ever block the transition that produced them.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Wizard steps, in order.
const (
	StepBasic = iota
	StepSocial
	StepLocation
	StepEducation
	StepFamily
	StepHealth
	StepPreferences
	StepMedia
)

// StepNames are the display names of the eight wizard steps.
var StepNames = []string{
	"Basic Info", "Social & Religious", "Location", "Education & Career",
	"Family Details", "Health", "Partner Preferences", "Photos & Bio",
}

var (
	heightRe    = regexp.MustCompile(`^\d\.\d{2}$`)
	weightRe    = regexp.MustCompile(`^\d{1,3}$`)
	birthTimeRe = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5]\d (AM|PM)$`)
)

// ValidateStep checks the named step's required fields against the draft.
// siblingInEdit marks an unsaved sibling row; pendingAvatar marks staged
// avatar bytes, which satisfy the photo requirement the same way a stored
// avatar URL does. Pure function, no side effects.
func ValidateStep(step int, d *models.ProfileDraft, siblingInEdit, pendingAvatar bool) []FieldError {
	var errs []FieldError

	req := func(field, value, msg string) {
		if value == "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}
	minLen := func(field, value, label string) {
		if value != "" && len(value) < 3 {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("%s must be at least 3 characters", label)})
		}
	}

	switch step {
	case StepBasic:
		req("name", d.Name, "Full name is required")
		req("gender", d.Gender, "Gender is required")
		req("height", d.Height, "Height is required")
		if d.Height != "" && !heightRe.MatchString(d.Height) {
			errs = append(errs, FieldError{Field: "height", Message: "Height must be in x.yz format (e.g., 5.11)"})
		}
		req("weight", d.Weight, "Weight is required")
		if d.Weight != "" && !weightRe.MatchString(d.Weight) {
			errs = append(errs, FieldError{Field: "weight", Message: "Weight must be at most 3 digits"})
		}
		req("skinColor", d.SkinColor, "Skin color is required")
		req("bloodGroup", d.BloodGroup, "Blood group is required")
		req("diet", d.Diet, "Diet preference is required")
		if d.Age < 18 || d.Age > 60 {
			errs = append(errs, FieldError{Field: "age", Message: "Age must be between 18 and 60"})
		}

	case StepSocial:
		req("caste", d.Caste, "Caste is required")
		if d.Caste != "" && d.Gotra == "" {
			errs = append(errs, FieldError{Field: "gotra", Message: "Gotra is required"})
		}

	case StepLocation:
		req("birthPlace", d.BirthPlace, "Birth place is required")
		minLen("birthPlace", d.BirthPlace, "Birth place")
		if d.BirthTime != "" && !birthTimeRe.MatchString(d.BirthTime) {
			errs = append(errs, FieldError{Field: "birthTime", Message: "Birth time must be in hh:mm AM/PM format"})
		}
		req("nativeState", d.NativeState, "Native state is required")
		minLen("nativeState", d.NativeState, "State")
		if d.NativeCountry == "India" && d.NativeState != "" && !models.ValidIndianState(d.NativeState) {
			errs = append(errs, FieldError{Field: "nativeState", Message: "Select a valid Indian state"})
		}
		req("nativeCity", d.NativeCity, "Native city is required")
		minLen("nativeCity", d.NativeCity, "City")
		req("currentCountry", d.CurrentCountry, "Current country is required")
		minLen("currentCountry", d.CurrentCountry, "Country")
		if d.CurrentCountry == "India" && d.CurrentState != "" && !models.ValidIndianState(d.CurrentState) {
			errs = append(errs, FieldError{Field: "currentState", Message: "Select a valid Indian state"})
		}
		req("currentCity", d.CurrentCity, "Current city is required")
		minLen("currentCity", d.CurrentCity, "City")

	case StepEducation:
		req("educationLevel", d.EducationLevel, "Education level is required")
		if models.StreamRequired(d.EducationLevel) {
			req("educationStream", d.EducationStream, "Education stream is required")
		}
		switch d.OccupationType {
		case models.OccupationJob:
			req("companyName", d.CompanyName, "Company name is required")
			req("designation", d.Designation, "Designation is required")
		case models.OccupationBusiness:
			req("businessName", d.BusinessName, "Business name is required")
			req("businessCategory", d.BusinessCategory, "Business category is required")
		default:
			req("occupation", d.Occupation, "Occupation is required")
		}
		req("salary", d.Salary, "Salary range is required")

	case StepFamily:
		if d.Father.Name == "" {
			errs = append(errs, FieldError{Field: "father.name", Message: "Father's name is required"})
		} else if !utils.IsAlphaSpace(d.Father.Name) {
			errs = append(errs, FieldError{Field: "father.name", Message: "Father's name may contain letters and spaces only"})
		}
		if d.Father.Occupation == "" {
			errs = append(errs, FieldError{Field: "father.occupation", Message: "Father's occupation is required"})
		} else if !utils.IsAlphaSpace(d.Father.Occupation) {
			errs = append(errs, FieldError{Field: "father.occupation", Message: "Father's occupation may contain letters and spaces only"})
		}
		if d.Mother.Name == "" {
			errs = append(errs, FieldError{Field: "mother.name", Message: "Mother's name is required"})
		} else if !utils.IsAlphaSpace(d.Mother.Name) {
			errs = append(errs, FieldError{Field: "mother.name", Message: "Mother's name may contain letters and spaces only"})
		}
		if siblingInEdit {
			errs = append(errs, FieldError{Field: "siblings", Message: "Please save sibling details before proceeding"})
		}

	case StepHealth:
		// No required fields; tags are capped at write time.

	case StepPreferences:
		if d.PartnerAgeMin == 0 || d.PartnerAgeMax == 0 {
			errs = append(errs, FieldError{Field: "partnerAge", Message: "Partner age range is required"})
		} else if d.PartnerAgeMin >= d.PartnerAgeMax {
			errs = append(errs, FieldError{Field: "partnerAge", Message: "Min age must be less than Max age"})
		}
		if len(d.Expectations) == 0 {
			errs = append(errs, FieldError{Field: "expectations", Message: "Add at least one expectation"})
		}

	case StepMedia:
		if d.Bio == "" {
			errs = append(errs, FieldError{Field: "bio", Message: "Bio is required"})
		}
		if !pendingAvatar && d.AvatarURL == "" {
			errs = append(errs, FieldError{Field: "avatar", Message: "Profile photo is required"})
		}
	}

	return errs
}
