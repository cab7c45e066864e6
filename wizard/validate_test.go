package wizard_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yashasvi9199/MatchFind/models"
	"github.com/yashasvi9199/MatchFind/wizard"
)

func validBasicDraft() *models.ProfileDraft {
	d := models.NewProfileDraft("u1")
	d.Name = "Rahul Sharma"
	d.Gender = models.GenderMale
	d.Age = 28
	d.Height = "5.11"
	d.Weight = "72"
	d.SkinColor = "Wheatish"
	d.BloodGroup = "B+"
	d.Diet = "Vegetarian"
	return d
}

func fieldsOf(errs []wizard.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateBasicAgeBounds(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{17, true},
		{18, false},
		{35, false},
		{60, false},
		{61, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("age=%d", tt.age), func(t *testing.T) {
			d := validBasicDraft()
			d.Age = tt.age
			errs := wizard.ValidateStep(wizard.StepBasic, d, false, false)
			if tt.wantErr {
				assert.Contains(t, fieldsOf(errs), "age")
			} else {
				assert.NotContains(t, fieldsOf(errs), "age")
			}
		})
	}
}

func TestValidateBasicHeightFormat(t *testing.T) {
	tests := []struct {
		height string
		ok     bool
	}{
		{"5.11", true},
		{"6.02", true},
		{"5.1", false},
		{"5", false},
		{"5.111", false},
		{"five.eleven", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("height="+tt.height, func(t *testing.T) {
			d := validBasicDraft()
			d.Height = tt.height
			errs := wizard.ValidateStep(wizard.StepBasic, d, false, false)
			if tt.ok {
				assert.NotContains(t, fieldsOf(errs), "height")
			} else {
				assert.Contains(t, fieldsOf(errs), "height")
			}
		})
	}
}

func TestValidateBasicUnderageScenario(t *testing.T) {
	d := validBasicDraft()
	d.Age = 17
	errs := wizard.ValidateStep(wizard.StepBasic, d, false, false)
	assert.NotEmpty(t, errs)
	assert.Contains(t, fieldsOf(errs), "age")
}

func TestValidateSocialRequiresGotraOnceCasteSet(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.Caste = "Agarwal"

	errs := wizard.ValidateStep(wizard.StepSocial, d, false, false)
	assert.Contains(t, fieldsOf(errs), "gotra")

	d.Gotra = "Garg"
	errs = wizard.ValidateStep(wizard.StepSocial, d, false, false)
	assert.Empty(t, errs)
}

func TestValidateSocialMissingCaste(t *testing.T) {
	d := models.NewProfileDraft("u1")
	errs := wizard.ValidateStep(wizard.StepSocial, d, false, false)
	assert.Contains(t, fieldsOf(errs), "caste")
}

func TestValidateLocation(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.BirthPlace = "Jaipur"
	d.NativeState = "Rajasthan"
	d.NativeCity = "Jaipur"
	d.CurrentCountry = "India"
	d.CurrentCity = "Pune"

	assert.Empty(t, wizard.ValidateStep(wizard.StepLocation, d, false, false))

	d.NativeCity = "Ja"
	errs := wizard.ValidateStep(wizard.StepLocation, d, false, false)
	assert.Contains(t, fieldsOf(errs), "nativeCity")

	d.NativeCity = "Jaipur"
	d.NativeState = "Rajasthaan"
	errs = wizard.ValidateStep(wizard.StepLocation, d, false, false)
	assert.Contains(t, fieldsOf(errs), "nativeState")
}

func TestValidateLocationBirthTimeFormat(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.BirthPlace = "Jaipur"
	d.NativeState = "Rajasthan"
	d.NativeCity = "Jaipur"
	d.CurrentCountry = "India"
	d.CurrentCity = "Pune"

	for _, good := range []string{"12:00 PM", "1:05 AM", "09:30 AM"} {
		d.BirthTime = good
		assert.NotContains(t, fieldsOf(wizard.ValidateStep(wizard.StepLocation, d, false, false)), "birthTime", good)
	}
	for _, bad := range []string{"13:00 PM", "12:00", "0:15 AM", "12:61 PM"} {
		d.BirthTime = bad
		assert.Contains(t, fieldsOf(wizard.ValidateStep(wizard.StepLocation, d, false, false)), "birthTime", bad)
	}
}

func TestValidateEducationOccupationVariants(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.EducationLevel = "Graduate"
	d.EducationStream = "Engineering"
	d.Salary = "7-10 LPA"

	// No occupation type set: the free-text occupation is required.
	errs := wizard.ValidateStep(wizard.StepEducation, d, false, false)
	assert.Contains(t, fieldsOf(errs), "occupation")

	d.OccupationType = models.OccupationJob
	errs = wizard.ValidateStep(wizard.StepEducation, d, false, false)
	assert.Contains(t, fieldsOf(errs), "companyName")
	assert.Contains(t, fieldsOf(errs), "designation")

	d.CompanyName = "Infosys"
	d.Designation = "Engineer"
	assert.Empty(t, wizard.ValidateStep(wizard.StepEducation, d, false, false))

	d.OccupationType = models.OccupationBusiness
	errs = wizard.ValidateStep(wizard.StepEducation, d, false, false)
	assert.Contains(t, fieldsOf(errs), "businessName")
	assert.Contains(t, fieldsOf(errs), "businessCategory")
}

func TestValidateEducationStreamRequiredByLevel(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.EducationLevel = "Post Graduate"
	d.Occupation = "Teacher"
	d.Salary = "3-5 LPA"

	errs := wizard.ValidateStep(wizard.StepEducation, d, false, false)
	assert.Contains(t, fieldsOf(errs), "educationStream")

	d.EducationLevel = "12th Pass"
	errs = wizard.ValidateStep(wizard.StepEducation, d, false, false)
	assert.NotContains(t, fieldsOf(errs), "educationStream")
}

func TestValidateFamily(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.Father = models.FamilyMember{Title: "Mr", Name: "Suresh Sharma", Occupation: "Business"}
	d.Mother = models.FamilyMember{Title: "Mrs", Name: "Sunita Sharma"}

	assert.Empty(t, wizard.ValidateStep(wizard.StepFamily, d, false, false))

	d.Father.Name = "Suresh123"
	errs := wizard.ValidateStep(wizard.StepFamily, d, false, false)
	assert.Contains(t, fieldsOf(errs), "father.name")
}

func TestValidateFamilySiblingMidEditAlwaysFails(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.Father = models.FamilyMember{Title: "Mr", Name: "Suresh Sharma", Occupation: "Business"}
	d.Mother = models.FamilyMember{Title: "Mrs", Name: "Sunita Sharma"}

	errs := wizard.ValidateStep(wizard.StepFamily, d, true, false)
	assert.Equal(t, []string{"siblings"}, fieldsOf(errs))
}

func TestValidateHealthHasNoRequiredFields(t *testing.T) {
	d := models.NewProfileDraft("u1")
	assert.Empty(t, wizard.ValidateStep(wizard.StepHealth, d, false, false))
}

func TestValidatePreferences(t *testing.T) {
	d := models.NewProfileDraft("u1")
	d.Expectations = []string{"well educated"}

	d.PartnerAgeMin = 23
	d.PartnerAgeMax = 27
	assert.Empty(t, wizard.ValidateStep(wizard.StepPreferences, d, false, false))

	// min >= max fails
	d.PartnerAgeMin = 27
	d.PartnerAgeMax = 27
	errs := wizard.ValidateStep(wizard.StepPreferences, d, false, false)
	assert.Contains(t, fieldsOf(errs), "partnerAge")

	// empty expectations fails
	d.PartnerAgeMin = 23
	d.Expectations = nil
	errs = wizard.ValidateStep(wizard.StepPreferences, d, false, false)
	assert.Contains(t, fieldsOf(errs), "expectations")
}

func TestValidateMedia(t *testing.T) {
	d := models.NewProfileDraft("u1")

	errs := wizard.ValidateStep(wizard.StepMedia, d, false, false)
	assert.Contains(t, fieldsOf(errs), "bio")
	assert.Contains(t, fieldsOf(errs), "avatar")

	d.Bio = "Looking for a life partner"
	assert.Empty(t, wizard.ValidateStep(wizard.StepMedia, d, false, true))

	// A stored avatar URL counts the same as a pending file.
	d.AvatarURL = "https://example.com/a.jpg"
	assert.Empty(t, wizard.ValidateStep(wizard.StepMedia, d, false, false))
}
