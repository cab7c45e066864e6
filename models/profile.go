package models

// ProfilesTable is the DynamoDB table holding profile drafts and
// completed profiles, keyed by userId.
const ProfilesTable = "Profiles"

// FamilyMember is one relative on the profile: father, mother, the
// maternal side or a sibling.
type FamilyMember struct {
	Title      string `json:"title" dynamodbav:"title"`
	Name       string `json:"name" dynamodbav:"name"`
	Gotra      string `json:"gotra,omitempty" dynamodbav:"gotra,omitempty"`
	Caste      string `json:"caste,omitempty" dynamodbav:"caste,omitempty"`
	Occupation string `json:"occupation,omitempty" dynamodbav:"occupation,omitempty"`
}

// ProfileDraft is the full profile record. The same shape serves the
// wizard draft and the stored profile; isCompleteProfile distinguishes
// the two.
type ProfileDraft struct {
	UserID string `json:"userId" dynamodbav:"userId"`

	// Basic info
	Title      string `json:"title" dynamodbav:"title"`
	Name       string `json:"name" dynamodbav:"name"`
	Gender     string `json:"gender" dynamodbav:"gender"`
	Age        int    `json:"age" dynamodbav:"age"`
	Height     string `json:"height" dynamodbav:"height"`
	Weight     string `json:"weight" dynamodbav:"weight"`
	SkinColor  string `json:"skinColor" dynamodbav:"skinColor"`
	BloodGroup string `json:"bloodGroup" dynamodbav:"bloodGroup"`
	Diet       string `json:"diet" dynamodbav:"diet"`

	// Social & religious
	Caste string `json:"caste" dynamodbav:"caste"`
	Gotra string `json:"gotra" dynamodbav:"gotra"`

	// Location
	BirthPlace     string `json:"birthPlace" dynamodbav:"birthPlace"`
	BirthTime      string `json:"birthTime" dynamodbav:"birthTime"`
	NativeCountry  string `json:"nativeCountry" dynamodbav:"nativeCountry"`
	NativeState    string `json:"nativeState" dynamodbav:"nativeState"`
	NativeCity     string `json:"nativeCity" dynamodbav:"nativeCity"`
	CurrentCountry string `json:"currentCountry" dynamodbav:"currentCountry"`
	CurrentState   string `json:"currentState" dynamodbav:"currentState"`
	CurrentCity    string `json:"currentCity" dynamodbav:"currentCity"`

	// Education & career
	EducationLevel   string `json:"educationLevel" dynamodbav:"educationLevel"`
	EducationStream  string `json:"educationStream" dynamodbav:"educationStream"`
	EducationDegree  string `json:"educationDegree" dynamodbav:"educationDegree"`
	Education        string `json:"education" dynamodbav:"education"` // composed at submit
	OccupationType   string `json:"occupationType" dynamodbav:"occupationType"`
	CompanyName      string `json:"companyName" dynamodbav:"companyName"`
	Designation      string `json:"designation" dynamodbav:"designation"`
	BusinessName     string `json:"businessName" dynamodbav:"businessName"`
	BusinessCategory string `json:"businessCategory" dynamodbav:"businessCategory"`
	Occupation       string `json:"occupation" dynamodbav:"occupation"`
	Salary           string `json:"salary" dynamodbav:"salary"`

	// Family
	Father       FamilyMember   `json:"father" dynamodbav:"father"`
	Mother       FamilyMember   `json:"mother" dynamodbav:"mother"`
	MaternalSide FamilyMember   `json:"maternalSide" dynamodbav:"maternalSide"`
	Siblings     []FamilyMember `json:"siblings" dynamodbav:"siblings"`

	// Health
	HealthIssues []string `json:"healthIssues" dynamodbav:"healthIssues"`

	// Partner preferences
	PartnerAgeMin int      `json:"partnerAgeMin" dynamodbav:"partnerAgeMin"`
	PartnerAgeMax int      `json:"partnerAgeMax" dynamodbav:"partnerAgeMax"`
	Expectations  []string `json:"expectations" dynamodbav:"expectations"`

	// Photos & bio
	Bio       string `json:"bio" dynamodbav:"bio"`
	AvatarURL string `json:"avatarUrl" dynamodbav:"avatarUrl"`

	IsCompleteProfile bool   `json:"isCompleteProfile" dynamodbav:"isCompleteProfile"`
	UpdatedAt         string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// CandidateProfile is the projection served to other users in discovery,
// search and the match views. Birth time and partner preferences stay
// private to the owner.
type CandidateProfile struct {
	UserID       string         `json:"userId"`
	Name         string         `json:"name"`
	Gender       string         `json:"gender"`
	Age          int            `json:"age"`
	Height       string         `json:"height"`
	SkinColor    string         `json:"skinColor"`
	Diet         string         `json:"diet"`
	Caste        string         `json:"caste"`
	Gotra        string         `json:"gotra"`
	CurrentCity  string         `json:"currentCity"`
	CurrentState string         `json:"currentState"`
	Education    string         `json:"education"`
	Occupation   string         `json:"occupation"`
	Siblings     []FamilyMember `json:"siblings"`
	HealthIssues []string       `json:"healthIssues"`
	Bio          string         `json:"bio"`
	AvatarURL    string         `json:"avatarUrl"`
}

// Clone returns a deep copy of the draft, including the sibling and tag
// slices, so the copy can be read or encoded while the original keeps
// being mutated.
func (d *ProfileDraft) Clone() *ProfileDraft {
	c := *d
	c.Siblings = append([]FamilyMember(nil), d.Siblings...)
	c.HealthIssues = append([]string(nil), d.HealthIssues...)
	c.Expectations = append([]string(nil), d.Expectations...)
	return &c
}

// Candidate returns the discovery projection of the profile.
func (d *ProfileDraft) Candidate() CandidateProfile {
	return CandidateProfile{
		UserID:       d.UserID,
		Name:         d.Name,
		Gender:       d.Gender,
		Age:          d.Age,
		Height:       d.Height,
		SkinColor:    d.SkinColor,
		Diet:         d.Diet,
		Caste:        d.Caste,
		Gotra:        d.Gotra,
		CurrentCity:  d.CurrentCity,
		CurrentState: d.CurrentState,
		Education:    d.Education,
		Occupation:   d.Occupation,
		Siblings:     d.Siblings,
		HealthIssues: d.HealthIssues,
		Bio:          d.Bio,
		AvatarURL:    d.AvatarURL,
	}
}

// OppositeGender maps a gender to the discovery pool it browses.
func OppositeGender(gender string) string {
	if gender == GenderFemale {
		return GenderMale
	}
	return GenderFemale
}

// NewProfileDraft returns an empty draft with the form's default values.
func NewProfileDraft(userID string) *ProfileDraft {
	return &ProfileDraft{
		UserID:         userID,
		Title:          "Mr",
		Age:            18,
		BirthTime:      "12:00 PM",
		NativeCountry:  "India",
		CurrentCountry: "India",
		Father:         FamilyMember{Title: "Mr"},
		Mother:         FamilyMember{Title: "Mrs"},
		MaternalSide:   FamilyMember{Title: "Mr"},
		PartnerAgeMin:  23,
		PartnerAgeMax:  27,
	}
}
