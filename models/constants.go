package models

// Interaction kinds
const (
	InteractionInterested = "INTERESTED"
	InteractionRemoved    = "REMOVED"
)

// Genders
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Occupation types; the sub-fields of the other type are cleared on switch.
const (
	OccupationJob      = "Job"
	OccupationBusiness = "Business"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
