package models

// Fixed community catalogs. Gotras are nested under their caste; a gotra is
// only selectable while its caste is the selected one.

var CasteData = map[string][]string{
	"Khandelwal": {
		"Aakad", "Agri", "Aranya", "Attal", "Badaya", "Bajargan", "Baldua", "Bali", "Bandal", "Banka",
		"Bhadaliya", "Bhatwara", "Bhukhmaria", "Bichpuriya", "Boongiya", "Budarwal", "Budhwariya",
		"Chandanwal", "Chaudhari", "Chitlangi", "Dangayach", "Devan", "Dhoka", "Dhokariya", "Dhusi",
		"Gheeya", "Goliya", "Hada", "Haldia", "Jadawat", "Jhalani", "Jhanjhari", "Jokhari", "Jotwani",
		"Jwalya", "Kalani", "Kanjoliya", "Kasat", "Kasliwal", "Kath", "Khandar", "Khatod", "Khatta",
		"Khunteta", "Kohli", "Koolwal", "Luhadiya", "Luhariwal", "Mithawalia", "Moosya", "Natani",
		"Pandala", "Pitaliya", "Pithaliya", "Puri", "Rawat", "Roongta", "Samoliya", "Sankhla", "Saraf",
		"Singhal", "Sogi", "Soonwal", "Tamra", "Telani", "Tholiya", "Tholya", "Todi", "Vyas", "Zanwar",
		"Bhojya", "Chunwal", "Pohalya", "Varniwal",
	},
	"Agarwal": {
		"Garg", "Goyal", "Kansal", "Bansal", "Singhal", "Mittal", "Jindal", "Mangal", "Tingal",
		"Airan", "Dharan", "Madhukul", "Tayal", "Bhandal", "Kuchchal", "Nagal", "Bindal", "Goyan",
	},
	"Jain": {
		"Oswal", "Porwal", "Shrimal", "Humad", "Bagherwal", "Khandelwal", "Sancheti", "Bafna",
	},
	"Maheswari": {
		"Agiwal", "Asava", "Attal", "Baldua", "Baheti", "Bajaj", "Bhandari", "Bhattad", "Bhansaali",
		"Birla", "Chandak", "Daga", "Dhoot", "Gagrani", "Heda", "Jajoo", "Jhanwar", "Kabra",
	},
	"Gupta": {
		"Kashyap", "Vatsa", "Garg", "Bharadwaj", "Kaushik", "Maitrey", "Parashar", "Dharana",
	},
	"Oswal": {
		"Bafna", "Chhajed", "Chopda", "Dugar", "Golechha", "Kabra", "Lodha", "Mundra", "Sancheti", "Surana",
	},
}

// GotrasFor returns the gotra catalog for a caste, nil for an unknown caste.
func GotrasFor(caste string) []string {
	return CasteData[caste]
}

// ValidGotra reports whether gotra belongs to the caste's catalog.
func ValidGotra(caste, gotra string) bool {
	for _, g := range CasteData[caste] {
		if g == gotra {
			return true
		}
	}
	return false
}

var SalarySlabs = []string{
	"0-3 LPA", "3-5 LPA", "5-7 LPA", "7-10 LPA", "10-15 LPA",
	"15-20 LPA", "20-25 LPA", "25-30 LPA", "30+ LPA",
}

var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa", "Gujarat",
	"Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
	"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Delhi", "Jammu and Kashmir", "Ladakh", "Puducherry",
}

var Titles = []string{"Mr", "Miss", "Mrs", "Late", "Dr", "Er"}
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
var Diets = []string{"Vegetarian", "Jain", "Non-Vegetarian", "Vegan"}
var SkinColors = []string{"Fair", "Wheatish", "Dusky", "Dark"}

var EducationLevels = []string{"10th Pass", "12th Pass", "Graduate", "Post Graduate", "Professional", "Doctorate", "Other"}
var EducationStreams = []string{"Engineering", "Medical", "Arts", "Commerce", "Science", "Law", "Management", "Design", "Other"}

// StreamRequired reports whether an education level needs a stream.
func StreamRequired(level string) bool {
	switch level {
	case "Graduate", "Post Graduate", "Professional", "Doctorate":
		return true
	}
	return false
}

// ValidIndianState reports whether s is a recognised Indian state. State is
// a constrained value only while the country is India.
func ValidIndianState(s string) bool {
	for _, st := range IndianStates {
		if st == s {
			return true
		}
	}
	return false
}
