// Package donor defines the donor record schema and its validation contract.
package donor

import (
	"encoding/json"
	"time"
)

// Gender is the closed set of accepted gender values.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

// BloodGroup is the closed set of the 8 ABO/Rh groups.
type BloodGroup string

const (
	APositive  BloodGroup = "A+"
	ANegative  BloodGroup = "A-"
	BPositive  BloodGroup = "B+"
	BNegative  BloodGroup = "B-"
	ABPositive BloodGroup = "AB+"
	ABNegative BloodGroup = "AB-"
	OPositive  BloodGroup = "O+"
	ONegative  BloodGroup = "O-"
)

// BloodGroups lists all groups in display order. Inventory bucketing and
// enum validation both range over this slice.
var BloodGroups = []BloodGroup{
	APositive, ANegative,
	BPositive, BNegative,
	ABPositive, ABNegative,
	OPositive, ONegative,
}

// ValidBloodGroup reports whether s is one of the 8 groups.
func ValidBloodGroup(s string) bool {
	for _, g := range BloodGroups {
		if string(g) == s {
			return true
		}
	}
	return false
}

// MedicalQuestions is the fixed set of 10 screening flags. Keys absent from
// the submission stay false; the JSON schema is closed (unknown keys are
// rejected at decode time).
type MedicalQuestions struct {
	RecentIllness  bool `json:"recentIllness" bson:"recentIllness"`
	HeartCondition bool `json:"heartCondition" bson:"heartCondition"`
	BloodPressure  bool `json:"bloodPressure" bson:"bloodPressure"`
	Diabetes       bool `json:"diabetes" bson:"diabetes"`
	Hepatitis      bool `json:"hepatitis" bson:"hepatitis"`
	HIV            bool `json:"hiv" bson:"hiv"`
	Medication     bool `json:"medication" bson:"medication"`
	Surgery        bool `json:"surgery" bson:"surgery"`
	Pregnancy      bool `json:"pregnancy" bson:"pregnancy"`
	Vaccination    bool `json:"vaccination" bson:"vaccination"`
}

// Donor is a stored donor record. ID and timestamps are server-assigned at
// insert and immutable afterwards.
type Donor struct {
	ID               string           `json:"id" bson:"_id"`
	Name             string           `json:"name" bson:"name"`
	Age              int              `json:"age" bson:"age"`
	Gender           Gender           `json:"gender" bson:"gender"`
	BloodGroup       BloodGroup       `json:"bloodGroup" bson:"bloodGroup"`
	Phone            string           `json:"phone" bson:"phone"`
	Email            string           `json:"email" bson:"email"`
	Address          string           `json:"address" bson:"address"`
	City             string           `json:"city" bson:"city"`
	State            string           `json:"state" bson:"state"`
	AgeConfirmation  bool             `json:"ageConfirmation" bson:"ageConfirmation"`
	MedicalQuestions MedicalQuestions `json:"medicalQuestions" bson:"medicalQuestions"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// Submission is a candidate donor record as received over the wire, before
// validation. Age and ageConfirmation stay raw so that wrong-typed values
// surface as field errors instead of decode failures: the validator coerces
// age from a number or numeric string, and requires ageConfirmation to be
// the literal true.
type Submission struct {
	Name             string           `json:"name"`
	Age              json.RawMessage  `json:"age"`
	Gender           string           `json:"gender"`
	BloodGroup       string           `json:"bloodGroup"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Address          string           `json:"address"`
	City             string           `json:"city"`
	State            string           `json:"state"`
	AgeConfirmation  json.RawMessage  `json:"ageConfirmation"`
	MedicalQuestions MedicalQuestions `json:"medicalQuestions"`
}
