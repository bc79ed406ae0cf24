package donor

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"

	dErrors "hemobank/pkg/domain-errors"
)

const (
	minAge = 18
	maxAge = 65
)

// phonePattern matches digit-only phone numbers of 10 to 15 digits.
var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// Validate checks a submission against the donor schema. It returns either a
// normalized record (without id/timestamps, which the store gateway assigns)
// or a validation error carrying field failures in schema order. Validation
// is all-or-nothing: a non-nil error means nothing may be persisted.
func Validate(sub Submission) (Donor, error) {
	var fields []dErrors.FieldError
	fail := func(field, message string) {
		fields = append(fields, dErrors.FieldError{Field: field, Message: message})
	}

	name := strings.TrimSpace(sub.Name)
	if name == "" {
		fail("name", "name is required")
	}

	age, ok := coerceAge(sub.Age)
	if !ok {
		fail("age", "age must be a whole number")
	} else if age < minAge || age > maxAge {
		fail("age", "age must be between 18 and 65")
	}

	if !validGenders[Gender(sub.Gender)] {
		fail("gender", "gender must be one of male, female or other")
	}

	if !ValidBloodGroup(sub.BloodGroup) {
		fail("bloodGroup", "invalid blood group")
	}

	if !phonePattern.MatchString(sub.Phone) {
		fail("phone", "invalid phone number")
	}

	if !govalidator.IsEmail(sub.Email) {
		fail("email", "invalid email address")
	}

	if strings.TrimSpace(sub.Address) == "" {
		fail("address", "address is required")
	}
	if strings.TrimSpace(sub.City) == "" {
		fail("city", "city is required")
	}
	if strings.TrimSpace(sub.State) == "" {
		fail("state", "state is required")
	}

	// ageConfirmation must be the JSON literal true. Absent, false, or any
	// other type is a hard rejection, not a soft flag.
	if !isLiteralTrue(sub.AgeConfirmation) {
		fail("ageConfirmation", "you must be 18 or older to register")
	}

	if len(fields) > 0 {
		return Donor{}, dErrors.Validation(fields)
	}

	return Donor{
		Name:             name,
		Age:              age,
		Gender:           Gender(sub.Gender),
		BloodGroup:       BloodGroup(sub.BloodGroup),
		Phone:            sub.Phone,
		Email:            sub.Email,
		Address:          sub.Address,
		City:             sub.City,
		State:            sub.State,
		AgeConfirmation:  true,
		MedicalQuestions: sub.MedicalQuestions,
	}, nil
}

// coerceAge accepts a JSON number or a numeric string and returns the integer
// value. Fractional numbers, non-numeric strings, and other types fail.
func coerceAge(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(s)
	}

	age, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return age, true
}

func isLiteralTrue(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("true"))
}
