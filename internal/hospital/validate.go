package hospital

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"hemobank/internal/donor"
	dErrors "hemobank/pkg/domain-errors"
)

// Validate checks a submission against the hospital schema and returns
// either a normalized record or a validation error carrying field failures
// in schema order. blood_group and unit are optional; when blood_group is
// present it must be one of the known blood groups.
func Validate(sub Submission) (Hospital, error) {
	var fields []dErrors.FieldError
	fail := func(field, message string) {
		fields = append(fields, dErrors.FieldError{Field: field, Message: message})
	}

	name := strings.TrimSpace(sub.Name)
	if name == "" {
		fail("name", "name is required")
	}

	if !govalidator.IsEmail(sub.Email) {
		fail("email", "invalid email address")
	}

	if strings.TrimSpace(sub.Phone) == "" {
		fail("phone", "phone is required")
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

	bloodGroup := strings.TrimSpace(sub.BloodGroup)
	if bloodGroup != "" && !donor.ValidBloodGroup(bloodGroup) {
		fail("blood_group", "invalid blood group")
	}

	contact := strings.TrimSpace(sub.ContactPerson)
	if contact == "" {
		fail("contactPerson", "contact person is required")
	}

	if len(fields) > 0 {
		return Hospital{}, dErrors.Validation(fields)
	}

	return Hospital{
		Name:          name,
		Email:         sub.Email,
		Phone:         sub.Phone,
		Address:       sub.Address,
		City:          sub.City,
		State:         sub.State,
		BloodGroup:    bloodGroup,
		Unit:          strings.TrimSpace(sub.Unit),
		ContactPerson: contact,
	}, nil
}
