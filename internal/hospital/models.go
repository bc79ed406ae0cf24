// Package hospital implements hospital registration: validation, lifecycle,
// and the persistence gateway contract.
package hospital

import "time"

// Hospital is a stored hospital record. blood_group and unit describe a
// standing blood requirement and are optional.
type Hospital struct {
	ID            string    `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	Address       string    `json:"address" bson:"address"`
	City          string    `json:"city" bson:"city"`
	State         string    `json:"state" bson:"state"`
	BloodGroup    string    `json:"blood_group,omitempty" bson:"blood_group,omitempty"`
	Unit          string    `json:"unit,omitempty" bson:"unit,omitempty"`
	ContactPerson string    `json:"contactPerson" bson:"contactPerson"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Submission is a candidate hospital record as received over the wire,
// before validation.
type Submission struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	BloodGroup    string `json:"blood_group"`
	Unit          string `json:"unit"`
	ContactPerson string `json:"contactPerson"`
}
