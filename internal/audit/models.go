// Package audit captures append-only events for key record lifecycle and
// auth actions.
package audit

import "time"

// Action names an audited occurrence.
type Action string

const (
	ActionDonorRegistered    Action = "donor_registered"
	ActionDonorDeleted       Action = "donor_deleted"
	ActionHospitalRegistered Action = "hospital_registered"
	ActionUserCreated        Action = "user_created"
	ActionLoginSucceeded     Action = "login_succeeded"
	ActionLoginFailed        Action = "login_failed"
	ActionRateLimited        Action = "rate_limit_exceeded"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	Action    Action
	// Subject identifies the affected entity (record id or account email).
	Subject string
	// RequestID correlates the event with the HTTP exchange that caused it.
	RequestID string
	// Detail carries an action-specific note (e.g. blood group, failure
	// reason). Never contains credentials.
	Detail string
}
