// Package inventory derives the blood stock dashboard from the donor list.
// The summary is a pure, stateless recomputation over the full list; no
// aggregate state is persisted.
package inventory

import "hemobank/internal/donor"

// Status classifies one blood group's stock level.
type Status string

const (
	StatusCritical Status = "critical"
	StatusLow      Status = "low"
	StatusNormal   Status = "normal"
	StatusExcess   Status = "excess"
)

const (
	defaultMinRequired   = 5
	oPositiveMinRequired = 10
	oNegativeMinRequired = 8

	// unitsPerDonor converts a donor count into available blood units.
	unitsPerDonor = 2
)

// Bucket is one blood group's aggregate count and its classification.
type Bucket struct {
	Type        donor.BloodGroup `json:"type"`
	Count       int              `json:"count"`
	MinRequired int              `json:"minRequired"`
	Status      Status           `json:"status"`
}

// Summary is the full dashboard view.
type Summary struct {
	BloodGroups     []Bucket `json:"bloodGroups"`
	TotalDonors     int      `json:"totalDonors"`
	TotalBloodUnits int      `json:"totalBloodUnits"`
}

// MinRequired returns the stock floor for a blood group. O+ and O- carry
// higher floors than the other six groups.
func MinRequired(group donor.BloodGroup) int {
	switch group {
	case donor.OPositive:
		return oPositiveMinRequired
	case donor.ONegative:
		return oNegativeMinRequired
	default:
		return defaultMinRequired
	}
}

// Classify maps a count against a group's floor: zero stock is critical,
// below the floor is low, more than twice the floor is excess.
func Classify(count, minRequired int) Status {
	switch {
	case count == 0:
		return StatusCritical
	case count < minRequired:
		return StatusLow
	case count > minRequired*2:
		return StatusExcess
	default:
		return StatusNormal
	}
}

// Summarize buckets donors by blood group across all 8 groups and classifies
// each bucket. Groups with no donors still appear, marked critical.
func Summarize(donors []donor.Donor) Summary {
	counts := make(map[donor.BloodGroup]int, len(donor.BloodGroups))
	for _, record := range donors {
		counts[record.BloodGroup]++
	}

	buckets := make([]Bucket, 0, len(donor.BloodGroups))
	for _, group := range donor.BloodGroups {
		min := MinRequired(group)
		count := counts[group]
		buckets = append(buckets, Bucket{
			Type:        group,
			Count:       count,
			MinRequired: min,
			Status:      Classify(count, min),
		})
	}

	return Summary{
		BloodGroups:     buckets,
		TotalDonors:     len(donors),
		TotalBloodUnits: len(donors) * unitsPerDonor,
	}
}
