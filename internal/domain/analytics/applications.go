package analytics

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	UserID    uuid.UUID
	Status    ApplicationStatus
	AppliedAt time.Time
	UpdatedAt time.Time
}

type ApplicationStats struct {
	Total     int `json:"total"`
	Submitted int `json:"submitted"`
	Reviewing int `json:"reviewing"`
	Interview int `json:"interview"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
}

// CountApplications tallies applications per status. Unknown statuses only
// count towards the total.
func CountApplications(apps []Application) ApplicationStats {
	st := ApplicationStats{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case ApplicationSubmitted:
			st.Submitted++
		case ApplicationReviewing:
			st.Reviewing++
		case ApplicationInterview:
			st.Interview++
		case ApplicationAccepted:
			st.Accepted++
		case ApplicationRejected:
			st.Rejected++
		}
	}
	return st
}
