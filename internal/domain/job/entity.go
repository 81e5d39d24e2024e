package job

import (
	"time"

	"parish-match/internal/domain/matching"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime Type = "full-time"
	TypePartTime Type = "part-time"
	TypeContract Type = "contract"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
	StatusFilled Status = "filled"
)

type Job struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Employer       string
	EmployerID     *uuid.UUID
	Parish         string
	SalaryMin      int64
	SalaryMax      int64
	Currency       string
	JobType        Type
	RequiredSkills []string
	Deadline       *time.Time
	Status         Status
	Applications   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (j Job) MatchProfile() matching.Profile {
	return matching.Profile{ID: j.ID.String(), Parish: j.Parish, Skills: j.RequiredSkills}
}

func (j Job) IsOpen() bool {
	return j.Status == StatusActive
}
