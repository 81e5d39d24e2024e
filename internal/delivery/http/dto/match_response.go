package dto

import (
	"time"

	"parish-match/internal/usecase"

	"github.com/google/uuid"
)

type JobMatchResponse struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Employer       string     `json:"employer"`
	Parish         string     `json:"parish"`
	SalaryMin      int64      `json:"salary_min"`
	SalaryMax      int64      `json:"salary_max"`
	Currency       string     `json:"currency"`
	JobType        string     `json:"job_type"`
	RequiredSkills []string   `json:"required_skills"`
	Deadline       *time.Time `json:"deadline"`
	Status         string     `json:"status"`
	Applications   int        `json:"applications"`
	CreatedAt      time.Time  `json:"created_at"`
	MatchScore     int        `json:"match_score"`
	MatchReasons   []string   `json:"match_reasons"`
}

type UserMatchResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Parish       string    `json:"parish"`
	Skills       []string  `json:"skills"`
	Bio          string    `json:"bio"`
	MatchScore   int       `json:"match_score"`
	MatchReasons []string  `json:"match_reasons"`
}

func NewJobMatchResponses(items []usecase.JobMatch) []JobMatchResponse {
	out := make([]JobMatchResponse, 0, len(items))
	for _, it := range items {
		j := it.Candidate
		out = append(out, JobMatchResponse{
			ID:             j.ID,
			Title:          j.Title,
			Description:    j.Description,
			Employer:       j.Employer,
			Parish:         j.Parish,
			SalaryMin:      j.SalaryMin,
			SalaryMax:      j.SalaryMax,
			Currency:       j.Currency,
			JobType:        string(j.JobType),
			RequiredSkills: nonNil(j.RequiredSkills),
			Deadline:       j.Deadline,
			Status:         string(j.Status),
			Applications:   j.Applications,
			CreatedAt:      j.CreatedAt,
			MatchScore:     it.Score,
			MatchReasons:   nonNil(it.Reasons),
		})
	}
	return out
}

func NewUserMatchResponses(items []usecase.UserMatch) []UserMatchResponse {
	out := make([]UserMatchResponse, 0, len(items))
	for _, it := range items {
		u := it.Candidate
		out = append(out, UserMatchResponse{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Parish:       u.Parish,
			Skills:       nonNil(u.Skills),
			Bio:          u.Bio,
			MatchScore:   it.Score,
			MatchReasons: nonNil(it.Reasons),
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
