package user

import (
	"time"

	"parish-match/internal/domain/matching"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleAdmin    Role = "admin"
	RoleEmployer Role = "employer"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Phone     string
	Parish    string
	Skills    []string
	Bio       string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) MatchProfile() matching.Profile {
	return matching.Profile{ID: u.ID.String(), Parish: u.Parish, Skills: u.Skills}
}
