package seeder

import (
	"context"

	"parish-match/internal/database"
	"parish-match/internal/domain/user"
)

type demoUser struct {
	Email  string
	Name   string
	Phone  string
	Parish string
	Skills []string
	Bio    string
	Role   user.Role
}

var demoUsers = []demoUser{
	{Email: "citizen@demo.com", Name: "John Citizen", Phone: "876-555-0101", Parish: "Kingston", Skills: []string{"JavaScript", "React", "Node.js"}, Bio: "Front-end developer looking for public sector work.", Role: user.RoleCitizen},
	{Email: "admin@demo.com", Name: "Admin User", Phone: "876-555-0102", Parish: "St. Andrew", Role: user.RoleAdmin},
	{Email: "employer@demo.com", Name: "Employer User", Phone: "876-555-0103", Parish: "Manchester", Role: user.RoleEmployer},
	{Email: "keisha@demo.com", Name: "Keisha Brown", Phone: "876-555-0104", Parish: "Kingston", Skills: []string{"JavaScript", "React", "Next.js", "Accessibility Standards"}, Role: user.RoleCitizen},
	{Email: "andre@demo.com", Name: "Andre Campbell", Phone: "876-555-0105", Parish: "St. Andrew", Skills: []string{"Adobe Creative Suite", "Branding", "Print Design"}, Role: user.RoleCitizen},
	{Email: "marsha@demo.com", Name: "Marsha Williams", Phone: "876-555-0106", Parish: "Manchester", Skills: []string{"Bachelor's in Education", "Teaching Certification"}, Role: user.RoleCitizen},
	{Email: "devon@demo.com", Name: "Devon Grant", Phone: "876-555-0107", Parish: "St. James", Skills: []string{"Medical Records Management", "Scheduling"}, Role: user.RoleCitizen},
	{Email: "tanya@demo.com", Name: "Tanya Reid", Phone: "876-555-0108", Parish: "Clarendon", Skills: []string{"AutoCAD", "Civil Engineering Degree"}, Role: user.RoleCitizen},
}

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "users", "id", "email", "name", "phone", "parish", "skills", "bio", "role"); err != nil {
		return err
	}

	return database.InTx(ctx, db, func(tx database.Querier) error {
		for _, u := range demoUsers {
			skills := u.Skills
			if skills == nil {
				skills = []string{}
			}
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO users (id, email, name, phone, parish, skills, bio, role)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				 ON CONFLICT (id) DO UPDATE SET
				   name = EXCLUDED.name,
				   phone = EXCLUDED.phone,
				   parish = EXCLUDED.parish,
				   skills = EXCLUDED.skills,
				   bio = EXCLUDED.bio,
				   role = EXCLUDED.role,
				   updated_at = now()`,
				demoID("user", u.Email),
				u.Email,
				u.Name,
				u.Phone,
				u.Parish,
				skills,
				u.Bio,
				string(u.Role),
			); err != nil {
				return err
			}
		}

		return nil
	})
}
