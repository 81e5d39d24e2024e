package seeder

import "github.com/google/uuid"

// demoNamespace keys the deterministic ids of demo rows so reseeding hits
// the same primary keys.
var demoNamespace = uuid.MustParse("6f1c2a2e-4e0b-4d59-9a43-0f1a3b7c9d21")

func demoID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte(kind+":"+key))
}

func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		JobsSeeder{},
		ApplicationsSeeder{},
		SnapshotsSeeder{},
	}
}

// DemoUserID is the id the users seeder assigns to the demo account email.
func DemoUserID(email string) uuid.UUID {
	return demoID("user", email)
}

// DemoJobID is the id the jobs seeder assigns to the demo job key.
func DemoJobID(key string) uuid.UUID {
	return demoID("job", key)
}
