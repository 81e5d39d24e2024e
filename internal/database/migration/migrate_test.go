package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_PairsUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(Files(), ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected file %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestFiles_CreateCoreTables(t *testing.T) {
	b, err := fs.ReadFile(Files(), "000001_init_schema.up.sql")
	require.NoError(t, err)

	sql := string(b)
	for _, table := range []string{"users", "jobs", "job_applications", "analytics_snapshots"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, sql, "required_skills TEXT[]")
}

func TestRunner_RejectsEmptyURL(t *testing.T) {
	assert.Error(t, Runner{}.Up())
	assert.Error(t, Runner{URL: "pgx5://localhost/db"}.Down(0))
}
