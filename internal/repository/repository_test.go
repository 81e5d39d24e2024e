package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"parish-match/internal/domain/analytics"
	"parish-match/internal/domain/job"
	"parish-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobRow(id uuid.UUID, parish string, skills []string) []any {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []any{
		id, "Web Developer", "desc", "Ministry of Technology", nil, parish,
		int64(50000), int64(70000), "JMD", "full-time", skills, nil, "active", int32(3), now, now,
	}
}

func TestJobRepository_GetByID_NotFound(t *testing.T) {
	repo := NewPostgresJobRepository(&fakeDB{})
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobRepository_GetByID_Scans(t *testing.T) {
	id := uuid.New()
	repo := NewPostgresJobRepository(&fakeDB{rows: [][]any{jobRow(id, "Kingston", []string{"React"})}})

	j, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, j.ID)
	assert.Equal(t, job.TypeFullTime, j.JobType)
	assert.Equal(t, job.StatusActive, j.Status)
	assert.Equal(t, 3, j.Applications)
	assert.Nil(t, j.EmployerID)
	assert.Equal(t, []string{"React"}, j.RequiredSkills)
}

func TestJobRepository_ListActiveByParish(t *testing.T) {
	db := &fakeDB{rows: [][]any{
		jobRow(uuid.New(), "Kingston", nil),
		jobRow(uuid.New(), "Kingston", []string{"SQL"}),
	}}
	repo := NewPostgresJobRepository(db)

	jobs, err := repo.ListActiveByParish(context.Background(), " Kingston ")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, []string{}, jobs[0].RequiredSkills)
	assert.Equal(t, []any{"Kingston", "active"}, db.lastArgs)
	assert.Contains(t, db.lastQuery, "ORDER BY created_at DESC")
}

func TestJobRepository_ListActiveByParish_EmptyParish(t *testing.T) {
	db := &fakeDB{}
	jobs, err := NewPostgresJobRepository(db).ListActiveByParish(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Empty(t, db.lastQuery)
}

func TestJobRepository_CountActiveByParish(t *testing.T) {
	db := &fakeDB{rows: [][]any{{"Kingston", int64(3)}, {"St. James", int64(1)}}}
	counts, err := NewPostgresJobRepository(db).CountActiveByParish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Kingston": 3, "St. James": 1}, counts)
}

func TestJobRepository_QueryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewPostgresJobRepository(&fakeDB{queryErr: boom}).ListActiveByParish(context.Background(), "Kingston")
	assert.ErrorIs(t, err, boom)
}

func TestUserRepository_GetByID(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	db := &fakeDB{rows: [][]any{{id, "a@b.c", "Ann", "", "Kingston", []string{"Go"}, "", "citizen", now, now}}}

	u, err := NewPostgresUserRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, user.RoleCitizen, u.Role)
	assert.Equal(t, []string{"Go"}, u.Skills)

	_, err = NewPostgresUserRepository(&fakeDB{}).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_ListByParish(t *testing.T) {
	now := time.Now().UTC()
	db := &fakeDB{rows: [][]any{
		{uuid.New(), "a@b.c", "Ann", "", "Kingston", nil, "", "citizen", now, now},
	}}
	users, err := NewPostgresUserRepository(db).ListByParish(context.Background(), "Kingston")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, []string{}, users[0].Skills)
}

func TestApplicationRepository_ListByUser(t *testing.T) {
	uid := uuid.New()
	now := time.Now().UTC()
	db := &fakeDB{rows: [][]any{
		{uuid.New(), uuid.New(), uid, "interview", now, now},
		{uuid.New(), uuid.New(), uid, "submitted", now, now},
	}}
	apps, err := NewPostgresApplicationRepository(db).ListByUser(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, analytics.ApplicationInterview, apps[0].Status)
	assert.Equal(t, []any{uid}, db.lastArgs)
}

func TestAnalyticsRepository_ListSince_DecodesJSON(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: [][]any{{
		uuid.New(), day, int32(5), int32(7), int32(100), int32(2), float64(1500),
		[]byte(`{"React":3}`), []byte(`{"Kingston":{"jobs":2,"citizens":40}}`),
	}}}

	snaps, err := NewPostgresAnalyticsRepository(db).ListSince(context.Background(), day.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, 5, snaps[0].ActiveJobs)
	assert.Equal(t, map[string]int{"React": 3}, snaps[0].SkillsDemand)
	assert.Equal(t, analytics.ParishStat{Jobs: 2, Citizens: 40}, snaps[0].ParishStats["Kingston"])
}

func TestAnalyticsRepository_ListSince_BadJSON(t *testing.T) {
	db := &fakeDB{rows: [][]any{{
		uuid.New(), time.Now(), int32(0), int32(0), int32(0), int32(0), float64(0),
		[]byte(`not json`), nil,
	}}}
	_, err := NewPostgresAnalyticsRepository(db).ListSince(context.Background(), time.Now())
	assert.Error(t, err)
}
