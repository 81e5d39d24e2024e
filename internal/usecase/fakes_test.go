package usecase

import (
	"context"
	"time"

	"parish-match/internal/domain/analytics"
	"parish-match/internal/domain/job"
	"parish-match/internal/domain/user"
	"parish-match/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byID     map[uuid.UUID]user.User
	byParish map[string][]user.User
	getErr   error
	listErr  error
}

func (f fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if f.getErr != nil {
		return user.User{}, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f fakeUserRepo) ListByParish(_ context.Context, parish string) ([]user.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byParish[parish], nil
}

type fakeJobRepo struct {
	byID     map[uuid.UUID]job.Job
	byParish map[string][]job.Job
	counts   map[string]int
	err      error

	listCalls int
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	j, ok := f.byID[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) ListActiveByParish(_ context.Context, parish string) ([]job.Job, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byParish[parish], nil
}

func (f *fakeJobRepo) CountActiveByParish(context.Context) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

type fakeSnapshotRepo struct {
	snaps []analytics.Snapshot
	err   error
	since time.Time
}

func (f *fakeSnapshotRepo) ListSince(_ context.Context, since time.Time) ([]analytics.Snapshot, error) {
	f.since = since
	return f.snaps, f.err
}

type fakeApplicationRepo struct {
	apps []analytics.Application
	err  error
}

func (f fakeApplicationRepo) ListByUser(context.Context, uuid.UUID) ([]analytics.Application, error) {
	return f.apps, f.err
}
