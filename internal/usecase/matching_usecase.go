package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parish-match/internal/domain/job"
	"parish-match/internal/domain/matching"
	"parish-match/internal/domain/user"
	"parish-match/internal/logger"
	"parish-match/internal/metrics"
	"parish-match/internal/repository"
	"parish-match/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultRecommendedLimit = 10
	MaxRecommendedLimit     = 50
)

type JobMatch = matching.Match[job.Job]
type UserMatch = matching.Match[user.User]

type MatchingUsecase interface {
	MatchedJobs(ctx context.Context, userID uuid.UUID) ([]JobMatch, error)
	RecommendedJobs(ctx context.Context, userID uuid.UUID, limit int) ([]JobMatch, error)
	MatchedUsers(ctx context.Context, jobID uuid.UUID) ([]UserMatch, error)
}

type Matching struct {
	users        user.Repository
	jobs         repository.JobRepository
	cache        storage.KV
	defaultLimit int
	logger       *zap.Logger
}

// NewMatchingUsecase wires the ranker to its repositories. cache may be nil,
// in which case recommendations are computed on every call.
func NewMatchingUsecase(users user.Repository, jobs repository.JobRepository, cache storage.KV, defaultLimit int, log *zap.Logger) *Matching {
	if defaultLimit <= 0 || defaultLimit > MaxRecommendedLimit {
		defaultLimit = DefaultRecommendedLimit
	}
	return &Matching{
		users:        users,
		jobs:         jobs,
		cache:        cache,
		defaultLimit: defaultLimit,
		logger:       logger.OrNop(log).Named("matching"),
	}
}

func (u *Matching) MatchedJobs(ctx context.Context, userID uuid.UUID) ([]JobMatch, error) {
	out, _, err := u.matchedJobs(ctx, userID, 0)
	return out, err
}

func (u *Matching) RecommendedJobs(ctx context.Context, userID uuid.UUID, limit int) ([]JobMatch, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = u.defaultLimit
	}
	if limit > MaxRecommendedLimit {
		limit = MaxRecommendedLimit
	}

	key := RecommendedCacheKey(userID, limit)
	if cached, ok := u.cachedRecommendations(ctx, key); ok {
		return cached, nil
	}

	out, complete, err := u.matchedJobs(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if complete {
		u.storeRecommendations(ctx, key, out)
	}
	return out, nil
}

// matchedJobs reports complete=false when the candidate fetch failed and the
// empty result should not be cached.
func (u *Matching) matchedJobs(ctx context.Context, userID uuid.UUID, limit int) ([]JobMatch, bool, error) {
	if userID == uuid.Nil {
		return nil, false, ErrUnauthorized
	}

	requester, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, false, ErrUserNotFound
		}
		u.logger.Error("load user failed", zap.Stringer("user_id", userID), zap.Error(err))
		return nil, false, ErrInternal
	}

	candidates, err := u.jobs.ListActiveByParish(ctx, requester.Parish)
	if err != nil {
		u.logger.Error("list jobs failed",
			zap.Stringer("user_id", userID),
			zap.String("parish", requester.Parish),
			zap.Error(err),
		)
		return []JobMatch{}, false, nil
	}

	view := "jobs"
	if limit > 0 {
		view = "recommended"
	}
	started := time.Now()
	out := matching.Rank(requester.MatchProfile(), candidates, matching.Options{
		Direction: matching.CandidateRequires,
		Limit:     limit,
	})
	metrics.RankingDuration.WithLabelValues(view).Observe(time.Since(started).Seconds())
	metrics.CandidatesScored.WithLabelValues(view).Add(float64(len(candidates)))

	return out, true, nil
}

func (u *Matching) MatchedUsers(ctx context.Context, jobID uuid.UUID) ([]UserMatch, error) {
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		u.logger.Error("load job failed", zap.Stringer("job_id", jobID), zap.Error(err))
		return nil, ErrInternal
	}

	candidates, err := u.users.ListByParish(ctx, j.Parish)
	if err != nil {
		u.logger.Error("list users failed",
			zap.Stringer("job_id", jobID),
			zap.String("parish", j.Parish),
			zap.Error(err),
		)
		return []UserMatch{}, nil
	}

	started := time.Now()
	out := matching.Rank(j.MatchProfile(), candidates, matching.Options{
		Direction: matching.RequesterRequires,
		MinScore:  1,
	})
	metrics.RankingDuration.WithLabelValues("users").Observe(time.Since(started).Seconds())
	metrics.CandidatesScored.WithLabelValues("users").Add(float64(len(candidates)))

	return out, nil
}

func RecommendedCacheKey(userID uuid.UUID, limit int) string {
	return fmt.Sprintf("matching:recommended:%s:%d", userID, limit)
}

func (u *Matching) cachedRecommendations(ctx context.Context, key string) ([]JobMatch, bool) {
	if u.cache == nil {
		return nil, false
	}
	raw, ok, err := u.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		u.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}

	var out []JobMatch
	if err := json.Unmarshal(raw, &out); err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		u.logger.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		_ = u.cache.Delete(ctx, key)
		return nil, false
	}
	metrics.CacheRequests.WithLabelValues("hit").Inc()
	return out, true
}

func (u *Matching) storeRecommendations(ctx context.Context, key string, items []JobMatch) {
	if u.cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		u.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := u.cache.Put(ctx, key, raw); err != nil {
		u.logger.Warn("cache put failed", zap.String("key", key), zap.Error(err))
	}
}
