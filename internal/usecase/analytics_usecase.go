package usecase

import (
	"context"
	"time"

	"parish-match/internal/domain/analytics"
	"parish-match/internal/logger"
	"parish-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultDashboardDays = 30
	MaxDashboardDays     = 365
)

type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, days int) (analytics.Dashboard, error)
	UserStats(ctx context.Context, userID uuid.UUID) (analytics.ApplicationStats, error)
}

type Analytics struct {
	snapshots    repository.AnalyticsRepository
	applications repository.ApplicationRepository
	now          func() time.Time
	logger       *zap.Logger
}

func NewAnalyticsUsecase(snapshots repository.AnalyticsRepository, applications repository.ApplicationRepository, log *zap.Logger) *Analytics {
	return &Analytics{
		snapshots:    snapshots,
		applications: applications,
		now:          time.Now,
		logger:       logger.OrNop(log).Named("analytics"),
	}
}

// Dashboard aggregates the snapshots of the last days days. days <= 0 means
// the default window.
func (u *Analytics) Dashboard(ctx context.Context, days int) (analytics.Dashboard, error) {
	if days <= 0 {
		days = DefaultDashboardDays
	}
	if days > MaxDashboardDays {
		return analytics.Dashboard{}, ErrInvalidInput
	}

	since := u.now().UTC().AddDate(0, 0, -days)
	snaps, err := u.snapshots.ListSince(ctx, since)
	if err != nil {
		u.logger.Error("list snapshots failed", zap.Int("days", days), zap.Error(err))
		return analytics.Dashboard{}, ErrInternal
	}
	return analytics.Aggregate(snaps), nil
}

func (u *Analytics) UserStats(ctx context.Context, userID uuid.UUID) (analytics.ApplicationStats, error) {
	if userID == uuid.Nil {
		return analytics.ApplicationStats{}, ErrUnauthorized
	}
	apps, err := u.applications.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("list applications failed", zap.Stringer("user_id", userID), zap.Error(err))
		return analytics.ApplicationStats{}, ErrInternal
	}
	return analytics.CountApplications(apps), nil
}
