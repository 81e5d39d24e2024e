package usecase

import (
	"context"

	"parish-match/internal/domain/parish"
	"parish-match/internal/logger"
	"parish-match/internal/repository"

	"go.uber.org/zap"
)

type ParishSummary struct {
	parish.Parish
	ActiveJobs   int
	DensityColor string
}

type ParishUsecase interface {
	List(ctx context.Context) ([]ParishSummary, error)
}

type Parishes struct {
	jobs   repository.JobRepository
	logger *zap.Logger
}

func NewParishUsecase(jobs repository.JobRepository, log *zap.Logger) *Parishes {
	return &Parishes{jobs: jobs, logger: logger.OrNop(log).Named("parish")}
}

// List returns every parish with its open job count. A failed count still
// lists the parishes, with zero jobs.
func (u *Parishes) List(ctx context.Context) ([]ParishSummary, error) {
	counts, err := u.jobs.CountActiveByParish(ctx)
	if err != nil {
		u.logger.Warn("count jobs by parish failed", zap.Error(err))
		counts = map[string]int{}
	}

	all := parish.All()
	out := make([]ParishSummary, 0, len(all))
	for _, p := range all {
		n := counts[p.Name]
		out = append(out, ParishSummary{
			Parish:       p,
			ActiveJobs:   n,
			DensityColor: parish.DensityColor(n),
		})
	}
	return out, nil
}
