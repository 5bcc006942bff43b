package ports

import (
	"context"

	"github.com/bnema/fibdrv/internal/domain"
)

type BenchReportRepository interface {
	Load(ctx context.Context) (domain.BenchReport, error)
	Save(ctx context.Context, report domain.BenchReport) error
}
