package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/fibdrv/internal/domain"
	"github.com/bnema/fibdrv/internal/ports"
)

// BenchService sweeps a range of indexes through one session and records the
// duration the device reports for each read.
type BenchService struct {
	dev     *Device
	reports ports.BenchReportRepository
	clock   ports.Clock
}

func NewBenchService(dev *Device, reports ports.BenchReportRepository, clock ports.Clock) *BenchService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &BenchService{dev: dev, reports: reports, clock: clock}
}

type BenchRange struct {
	From int64
	To   int64
}

func (s *BenchService) Run(ctx context.Context, r BenchRange, progress func(domain.BenchSample)) (domain.BenchReport, error) {
	maxIndex := s.dev.MaxIndex()
	if r.From < 0 || r.To < r.From {
		return domain.BenchReport{}, fmt.Errorf("invalid bench range [%d, %d]", r.From, r.To)
	}
	if r.To > maxIndex {
		return domain.BenchReport{}, fmt.Errorf("%w: bench range ends at %d > %d", domain.ErrIndexOutOfRange, r.To, maxIndex)
	}

	session, err := s.dev.Open(ctx)
	if err != nil {
		return domain.BenchReport{}, fmt.Errorf("open device: %w", err)
	}

	report := domain.BenchReport{
		StartedAt: s.clock.Now(),
		MaxIndex:  maxIndex,
		Capacity:  s.dev.gen.Capacity(),
		Samples:   make([]domain.BenchSample, 0, r.To-r.From+1),
	}

	runErr := s.sweep(ctx, session, r, &report, progress)
	if closeErr := session.Close(); closeErr != nil {
		runErr = errors.Join(runErr, fmt.Errorf("close device: %w", closeErr))
	}
	if runErr != nil {
		return domain.BenchReport{}, runErr
	}

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			return domain.BenchReport{}, fmt.Errorf("save bench report: %w", err)
		}
	}

	return report, nil
}

func (s *BenchService) sweep(ctx context.Context, session *Session, r BenchRange, report *domain.BenchReport, progress func(domain.BenchSample)) error {
	for k := r.From; k <= r.To; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		session.SeekTo(k, domain.SeekSet)
		value, err := session.Read(ctx)
		if err != nil {
			return fmt.Errorf("read F(%d): %w", k, err)
		}
		ns, err := session.Write(nil)
		if err != nil {
			return fmt.Errorf("report elapsed time for F(%d): %w", k, err)
		}

		sample := domain.BenchSample{Index: value.Index, Elapsed: time.Duration(ns), Digits: value.Len()}
		report.Samples = append(report.Samples, sample)
		if progress != nil {
			progress(sample)
		}
	}

	return nil
}

// LastReport returns the most recently saved report.
func (s *BenchService) LastReport(ctx context.Context) (domain.BenchReport, error) {
	if s.reports == nil {
		return domain.BenchReport{}, domain.ErrReportNotFound
	}

	return s.reports.Load(ctx)
}
