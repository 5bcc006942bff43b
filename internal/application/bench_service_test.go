package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/fibdrv/internal/domain"
	"github.com/bnema/fibdrv/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func TestBenchServiceRunSavesReport(t *testing.T) {
	repo := mocks.NewMockBenchReportRepository(t)
	startedAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(startedAt)

	dev := NewDevice(nil, clock, nil)
	svc := NewBenchService(dev, repo, clock)

	var saved domain.BenchReport
	repo.EXPECT().Save(mockAnyContext(), mock.AnythingOfType("domain.BenchReport")).
		Run(func(_ context.Context, report domain.BenchReport) { saved = report }).
		Return(nil)

	var seen []int64
	report, err := svc.Run(context.Background(), BenchRange{From: 0, To: 10}, func(s domain.BenchSample) {
		seen = append(seen, s.Index)
	})
	require.NoError(t, err)

	require.Len(t, report.Samples, 11)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seen)
	assert.Equal(t, startedAt, report.StartedAt)
	assert.Equal(t, domain.DefaultMaxIndex, report.MaxIndex)
	assert.Equal(t, domain.DefaultCapacity, report.Capacity)
	assert.Equal(t, 2, report.Samples[10].Digits)
	assert.Equal(t, report, saved)
	assert.False(t, dev.InUse())
}

func TestBenchServiceRejectsBadRanges(t *testing.T) {
	svc := NewBenchService(newTestDevice(t), nil, nil)

	_, err := svc.Run(context.Background(), BenchRange{From: 5, To: 2}, nil)
	assert.ErrorContains(t, err, "invalid bench range")

	_, err = svc.Run(context.Background(), BenchRange{From: 0, To: domain.DefaultMaxIndex + 1}, nil)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestBenchServiceFailsWhenDeviceBusy(t *testing.T) {
	dev := newTestDevice(t)
	held, err := dev.Open(context.Background())
	require.NoError(t, err)
	defer held.Close()

	_, err = NewBenchService(dev, nil, nil).Run(context.Background(), BenchRange{To: 3}, nil)
	assert.ErrorIs(t, err, domain.ErrBusy)
}

func TestBenchServiceReleasesDeviceOnCancel(t *testing.T) {
	dev := newTestDevice(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := NewBenchService(dev, nil, nil).Run(ctx, BenchRange{To: 50}, func(s domain.BenchSample) {
		if s.Index == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, dev.InUse())
}

func TestBenchServiceSaveFailure(t *testing.T) {
	repo := mocks.NewMockBenchReportRepository(t)
	saveErr := errors.New("disk full")
	repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(saveErr)

	_, err := NewBenchService(newTestDevice(t), repo, nil).Run(context.Background(), BenchRange{To: 2}, nil)
	assert.ErrorIs(t, err, saveErr)
	assert.ErrorContains(t, err, "save bench report")
}

func TestBenchServiceLastReport(t *testing.T) {
	_, err := NewBenchService(newTestDevice(t), nil, nil).LastReport(context.Background())
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	repo := mocks.NewMockBenchReportRepository(t)
	want := domain.BenchReport{MaxIndex: 500}
	repo.EXPECT().Load(mockAnyContext()).Return(want, nil)

	got, err := NewBenchService(newTestDevice(t), repo, nil).LastReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
