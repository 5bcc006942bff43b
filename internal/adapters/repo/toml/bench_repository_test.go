package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/fibdrv/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reports", "bench.toml")
	cfg := viper.New()
	cfg.Set(BenchPathKey, path)

	repo, err := NewBenchRepository(cfg)
	require.NoError(t, err)
	assert.Equal(t, path, repo.Path())

	report := domain.BenchReport{
		StartedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		MaxIndex:  500,
		Capacity:  128,
		Samples: []domain.BenchSample{
			{Index: 0, Elapsed: 120 * time.Nanosecond, Digits: 1},
			{Index: 1, Elapsed: 95 * time.Nanosecond, Digits: 1},
			{Index: 2, Elapsed: 210 * time.Nanosecond, Digits: 1},
		},
	}

	require.NoError(t, repo.Save(context.Background(), report))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(benchFileMode), info.Mode().Perm())
}

func TestBenchRepositorySaveReplacesPreviousReport(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(BenchPathKey, filepath.Join(t.TempDir(), "bench.toml"))
	repo, err := NewBenchRepository(cfg)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.BenchReport{MaxIndex: 10, Samples: []domain.BenchSample{{Index: 1}}}))
	require.NoError(t, repo.Save(context.Background(), domain.BenchReport{MaxIndex: 20, Samples: []domain.BenchSample{{Index: 2}, {Index: 3}}}))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.MaxIndex)
	assert.Len(t, got.Samples, 2)
}

func TestBenchRepositoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(BenchPathKey, filepath.Join(t.TempDir(), "missing.toml"))
	repo, err := NewBenchRepository(cfg)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestBenchRepositoryRejectsFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	cfg := viper.New()
	cfg.Set(BenchPathKey, path)
	repo, err := NewBenchRepository(cfg)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	assert.ErrorContains(t, err, "unsupported bench schema version 99")
}

func TestBenchRepositoryHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(BenchPathKey, filepath.Join(t.TempDir(), "bench.toml"))
	repo, err := NewBenchRepository(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, domain.BenchReport{}), context.Canceled)
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadConfigDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := viper.New()
	require.NoError(t, ReadConfig(cfg))

	assert.Equal(t, domain.DefaultMaxIndex, cfg.GetInt64(MaxIndexKey))
	assert.Equal(t, domain.DefaultCapacity, cfg.GetInt(CapacityKey))
	assert.Equal(t, filepath.Join(home, ".fibdrv", "bench.toml"), cfg.GetString(BenchPathKey))
}

func TestReadConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".fibdrv"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".fibdrv", "config.toml"), []byte(`
[engine]
max_index = 93
capacity = 24
alloc_budget = 4096

[bench]
path = "/tmp/fib-bench.toml"
`), 0o600))

	cfg := viper.New()
	require.NoError(t, ReadConfig(cfg))

	assert.Equal(t, int64(93), cfg.GetInt64(MaxIndexKey))
	assert.Equal(t, "/tmp/fib-bench.toml", cfg.GetString(BenchPathKey))

	opts, err := EngineOptions(cfg)
	require.NoError(t, err)

	gen := domain.NewGenerator(opts...)
	assert.Equal(t, int64(93), gen.MaxIndex())
	assert.Equal(t, 24, gen.Capacity())

	value, err := gen.Generate(93)
	require.NoError(t, err)
	assert.Equal(t, "12200160415121876738", value.String())
}

func TestReadConfigRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".fibdrv"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".fibdrv", "config.toml"), []byte("engine = [\n"), 0o600))

	err := ReadConfig(viper.New())
	assert.ErrorContains(t, err, "read config file")
}

func TestEngineOptionsValidation(t *testing.T) {
	cfg := viper.New()
	cfg.Set(MaxIndexKey, 0)
	cfg.Set(CapacityKey, 128)
	_, err := EngineOptions(cfg)
	assert.ErrorContains(t, err, "engine.max_index must be at least 1")

	cfg.Set(MaxIndexKey, 10)
	cfg.Set(CapacityKey, 1)
	_, err = EngineOptions(cfg)
	assert.ErrorContains(t, err, "engine.capacity must be at least 2")

	cfg.Set(MaxIndexKey, 1000)
	cfg.Set(CapacityKey, domain.DefaultCapacity)
	_, err = EngineOptions(cfg)
	assert.ErrorContains(t, err, "engine.capacity 128 cannot hold F(1000): need at least 210")

	cfg.Set(CapacityKey, 210)
	opts, err := EngineOptions(cfg)
	require.NoError(t, err)

	value, err := domain.NewGenerator(opts...).Generate(1000)
	require.NoError(t, err)
	assert.Equal(t, 209, value.Len())
}
