package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/fibdrv/internal/domain"
	"github.com/bnema/fibdrv/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	benchFileMode   = 0o600
	benchDirMode    = 0o700
	tempFilePattern = ".bench-*.toml.tmp"
)

// BenchRepository keeps the latest bench report in a single TOML file.
type BenchRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.BenchReportRepository = (*BenchRepository)(nil)

func NewBenchRepository(cfg *viper.Viper) (*BenchRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(BenchPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, configDir, benchFileName)
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &BenchRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *BenchRepository) Path() string {
	return r.path
}

func (r *BenchRepository) Save(ctx context.Context, report domain.BenchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toBenchSchema(report)
	file.applyDefaults()

	return writeTOMLFile(r.path, file)
}

func (r *BenchRepository) Load(ctx context.Context) (domain.BenchReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.BenchReport{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.BenchReport{}, domain.ErrReportNotFound
		}
		return domain.BenchReport{}, fmt.Errorf("read bench file: %w", err)
	}

	var file benchFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.BenchReport{}, fmt.Errorf("decode bench file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.BenchReport{}, err
	}
	file.applyDefaults()

	return fromBenchSchema(file), nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve bench path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func writeTOMLFile(path string, file any) error {
	if err := os.MkdirAll(filepath.Dir(path), benchDirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(benchFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	cleanup = false

	return nil
}

func toBenchSchema(report domain.BenchReport) benchFileSchema {
	samples := make([]benchSample, 0, len(report.Samples))
	for _, s := range report.Samples {
		samples = append(samples, benchSample{
			Index:     s.Index,
			ElapsedNs: s.Elapsed.Nanoseconds(),
			Digits:    s.Digits,
		})
	}

	return benchFileSchema{
		StartedAt: formatTime(report.StartedAt),
		MaxIndex:  report.MaxIndex,
		Capacity:  report.Capacity,
		Samples:   samples,
	}
}

func fromBenchSchema(file benchFileSchema) domain.BenchReport {
	samples := make([]domain.BenchSample, 0, len(file.Samples))
	for _, s := range file.Samples {
		samples = append(samples, domain.BenchSample{
			Index:   s.Index,
			Elapsed: time.Duration(s.ElapsedNs),
			Digits:  s.Digits,
		})
	}

	return domain.BenchReport{
		StartedAt: parseTime(file.StartedAt),
		MaxIndex:  file.MaxIndex,
		Capacity:  file.Capacity,
		Samples:   samples,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339Nano)
}
