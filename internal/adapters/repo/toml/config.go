package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/fibdrv/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".fibdrv"

	MaxIndexKey    = "engine.max_index"
	CapacityKey    = "engine.capacity"
	AllocBudgetKey = "engine.alloc_budget"
	BenchPathKey   = "bench.path"

	benchFileName = "bench.toml"
)

// ReadConfig loads ~/.fibdrv/config.toml into cfg on top of the engine
// defaults. A missing config file is not an error.
func ReadConfig(cfg *viper.Viper) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(MaxIndexKey, domain.DefaultMaxIndex)
	cfg.SetDefault(CapacityKey, domain.DefaultCapacity)
	cfg.SetDefault(AllocBudgetKey, domain.DefaultAllocBudget)
	cfg.SetDefault(BenchPathKey, filepath.Join(homeDir, configDir, benchFileName))

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// EngineOptions turns the engine section of cfg into generator options.
func EngineOptions(cfg *viper.Viper) ([]domain.GeneratorOption, error) {
	maxIndex := cfg.GetInt64(MaxIndexKey)
	if maxIndex < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", MaxIndexKey, maxIndex)
	}

	capacity := cfg.GetInt(CapacityKey)
	if capacity < 2 {
		return nil, fmt.Errorf("%s must be at least 2, got %d", CapacityKey, capacity)
	}
	if required := domain.RequiredCapacity(maxIndex); capacity < required {
		return nil, fmt.Errorf("%s %d cannot hold F(%d): need at least %d", CapacityKey, capacity, maxIndex, required)
	}

	return []domain.GeneratorOption{
		domain.WithMaxIndex(maxIndex),
		domain.WithCapacity(capacity),
		domain.WithAllocator(domain.BudgetAllocator(cfg.GetInt(AllocBudgetKey))),
	}, nil
}
