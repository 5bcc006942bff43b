package toml

import "fmt"

const currentBenchSchemaVersion = 1

type benchFileSchema struct {
	Version   int           `toml:"version"`
	StartedAt string        `toml:"started_at"`
	MaxIndex  int64         `toml:"max_index"`
	Capacity  int           `toml:"capacity"`
	Samples   []benchSample `toml:"samples"`
}

func (s *benchFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentBenchSchemaVersion
	}
}

func (s benchFileSchema) validateVersion() error {
	if s.Version > currentBenchSchemaVersion {
		return fmt.Errorf("unsupported bench schema version %d (current %d)", s.Version, currentBenchSchemaVersion)
	}

	return nil
}

type benchSample struct {
	Index     int64 `toml:"index"`
	ElapsedNs int64 `toml:"elapsed_ns"`
	Digits    int   `toml:"digits"`
}
