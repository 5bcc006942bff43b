package cmd

import (
	"fmt"
	"log"
	"os"

	readingadapter "github.com/bnema/fibdrv/internal/adapters/render/reading"
	tomlrepo "github.com/bnema/fibdrv/internal/adapters/repo/toml"
	"github.com/bnema/fibdrv/internal/application"
	"github.com/bnema/fibdrv/internal/domain"
	"github.com/bnema/fibdrv/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	device          *application.Device
	reports         *tomlrepo.BenchRepository
	clock           ports.Clock
	logger          *log.Logger
	readingRenderer func([]application.Reading, readingadapter.RenderOptions) (string, error)
	benchRenderer   func(domain.BenchReport) (string, error)
}

func wireApp() (*app, error) {
	cfg := viper.New()
	if err := tomlrepo.ReadConfig(cfg); err != nil {
		return nil, fmt.Errorf("load engine config: %w", err)
	}

	opts, err := tomlrepo.EngineOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire engine: %w", err)
	}

	reports, err := tomlrepo.NewBenchRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire bench report repository: %w", err)
	}

	logger := log.New(os.Stderr, "fibdrv: ", log.LstdFlags)
	clock := ports.SystemClock{}

	return &app{
		device:          application.NewDevice(domain.NewGenerator(opts...), clock, logger),
		reports:         reports,
		clock:           clock,
		logger:          logger,
		readingRenderer: readingadapter.Render,
		benchRenderer:   readingadapter.RenderBench,
	}, nil
}

// benchService builds a bench service that saves to out, or to the configured
// report path when out is empty.
func (a *app) benchService(out string) (*application.BenchService, error) {
	reports := a.reports
	if out != "" {
		cfg := viper.New()
		cfg.Set(tomlrepo.BenchPathKey, out)

		var err error
		reports, err = tomlrepo.NewBenchRepository(cfg)
		if err != nil {
			return nil, fmt.Errorf("wire bench report repository: %w", err)
		}
	}

	return application.NewBenchService(a.device, reports, a.clock), nil
}
