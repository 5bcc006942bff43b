package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/fibdrv/internal/application"
	"github.com/bnema/fibdrv/internal/domain"
	"github.com/spf13/cobra"
)

type benchSampleOutput struct {
	Index     int64 `json:"index"`
	ElapsedNs int64 `json:"elapsed_ns"`
	Digits    int   `json:"digits"`
}

type benchOutput struct {
	MaxIndex int64               `json:"max_index"`
	Capacity int                 `json:"capacity"`
	TotalNs  int64               `json:"total_ns"`
	MeanNs   int64               `json:"mean_ns"`
	Samples  []benchSampleOutput `json:"samples"`
}

func newBenchCmd(app *app) *cobra.Command {
	var from int64
	var to int64
	var out string
	var last bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every index in a range and save the report",
		Long:  "bench opens the device once and, for each k in [from, to], seeks to k, reads F(k) and writes to collect the compute time. The report is saved as TOML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.benchService(out)
			if err != nil {
				return err
			}

			if last {
				report, err := svc.LastReport(cmd.Context())
				if err != nil {
					return fmt.Errorf("load last bench report: %w", err)
				}
				return writeBenchOutput(cmd, app, report, asJSON)
			}

			if !cmd.Flags().Changed("to") {
				to = app.device.MaxIndex()
			}
			r := application.BenchRange{From: from, To: to}

			var report domain.BenchReport
			run := func(ctx context.Context, progress func(int64)) error {
				var runErr error
				report, runErr = svc.Run(ctx, r, func(sample domain.BenchSample) {
					progress(sample.Index)
				})
				return runErr
			}

			if asJSON {
				err = run(cmd.Context(), func(int64) {})
			} else {
				err = runBenchSpinner(cmd.Context(), cmd.ErrOrStderr(), run)
			}
			if err != nil {
				return err
			}

			return writeBenchOutput(cmd, app, report, asJSON)
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "First index")
	cmd.Flags().Int64Var(&to, "to", domain.DefaultMaxIndex, "Last index (default: configured max index)")
	cmd.Flags().StringVar(&out, "out", "", "Report path (default: bench.path from config)")
	cmd.Flags().BoolVar(&last, "last", false, "Show the last saved report instead of running")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeBenchOutput(cmd *cobra.Command, app *app, report domain.BenchReport, asJSON bool) error {
	if asJSON {
		payload := benchOutput{
			MaxIndex: report.MaxIndex,
			Capacity: report.Capacity,
			TotalNs:  report.Total().Nanoseconds(),
			MeanNs:   report.Mean().Nanoseconds(),
			Samples:  make([]benchSampleOutput, 0, len(report.Samples)),
		}
		for _, s := range report.Samples {
			payload.Samples = append(payload.Samples, benchSampleOutput{
				Index:     s.Index,
				ElapsedNs: s.Elapsed.Nanoseconds(),
				Digits:    s.Digits,
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	rendered, err := app.benchRenderer(report)
	if err != nil {
		return fmt.Errorf("render bench report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
