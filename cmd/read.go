package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	readingadapter "github.com/bnema/fibdrv/internal/adapters/render/reading"
	"github.com/bnema/fibdrv/internal/application"
	"github.com/spf13/cobra"
)

type readingOutput struct {
	Index     int64  `json:"index"`
	Digits    string `json:"digits"`
	Length    int    `json:"length"`
	ElapsedNs int64  `json:"elapsed_ns"`
}

func newReadCmd(app *app) *cobra.Command {
	var asJSON bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "read <k>",
		Short: "Compute F(k) in one open/seek/read/write/close round",
		Long:  "read opens the device, seeks to k (clamped to [0, max index]), reads the value, then writes to collect the compute time in nanoseconds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse index %q: %w", args[0], err)
			}

			reading, err := application.ReadIndex(cmd.Context(), app.device, k)
			if err != nil {
				return err
			}

			return writeReadingOutput(cmd, app, reading, asJSON, plain)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the digits only")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	return cmd
}

func writeReadingOutput(cmd *cobra.Command, app *app, reading application.Reading, asJSON, plain bool) error {
	switch {
	case asJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(readingOutput{
			Index:     reading.Index,
			Digits:    reading.Digits,
			Length:    reading.Length,
			ElapsedNs: reading.Elapsed.Nanoseconds(),
		})
	case plain:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), reading.Digits)
		return err
	}

	rendered, err := app.readingRenderer([]application.Reading{reading}, readingadapter.RenderOptions{
		MaxIndex: app.device.MaxIndex(),
	})
	if err != nil {
		return fmt.Errorf("render reading: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
