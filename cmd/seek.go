package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/fibdrv/internal/domain"
	"github.com/spf13/cobra"
)

func newSeekCmd(app *app) *cobra.Command {
	var whence string

	cmd := &cobra.Command{
		Use:   "seek <offset>",
		Short: "Move the device cursor and print the clamped position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse seek offset %q: %w", args[0], err)
			}

			w, err := domain.ParseWhence(whence)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.device.SeekTo(offset, w))
			return err
		},
	}

	cmd.Flags().StringVar(&whence, "whence", "set", "Seek origin: set, cur or end")

	return cmd
}
