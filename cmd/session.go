package cmd

import (
	"bufio"
	"fmt"

	"github.com/bnema/fibdrv/internal/application"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run a device script read from stdin",
		Long: `session reads one operation per line from stdin and prints one result per line:

  open
  seek <offset> [set|cur|end]
  read
  write [payload]
  close

Blank lines and lines starting with '#' are skipped. A failing operation
prints "error: ..." and the script carries on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			console := application.NewConsole(app.device)
			defer console.Close()

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for lineNo := 1; scanner.Scan(); lineNo++ {
				op, ok, err := application.ParseCommand(scanner.Text())
				if err != nil {
					if _, werr := fmt.Fprintf(out, "error: line %d: %v\n", lineNo, err); werr != nil {
						return werr
					}
					continue
				}
				if !ok {
					continue
				}

				result, err := console.Exec(cmd.Context(), op)
				if err != nil {
					result = "error: " + err.Error()
				}
				if _, err := fmt.Fprintln(out, result); err != nil {
					return err
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read session script: %w", err)
			}

			return nil
		},
	}
}
