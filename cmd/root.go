package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fib",
		Short:         "fib: drive the Fibonacci engine",
		Long:          "fib computes exact Fibonacci numbers through an exclusive device session: open, seek to an index, read the value, write to collect the measured compute time, close.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newReadCmd(app),
		newSeekCmd(app),
		newSessionCmd(app),
		newBenchCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
