package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "fibonacci",
		Short:        "Fibonacci calculator: plain and memoized recursion",
		Long:         "Computes Fibonacci numbers with plain exponential recursion or a memoized strategy, serves them over HTTP and compares both.",
		SilenceUsage: true,
	}
	root.AddCommand(newVersionCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newComputeCmd())
	root.AddCommand(newCompareCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}
