package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fibCalc/internal/domain"
)

func newCompareCmd() *cobra.Command {
	var plainMax int
	cmd := &cobra.Command{
		Use:   "compare <position>",
		Short: "Run both strategies for one position and report timings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			uc := newLocalUseCase(cmd, plainMax)
			cmp, err := uc.Compare(cmd.Context(), position)
			if err != nil {
				return err
			}
			if !cmp.Equal() {
				return fmt.Errorf("strategies disagree at %d: plain=%d memo=%d", position, cmp.PlainValue, cmp.MemoValue)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STRATEGY\tVALUE\tDURATION")
			fmt.Fprintf(w, "%s\t%d\t%s\n", domain.StrategyMemo, cmp.MemoValue, cmp.MemoDuration)
			fmt.Fprintf(w, "%s\t%d\t%s\n", domain.StrategyPlain, cmp.PlainValue, cmp.PlainDuration)
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "speedup: %.1fx\n", cmp.Speedup())
			return nil
		},
	}
	cmd.Flags().IntVar(&plainMax, "plain-max", defaultPlainMax, "largest position allowed for the plain strategy (0 disables the check)")
	return cmd
}
