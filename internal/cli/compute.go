package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fibCalc/internal/domain"
	"fibCalc/internal/pkg/logger"
	"fibCalc/internal/usecase/fibonacci"
)

const defaultPlainMax = 35

func newComputeCmd() *cobra.Command {
	var (
		strategy string
		plainMax int
	)
	cmd := &cobra.Command{
		Use:   "compute <position>",
		Short: "Compute F(position) with the chosen strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			uc := newLocalUseCase(cmd, plainMax)
			calc, err := uc.Calculate(cmd.Context(), position, strategy)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "F(%d) = %d\n", calc.Position, calc.Value)
			fmt.Fprintf(cmd.ErrOrStderr(), "strategy: %s, took %s\n", calc.Strategy, calc.Duration)
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", domain.StrategyMemo, "plain or memo")
	cmd.Flags().IntVar(&plainMax, "plain-max", defaultPlainMax, "largest position allowed for the plain strategy (0 disables the check)")
	return cmd
}

// parsePosition разбирает позицию из аргумента. Знак не проверяется: отрицательные отклоняет валидатор.
func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: position %q is not an integer", domain.ErrInvalidArgument, arg)
	}
	return position, nil
}

// newLocalUseCase собирает юзкейс без хранилища и брокера, логи только об ошибках в stderr.
func newLocalUseCase(cmd *cobra.Command, plainMax int) *fibonacci.UseCase {
	log := logger.NewWithWriter(cmd.ErrOrStderr(), "error")
	return fibonacci.New(nil, nil, nil, fibonacci.Limits{PlainMaxPosition: plainMax}, log)
}
