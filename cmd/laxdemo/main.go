// Command laxdemo prints two example computations under the selected
// division semantics.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/laxnum/lax"
)

var strict bool

var rootCmd = &cobra.Command{
	Use:   "laxdemo",
	Short: "Demonstrates identity-preserving division by zero",
	Long: `laxdemo evaluates 5 / 0 and 10 / 2 as lax numbers.

Under the default identity mode, dividing by zero returns the dividend
unchanged, so 5 / 0 evaluates to 5. With --strict, the same division
fails with an error instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail on division by zero instead of returning the dividend")
}

func run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mode := lax.IdentityMode()
	if strict {
		mode = lax.StrictMode()
	}
	logger.Info().Stringer("mode", mode).Msg("evaluating")

	x := lax.NewWithMode(5, mode)
	q, err := x.Div(0)
	if err != nil {
		logger.Error().Err(err).Msg("5 / 0")
		return err
	}
	logger.Info().Float64("result", q.Float64()).Msg("5 / 0")

	y := lax.NewWithMode(10, mode)
	q, err = y.Div(2)
	if err != nil {
		logger.Error().Err(err).Msg("10 / 2")
		return err
	}
	logger.Info().Float64("result", q.Float64()).Msg("10 / 2")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
