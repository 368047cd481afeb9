// Command noderank runs the node-ranking estimator's driver loop, reading
// line-delimited JSON records from standard input and writing response
// lines to standard output (§6).
package main

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/noderank/driver"
	"github.com/katalvlaran/noderank/rank"
	"github.com/katalvlaran/noderank/regression"
)

var auditPath string

func newRootCmd() *cobra.Command {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cmd := &cobra.Command{
		Use:   "noderank [seed]",
		Short: "Incremental node-ranking estimator driver",
		Long: "noderank reads learn and estimate-request records, one JSON object per line, " +
			"from standard input, and writes one semicolon-separated response line per " +
			"estimate-request record to standard output.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fitter := regression.NewOLSFitter()
			if len(args) == 1 {
				seed, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				if seeder, ok := any(fitter).(regression.Seeder); ok {
					seeder.Seed(seed)
				}
			}

			engine := rank.New(fitter)

			return driver.Run(engine, cmd.InOrStdin(), cmd.OutOrStdout(), driver.Options{
				AuditPath: auditPath,
				Logger:    logger,
			})
		},
	}

	cmd.Flags().StringVar(&auditPath, "audit-path", "", "optional path to append raw input lines to")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
