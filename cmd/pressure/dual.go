package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pressure"
	"github.com/katalvlaran/pressure/dual"
)

func newDualCmd(f *rootFlags) *cobra.Command {
	var (
		minutes int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "dual [input]",
		Short: "Best combined release for two independent actors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := f.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("minutes") {
				cfg.Dual.Minutes = minutes
			}
			if cmd.Flags().Changed("workers") {
				cfg.Dual.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			net, err := readNetwork(cmd, args)
			if err != nil {
				return err
			}

			best, err := pressure.BestDualAgentRelease(cmd.Context(), net, cfg.Start, cfg.Dual.Minutes,
				dual.WithWorkers(cfg.Dual.Workers),
				dual.WithLogger(log),
			)
			if err != nil {
				return err
			}
			log.Info("dual actors solved", "start", cfg.Start, "minutes", cfg.Dual.Minutes, "release", best)
			fmt.Fprintln(cmd.OutOrStdout(), best)
			return nil
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", pressure.DualAgentMinutes, "time budget per actor in minutes")
	cmd.Flags().IntVar(&workers, "workers", 0, "partition workers (0 = GOMAXPROCS)")

	return cmd
}
