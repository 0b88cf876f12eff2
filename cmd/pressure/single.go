package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pressure"
	"github.com/katalvlaran/pressure/planner"
)

func newSingleCmd(f *rootFlags) *cobra.Command {
	var minutes int
	cmd := &cobra.Command{
		Use:   "single [input]",
		Short: "Best release for one actor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := f.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("minutes") {
				cfg.Single.Minutes = minutes
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			net, err := readNetwork(cmd, args)
			if err != nil {
				return err
			}

			best, err := pressure.BestSingleAgentRelease(net, cfg.Start, cfg.Single.Minutes, planner.WithLogger(log))
			if err != nil {
				return err
			}
			log.Info("single actor solved", "start", cfg.Start, "minutes", cfg.Single.Minutes, "release", best)
			fmt.Fprintln(cmd.OutOrStdout(), best)
			return nil
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", pressure.SingleAgentMinutes, "time budget in minutes")

	return cmd
}
