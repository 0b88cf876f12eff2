package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pressure/config"
	"github.com/katalvlaran/pressure/internal/logging"
	"github.com/katalvlaran/pressure/parse"
	"github.com/katalvlaran/pressure/valve"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	start      string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "pressure",
		Short: "Maximize pressure released from a valve network",
		Long: `pressure reads a valve scan (one "Valve AA has flow rate=0; tunnels lead to valves ..."
line per valve) and prints the largest pressure release achievable within the
time budget, either by one actor (single) or by two independent actors (dual).

The scan is read from the file given as argument, or from stdin.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&f.start, "start", "", "start valve (default from config: AA)")

	cmd.AddCommand(newSingleCmd(f))
	cmd.AddCommand(newDualCmd(f))

	return cmd
}

// setup loads the configuration, applies root flag overrides, and builds
// the logger.
func (f *rootFlags) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("start") {
		cfg.Start = f.start
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logging.NewWriter(cmd.ErrOrStderr(), level), nil
}

// readNetwork parses the scan named by args, or stdin when args is empty.
func readNetwork(cmd *cobra.Command, args []string) (*valve.Network, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer file.Close()
		r = file
	}

	return parse.Network(r)
}
