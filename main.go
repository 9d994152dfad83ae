package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	start := time.Now()
	err := execute(newRootCmd(DefaultConfig()))
	slog.Info("run finished", "elapsed", time.Since(start))
	if err != nil {
		os.Exit(1)
	}
}

// execute logs any failure, cobra's own included, since the commands silence them.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		slog.Error("command failed", "err", err)
	}
	return err
}

func newRootCmd(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "deadreckon",
		Short:         "Plot normal samples and simulate a dead reckoning vehicle",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scatter(cfg); err != nil {
				return err
			}
			return vehicle(cfg, cmd.OutOrStdout())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "scatter",
		Short: "Render a scatter plot of normally distributed points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scatter(cfg)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "vehicle",
		Short: "Compare true and dead reckoned vehicle positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return vehicle(cfg, cmd.OutOrStdout())
		},
	})
	return root
}

func scatter(cfg Config) error {
	r := newPNGRenderer(cfg.PlotWidth, cfg.PlotHeight)
	if _, err := runNormalScatter(cfg, rand.NewSource(cfg.Seed), r); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	slog.Info("scatter rendered", "file", cfg.ScatterFile)
	return nil
}

func vehicle(cfg Config, out io.Writer) error {
	r := newPNGRenderer(cfg.PlotWidth, cfg.PlotHeight)
	res, err := runVehicleSimulation(cfg, rand.NewSource(cfg.Seed), r)
	if err != nil {
		return fmt.Errorf("vehicle simulation: %w", err)
	}
	slog.Info("vehicle plots rendered", "position", cfg.PositionFile, "speed", cfg.SpeedFile)
	fmt.Fprintln(out, res)
	return nil
}
