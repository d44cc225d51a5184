// Package main provides the xyzcenter command. It reads a multi-frame
// XYZ trajectory, recenters every frame about its geometric centroid
// and writes the shifted copy, optionally plotting the per-frame RMSD
// against the first frame.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rvallejos/goxyz/cfg"
	"github.com/rvallejos/goxyz/trajplot"
	"github.com/rvallejos/goxyz/xyz"
)

var (
	cfgFile  string
	plotFile string
	title    string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "xyzcenter [input.xyz] [output.xyz]",
	Short: "Recenter an XYZ trajectory on its per-frame centroid",
	Long: `xyzcenter reads a multi-frame XYZ trajectory, subtracts each frame's
geometric centroid from its coordinates, and writes the shifted copy with
unique per-atom labels (C0, H0, H1, ...). Input and output may carry a
.gz, .zst or .flate suffix for transparent compression.

The run can also be described in a YAML file passed with --config.`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML run description instead of positional paths")
	rootCmd.PersistentFlags().StringVar(&plotFile, "plot", "", "Write a per-frame RMSD plot to this image file")
	rootCmd.PersistentFlags().StringVar(&title, "title", "", "Plot title [default: the input file name]")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (debug|info|warn|error)")
}

func run(_ *cobra.Command, args []string) error {
	if lvl, err := log.ParseLevel(logLevel); err == nil {
		log.SetLevel(lvl)
	}
	var in, out string
	switch {
	case cfgFile != "":
		c, err := cfg.Read(cfgFile)
		if err != nil {
			return err
		}
		in, out = c.Traj, c.Out
		if plotFile == "" {
			plotFile = c.Plot
		}
		if title == "" {
			title = c.Title
		}
	case len(args) == 2:
		in, out = args[0], args[1]
	default:
		return fmt.Errorf("need an input and an output path, or --config")
	}
	traj, err := xyz.New(in)
	if err != nil {
		return err
	}
	log.Info("trajectory read", "traj", traj.String())
	if err := traj.WriteFile(out); err != nil {
		return err
	}
	log.Info("shifted trajectory written", "file", out)
	if plotFile != "" {
		if title == "" {
			title = in
		}
		if err := trajplot.RMSDs(traj, title, plotFile); err != nil {
			return err
		}
		log.Info("RMSD plot written", "file", plotFile)
	}
	return nil
}
