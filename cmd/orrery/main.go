package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	debugFlag   bool
	noAudioFlag bool
)

var rootCmd = &cobra.Command{
	Use:     "orrery",
	Short:   "Animated solar system in the terminal",
	Long:    "Orrery renders a schematic animated solar system — eight planets on\nelliptical orbits, their moons, a drifting starfield, and an asteroid\nbelt — as cell graphics in the terminal. Quit with q, Esc, or Ctrl+C.",
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The animation owns the terminal; cobra must not print over it
		cmd.SilenceUsage = true
		return run(debugFlag, noAudioFlag)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write diagnostics to logs/orrery.log")
	rootCmd.Flags().BoolVar(&noAudioFlag, "no-audio", false, "disable perihelion chimes")
	rootCmd.AddCommand(planetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
