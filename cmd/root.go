// Package cmd provides the command-line interface for ticksim.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "ticksim",
	Short: "Ticksim CLI tool runs demo simulations built with the ticksim " +
		"scheduling toolkit.",
	Long: `Ticksim CLI tool runs demo simulations built with the ticksim ` +
		`scheduling toolkit. Currently, it supports running action-scheduler, ` +
		`timed-event, and combined demos.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
