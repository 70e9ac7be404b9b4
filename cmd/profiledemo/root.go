package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profiledemo",
	Short: "Interactive demo of a collapsing profile header",
	Long: `profiledemo draws a profile screen in the terminal. Scroll the content to
collapse the header, pull down past the top to refresh, and switch panes with
the segmented control.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "YAML transition configuration")
	rootCmd.PersistentFlags().String("debug-log", "", "Append debug output to this file")
}
