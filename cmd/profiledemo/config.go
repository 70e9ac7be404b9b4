package main

import (
	"os"

	"github.com/spf13/cobra"

	profile "github.com/grindlemire/go-profile"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved transition configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		s, err := loadSettings(cmd, wd)
		if err != nil {
			return err
		}
		cfg, err := s.profileConfig()
		if err != nil {
			return err
		}
		curve, _ := cmd.Flags().GetString("curve")
		return profile.EncodeConfig(cmd.OutOrStdout(), cfg, curve)
	},
}

func init() {
	configCmd.Flags().String("curve", "", "Curve name to include in the output")
	rootCmd.AddCommand(configCmd)
}
