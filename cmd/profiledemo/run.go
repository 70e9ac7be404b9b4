package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-profile/internal/debug"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		s, err := loadSettings(cmd, wd)
		if err != nil {
			return err
		}

		if s.DebugLog != "" {
			if err := debug.Init(s.DebugLog); err != nil {
				return err
			}
			defer debug.Close()
		}

		cfg, err := s.profileConfig()
		if err != nil {
			return err
		}
		m, err := newModel(s, cfg)
		if err != nil {
			return fmt.Errorf("build profile: %w", err)
		}

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Int("panes", 3, "Number of content panes")
	runCmd.Flags().Int("rows", 40, "Rows of content per pane")
	runCmd.Flags().Duration("refresh-delay", 1200*time.Millisecond, "How long a pull-to-refresh takes")
	rootCmd.AddCommand(runCmd)
}
