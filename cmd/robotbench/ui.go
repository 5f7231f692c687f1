package main

import (
	"github.com/spf13/cobra"

	"robotbench/internal/ui"
)

type uiFlags struct {
	configPath string
	workspace  string
}

func newUICmd() *cobra.Command {
	flags := &uiFlags{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive workbench",
		Long: `Launch the interactive workbench for a workspace.

The workbench lists the available run profiles, opens the selected
profile's settings panel, and renders the assembled runner command for
review and copying.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path")
	cmd.Flags().StringVar(&flags.workspace, "workspace", "", "Workspace path (overrides config)")

	return cmd
}

func runTUI(flags *uiFlags) error {
	cfg, logger, err := loadConfigAndLogger(flags.configPath)
	if err != nil {
		return err
	}
	defer logger.Close()

	if flags.workspace != "" {
		cfg.Workspace = flags.workspace
	}
	return ui.RunTUI(cfg, logger)
}
