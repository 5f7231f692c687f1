package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"robotbench/internal/config"
	"robotbench/internal/ui"
)

type initFlags struct {
	name       string
	withConfig bool
}

func newInitCmd() *cobra.Command {
	flags := &initFlags{}
	cmd := &cobra.Command{
		Use:   "init <workspace-path>",
		Short: "Create a new workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Workspace name (defaults to the directory name)")
	cmd.Flags().BoolVar(&flags.withConfig, "with-config", false, "Also write a default robotbench.yaml next to the workspace")

	return cmd
}

func runInit(path string, flags *initFlags) error {
	ws, err := ui.CreateWorkspace(path, flags.name)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Workspace created: %s\n", ws.Root)

	if flags.withConfig {
		configPath := filepath.Join(filepath.Dir(ws.Root), config.DefaultConfigFile)
		if err := config.WriteDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Config written: %s\n", configPath)
	}
	return nil
}
