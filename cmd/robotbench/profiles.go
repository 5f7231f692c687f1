package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"robotbench/internal/profile"
	"robotbench/internal/settings"
	"robotbench/internal/ui"
)

func newProfilesCmd() *cobra.Command {
	var workspace string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available run profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(workspace)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace path (marks the selected profile)")

	return cmd
}

func runProfiles(workspace string) error {
	active := ""
	if workspace != "" {
		store, err := settings.Open(ui.SettingsPath(workspace))
		if err != nil {
			return err
		}
		defer store.Close()
		active = store.Snapshot().Profile
	}

	for _, name := range profile.Names() {
		marker := ""
		if name == active {
			marker = " (selected)"
		}
		fmt.Fprintf(os.Stdout, "%s%s\n", name, marker)
	}
	return nil
}
