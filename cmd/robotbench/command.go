package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"robotbench/internal/errors"
	"robotbench/internal/profile"
	"robotbench/internal/settings"
	"robotbench/internal/ui"
)

type commandFlags struct {
	configPath  string
	workspace   string
	profileName string
	review      bool
}

func newCommandCmd() *cobra.Command {
	flags := &commandFlags{}
	cmd := &cobra.Command{
		Use:   "command",
		Short: "Assemble and print the runner command line",
		Long: `Assemble the runner command line from the selected profile and the
workspace's saved tag filters, then print it. The command is never executed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path")
	cmd.Flags().StringVar(&flags.workspace, "workspace", "", "Workspace path (overrides config)")
	cmd.Flags().StringVar(&flags.profileName, "profile", "", "Profile name (overrides the saved selection)")
	cmd.Flags().BoolVar(&flags.review, "review", false, "Print the full review screen instead of the bare command")

	return cmd
}

func runCommand(flags *commandFlags) error {
	cfg, logger, err := loadConfigAndLogger(flags.configPath)
	if err != nil {
		return err
	}
	defer logger.Close()

	if flags.workspace != "" {
		cfg.Workspace = flags.workspace
	}
	ws, err := ui.LoadWorkspace(cfg.Workspace)
	if err != nil {
		return err
	}

	store, err := settings.Open(ui.SettingsPath(ws.Root))
	if err != nil {
		return err
	}
	defer store.Close()

	name := store.Snapshot().Profile
	if cfg.DefaultProfile != "" {
		name = cfg.DefaultProfile
	}
	if flags.profileName != "" {
		name = flags.profileName
	}
	p, err := profile.New(name, store)
	if err != nil {
		return errors.WrapProfileError(err, name)
	}

	suites, err := ui.ListSuites(ws.Root, cfg.SuiteExtensions)
	if err != nil {
		return err
	}
	command := ui.BuildCommand(p, suites)
	logger.LogInvocation(p.Name(), command.Args)

	if flags.review {
		fmt.Fprintln(os.Stdout, ui.RenderReviewScreen(p, command, store.Snapshot()))
		return nil
	}
	fmt.Fprintln(os.Stdout, ui.FormatCommand(command.Args))
	return nil
}
