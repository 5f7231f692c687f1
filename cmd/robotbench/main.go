package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"robotbench/internal/config"
	"robotbench/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "robotbench",
		Short: "Workbench for Robot Framework run configuration",
		Long: `Robotbench assembles Robot Framework runner command lines from run
profiles: pick a profile, edit tag filters, review the command, and copy it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newCommandCmd())
	rootCmd.AddCommand(newUICmd())

	// Custom help command
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		// Print short top-level usage
		fmt.Fprintf(os.Stdout, "Usage:\n  %s <command> [arguments] [options]\n\n", cmd.Name())
		fmt.Fprintf(os.Stdout, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden {
				fmt.Fprintf(os.Stdout, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(os.Stdout, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfigAndLogger(configPath string) (*config.Config, *logging.Logger, error) {
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLoggerWithOptions(logging.ParseLevel(cfg.LogLevel), cfg.LogFile, cfg.LogFormat, 1)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
