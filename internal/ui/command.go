package ui

import (
	"fmt"
	"strings"

	"robotbench/internal/profile"
)

// CommandSpec represents a runner invocation assembled from a profile.
type CommandSpec struct {
	Args []string
}

// BuildCommand assembles the full runner command line for a profile:
// the executable prefix, the profile's tag filter arguments, then the
// suite paths supplied by the workbench.
func BuildCommand(p profile.Profile, suites []string) CommandSpec {
	args := append([]string{}, p.CommandPrefix()...)
	args = append(args, p.CustomArgs()...)
	args = append(args, suites...)
	return CommandSpec{Args: args}
}

func formatCommand(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

// FormatCommand exposes the command formatting for display and copying.
func FormatCommand(args []string) string {
	return formatCommand(args)
}

func quoteArg(arg string) string {
	if arg == "" {
		return "\"\""
	}
	if strings.ContainsAny(arg, " \t") {
		escaped := strings.ReplaceAll(arg, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return arg
}
