package ui

import (
	"strings"

	"robotbench/internal/profile"
	"robotbench/internal/settings"
)

// RenderReviewScreen formats a review screen for the assembled command.
func RenderReviewScreen(p profile.Profile, command CommandSpec, snapshot settings.Settings) string {
	lines := []string{
		"Review Command",
		"Profile: " + p.Name(),
		"",
		"Command:",
		FormatCommand(command.Args),
		"",
		"Tag filters:",
	}

	filters := describeFilters(snapshot)
	if len(filters) == 0 {
		filters = []string{"- none"}
	}
	lines = append(lines, filters...)

	lines = append(lines, "", "Actions:", "[Copy Command] [Back]")
	return strings.Join(lines, "\n")
}

func describeFilters(snapshot settings.Settings) []string {
	items := []string{}
	if snapshot.ApplyIncludeTags {
		if tags := profile.SplitTags(snapshot.IncludeTags); len(tags) > 0 {
			items = append(items, "- Only run: "+strings.Join(tags, ", "))
		}
	}
	if snapshot.ApplyExcludeTags {
		if tags := profile.SplitTags(snapshot.ExcludeTags); len(tags) > 0 {
			items = append(items, "- Skip: "+strings.Join(tags, ", "))
		}
	}
	return items
}
