package ui

import (
	"strings"
	"testing"

	"robotbench/internal/profile"
	"robotbench/internal/settings"
)

func TestRenderReviewScreen(t *testing.T) {
	snapshot := settings.Settings{
		Profile:          profile.PybotName,
		ApplyIncludeTags: true,
		IncludeTags:      "smoke, critical",
		ApplyExcludeTags: true,
		ExcludeTags:      "wip",
	}
	store := newTestStore(t, snapshot)
	p, err := profile.New(profile.PybotName, store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	command := BuildCommand(p, []string{"suites/login.robot"})
	screen := RenderReviewScreen(p, command, snapshot)

	for _, want := range []string{
		"Review Command",
		"Profile: pybot",
		"--include=smoke",
		"- Only run: smoke, critical",
		"- Skip: wip",
		"[Copy Command] [Back]",
	} {
		if !strings.Contains(screen, want) {
			t.Errorf("review screen missing %q:\n%s", want, screen)
		}
	}
}

func TestRenderReviewScreenNoFilters(t *testing.T) {
	store := newTestStore(t, settings.Default())
	p, err := profile.New(profile.PybotName, store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	screen := RenderReviewScreen(p, BuildCommand(p, nil), settings.Default())
	if !strings.Contains(screen, "- none") {
		t.Errorf("review screen should list no filters:\n%s", screen)
	}
}

func TestDescribeFiltersIgnoresUnappliedTags(t *testing.T) {
	snapshot := settings.Settings{
		IncludeTags: "smoke",
		ExcludeTags: "wip",
	}
	if filters := describeFilters(snapshot); len(filters) != 0 {
		t.Errorf("describeFilters = %v, want empty when apply flags are off", filters)
	}
}
