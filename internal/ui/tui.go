package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"robotbench/internal/config"
	"robotbench/internal/errors"
	"robotbench/internal/logging"
	"robotbench/internal/profile"
	"robotbench/internal/settings"
)

type viewMode int

const (
	viewHome viewMode = iota
	viewToolbar
	viewReview
)

type tuiModel struct {
	workspaceRoot string
	workspaceName string
	cfg           *config.Config
	store         *settings.Store
	logger        *logging.Logger
	names         []string
	current       profile.Profile
	cursor        int
	mode          viewMode
	reviewText    string
	command       CommandSpec
	status        string
	err           error
}

func newTUIModel(ws *Workspace, cfg *config.Config, store *settings.Store, logger *logging.Logger) tuiModel {
	m := tuiModel{
		workspaceRoot: ws.Root,
		workspaceName: ws.Config.Name,
		cfg:           cfg,
		store:         store,
		logger:        logger,
		names:         profile.Names(),
		mode:          viewHome,
	}

	selected := store.Snapshot().Profile
	if cfg.DefaultProfile != "" {
		selected = cfg.DefaultProfile
	}
	p, err := profile.New(selected, store)
	if err != nil {
		selected = profile.DefaultName
		p, _ = profile.New(selected, store)
	}
	m.current = p
	for i, name := range m.names {
		if name == selected {
			m.cursor = i
		}
	}
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == viewToolbar && m.current != nil {
		cmd := m.current.Toolbar().Update(msg)
		if m.current.Toolbar().Done() {
			m.mode = viewHome
			m.status = "Settings saved"
			m = m.refreshProfile()
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.mode == viewHome {
				m.cursor--
			}
		case "down", "j":
			if m.mode == viewHome {
				m.cursor++
			}
		case "enter":
			if m.mode == viewHome {
				m = m.selectProfile(m.currentSelection())
			}
		case "e":
			if m.mode == viewHome && m.current != nil {
				m.mode = viewToolbar
				m.status = ""
				return m, m.current.Toolbar().Init()
			}
		case "r":
			if m.mode == viewHome && m.current != nil {
				m = m.buildReview()
			}
		case "c":
			if m.mode == viewReview {
				m = m.copyCurrentCommand()
			}
		case "b", "esc":
			if m.mode == viewReview {
				m.mode = viewHome
				m.reviewText = ""
				m.command = CommandSpec{}
				m.status = ""
			}
		}
	}
	m.cursor = clampCursor(m.cursor, len(m.names))
	return m, nil
}

func (m tuiModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	frameStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 2)

	header := titleStyle.Render(fmt.Sprintf("robotbench: %s", m.workspaceName)) + "\n"

	switch m.mode {
	case viewToolbar:
		toolbarFooter := footerStyle.Render("\nKeys: tab/shift+tab=move enter=confirm esc=close")
		return header + frameStyle.Render(m.current.Toolbar().View()) + toolbarFooter
	case viewReview:
		body := m.reviewText
		if m.status != "" {
			body += "\n\n" + m.status
		}
		reviewFooter := footerStyle.Render("\nKeys: c=copy b=back q=quit")
		return header + frameStyle.Render(body) + reviewFooter
	default:
		footer := footerStyle.Render("\nKeys: enter=select e=edit tags r=review q=quit")
		body := m.renderHome()
		if m.status != "" {
			body += "\n\n" + m.status
		}
		return header + body + footer
	}
}

func (m tuiModel) renderHome() string {
	lines := []string{"Run Profiles", ""}
	activeName := ""
	if m.current != nil {
		activeName = m.current.Name()
	}
	for i, name := range m.names {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		marker := ""
		if name == activeName {
			marker = " (active)"
		}
		lines = append(lines, fmt.Sprintf("%s%s%s", prefix, name, marker))
	}

	filters := describeFilters(m.store.Snapshot())
	if len(filters) > 0 {
		lines = append(lines, "", "Tag filters:")
		lines = append(lines, filters...)
	}
	return strings.Join(lines, "\n")
}

func (m tuiModel) currentSelection() string {
	if m.cursor >= 0 && m.cursor < len(m.names) {
		return m.names[m.cursor]
	}
	return ""
}

// selectProfile discards the current profile instance and creates the chosen
// one, persisting the selection.
func (m tuiModel) selectProfile(name string) tuiModel {
	if name == "" || (m.current != nil && m.current.Name() == name) {
		return m
	}
	p, err := profile.New(name, m.store)
	if err != nil {
		m.err = errors.WrapProfileError(err, name)
		return m
	}
	m.current = p
	_ = m.store.SaveSetting(settings.SettingProfile, name, settings.DefaultSaveDelay)
	m.status = fmt.Sprintf("Profile: %s", name)
	return m
}

// refreshProfile recreates the current profile instance so a closed toolbar
// form can be reopened.
func (m tuiModel) refreshProfile() tuiModel {
	if m.current == nil {
		return m
	}
	p, err := profile.New(m.current.Name(), m.store)
	if err == nil {
		m.current = p
	}
	return m
}

func (m tuiModel) buildReview() tuiModel {
	suites, err := ListSuites(m.workspaceRoot, m.cfg.SuiteExtensions)
	if err != nil {
		m.err = err
		return m
	}
	m.command = BuildCommand(m.current, suites)
	m.logger.LogInvocation(m.current.Name(), m.command.Args)
	m.reviewText = RenderReviewScreen(m.current, m.command, m.store.Snapshot())
	m.status = ""
	m.mode = viewReview
	return m
}

func (m tuiModel) copyCurrentCommand() tuiModel {
	if len(m.command.Args) == 0 {
		m.status = "Copy: no command available"
		return m
	}
	command := FormatCommand(m.command.Args)
	if err := clipboard.WriteAll(command); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return m
	}
	m.status = "Command copied to clipboard"
	return m
}

func clampCursor(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

// RunTUI starts the Bubble Tea workbench.
func RunTUI(cfg *config.Config, logger *logging.Logger) error {
	ws, err := LoadWorkspace(cfg.Workspace)
	if err != nil {
		return err
	}
	store, err := settings.Open(SettingsPath(ws.Root))
	if err != nil {
		return err
	}
	defer store.Close()

	watcher, err := settings.NewWatcher(store, logger)
	if err != nil {
		logger.Error("Settings watcher unavailable: %v", err)
	} else {
		if err := watcher.Start(); err != nil {
			logger.Error("Settings watcher failed to start: %v", err)
		}
		defer watcher.Stop()
	}

	logger.LogStartup(store.Snapshot().Profile, ws.Root, store.Path())

	model := newTUIModel(ws, cfg, store, logger)
	program := tea.NewProgram(model)
	_, err = program.Run()
	return err
}
