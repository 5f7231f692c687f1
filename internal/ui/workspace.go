package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// WorkspaceConfig is the on-disk workspace descriptor.
type WorkspaceConfig struct {
	Version   int    `yaml:"version"`
	Name      string `yaml:"name"`
	CreatedAt string `yaml:"created_at"`
}

// Workspace represents a discovered workspace.
type Workspace struct {
	Root   string
	Config WorkspaceConfig
}

var workspaceDirs = []string{
	"suites",
}

// SettingsPath returns the run settings file location inside a workspace.
func SettingsPath(root string) string {
	return filepath.Join(root, "settings.yaml")
}

// CreateWorkspace initializes a new workspace layout and writes workspace.yaml.
func CreateWorkspace(root string, name string) (*Workspace, error) {
	if root == "" {
		return nil, fmt.Errorf("workspace path is required")
	}
	if name == "" {
		name = filepath.Base(root)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}
	for _, dir := range workspaceDirs {
		path := filepath.Join(root, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("create workspace dir %s: %w", dir, err)
		}
	}

	cfg := WorkspaceConfig{
		Version:   1,
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := writeWorkspaceConfig(root, cfg); err != nil {
		return nil, err
	}

	return &Workspace{Root: root, Config: cfg}, nil
}

// LoadWorkspace reads workspace.yaml and returns the workspace.
func LoadWorkspace(root string) (*Workspace, error) {
	cfg, err := readWorkspaceConfig(root)
	if err != nil {
		return nil, err
	}
	return &Workspace{Root: root, Config: cfg}, nil
}

func readWorkspaceConfig(root string) (WorkspaceConfig, error) {
	path := filepath.Join(root, "workspace.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return WorkspaceConfig{}, fmt.Errorf("read workspace.yaml: %w", err)
	}
	var cfg WorkspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorkspaceConfig{}, fmt.Errorf("parse workspace.yaml: %w", err)
	}
	return cfg, nil
}

func writeWorkspaceConfig(root string, cfg WorkspaceConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal workspace.yaml: %w", err)
	}
	path := filepath.Join(root, "workspace.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write workspace.yaml: %w", err)
	}
	return nil
}

// ListSuites returns workspace-relative paths of the test suite files under
// the suites directory, sorted. These become the trailing arguments of the
// assembled command. Returns nil, nil if the suites directory does not exist.
func ListSuites(root string, extensions []string) ([]string, error) {
	suitesDir := filepath.Join(root, "suites")
	if _, err := os.Stat(suitesDir); os.IsNotExist(err) {
		return nil, nil
	}

	suites := make([]string, 0)
	err := filepath.WalkDir(suitesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !hasSuiteExtension(d.Name(), extensions) {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		suites = append(suites, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk suites dir: %w", err)
	}
	sort.Strings(suites)
	return suites, nil
}

func hasSuiteExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range extensions {
		if ext == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}
