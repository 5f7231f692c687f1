package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapSettingsError wraps settings persistence errors with user-friendly context
func WrapSettingsError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to persist run settings to %s", path),
		Reason:  extractFileReason(err),
		Hint:    "The settings file may be missing, unreadable, or owned by another user",
		Try:     "robotbench init --workspace <dir> to recreate the workspace layout",
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Config is YAML; check indentation and field names",
		Try:     fmt.Sprintf("robotbench command --config %s to see how the config resolves", configPath),
		Err:     err,
	}
}

// WrapProfileError wraps profile selection errors with user-friendly context
func WrapProfileError(err error, name string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Run profile %q is not usable", name),
		Reason:  err.Error(),
		Hint:    "Profiles register themselves at startup; the name must match exactly",
		Try:     "robotbench profiles to list the registered profiles",
		Err:     err,
	}
}

func extractFileReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "permission denied") {
		return "Permission denied - the file is not writable by this user"
	}
	if strings.Contains(errStr, "no such file or directory") {
		return "File or directory does not exist"
	}
	if strings.Contains(errStr, "read-only file system") {
		return "Filesystem is mounted read-only"
	}

	return "Filesystem operation failed"
}
