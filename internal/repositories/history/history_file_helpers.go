package history

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	dataDir         = ".wasabi"
	historyFilename = "history"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	return relativeToHome(absPath, usr.HomeDir)
}

func relativeToHome(absPath, homeDir string) string {
	if homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	prefix := strings.TrimSuffix(homeDir, string(filepath.Separator)) + string(filepath.Separator)
	if !strings.HasPrefix(absPath, prefix) {
		return absPath
	}
	return filepath.Join("~", absPath[len(prefix):])
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// findHistoryFile returns the absolute history file path and makes sure its directory exists.
func findHistoryFile(configured string) (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	homeDir := usr.HomeDir

	path := filepath.Join(homeDir, dataDir, historyFilename)
	if configured != "" {
		path = expandHome(configured, homeDir)
		if !filepath.IsAbs(path) {
			path = filepath.Join(homeDir, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create history directory %s: %w", toUserFriendlyPath(filepath.Dir(path)), err)
	}
	return path, nil
}
