package model

import "path/filepath"

// StateDir is the repository state directory, relative to the
// repository root.
const StateDir = ".gyt"

// GetPathToStaging yields the staging document key, relative to the
// state directory.
func GetPathToStaging() string {
	return "staging.json"
}

// GetPathToCommits yields the commits document key.
func GetPathToCommits() string {
	return "commits.json"
}

// GetPathToConfig yields the config document key.
func GetPathToConfig() string {
	return "config.json"
}

// GetPathToStateDir yields the state directory under a repository root.
func GetPathToStateDir(root string) string {
	return filepath.Join(root, StateDir)
}
