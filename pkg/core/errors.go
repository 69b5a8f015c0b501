package core

import "github.com/oneconcern/gyt/pkg/errors"

var (
	// ErrNotInitialized indicates the root directory holds no repository state
	ErrNotInitialized = errors.New("not a gyt repository")

	// ErrEmptyStaging indicates a commit was attempted with nothing staged
	ErrEmptyStaging = errors.New("no milestones staged")

	// ErrNoRemote indicates push was attempted without a remote URL configured
	ErrNoRemote = errors.New("no remote configured")

	// ErrInvalidDocument indicates a repository document failed to decode.
	// This is fatal for the operation: documents are never repaired or
	// partially recovered.
	ErrInvalidDocument = errors.New("malformed repository document")
)
