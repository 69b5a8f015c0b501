// Copyright © 2019 One Concern

// Package status declares error constants returned by implementations
// of the Store interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/storage and one
// of its implementations.
package status

import "github.com/oneconcern/gyt/pkg/errors"

var (
	// ErrNotExists indicates that the fetched document does not exist on storage
	ErrNotExists = errors.New("document doesn't exist")

	// ErrExists indicates that the document already exists and cannot be overridden
	ErrExists = errors.New("exists already")

	// ErrNotSupported indicates that the backend does not support this call
	ErrNotSupported = errors.New("not supported")

	// ErrInvalidKey indicates that the document key is not a plain file name
	ErrInvalidKey = errors.New("invalid document key")
)
