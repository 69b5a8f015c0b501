package core

import (
	"github.com/oneconcern/gyt/pkg/storage"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option modifies a repository handle at construction time.
type Option func(*Repo)

// Logger sets the logger used by repository operations.
func Logger(l *zap.Logger) Option {
	return func(r *Repo) {
		if l != nil {
			r.l = l
		}
	}
}

// Filesystem overrides the file system holding the repository root,
// e.g. an in-memory one for tests.
func Filesystem(fs afero.Fs) Option {
	return func(r *Repo) {
		r.fs = fs
	}
}

// MetaStore overrides the document store holding the repository state.
func MetaStore(store storage.Store) Option {
	return func(r *Repo) {
		r.meta = store
	}
}
