// Package core implements the operations on a gyt repository: a root
// directory whose state lives in three JSON documents under .gyt/
// (staging, commits, config).
//
// Every mutation is a whole-document read-modify-write. Two concurrent
// invocations against the same repository race, last writer wins; this
// is an accepted limitation of a single-user local tool.
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"

	"github.com/oneconcern/gyt/pkg/config"
	"github.com/oneconcern/gyt/pkg/errors"
	"github.com/oneconcern/gyt/pkg/model"
	"github.com/oneconcern/gyt/pkg/storage"
	"github.com/oneconcern/gyt/pkg/storage/instrumented"
	"github.com/oneconcern/gyt/pkg/storage/localfs"
	"github.com/oneconcern/gyt/pkg/storage/status"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Repo gives access to the repository rooted at a directory.
type Repo struct {
	root string
	fs   afero.Fs
	meta storage.Store
	l    *zap.Logger
}

// New builds a repository handle for the given root directory. The
// state documents live under <root>/.gyt.
func New(root string, opts ...Option) *Repo {
	r := &Repo{
		root: root,
		l:    zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}
	if r.fs == nil {
		r.fs = afero.NewBasePathFs(afero.NewOsFs(), root)
	}
	if r.meta == nil {
		r.meta = instrumented.New(r.l,
			localfs.New(afero.NewBasePathFs(r.fs, model.StateDir)))
	}
	return r
}

// Root yields the repository root directory.
func (r *Repo) Root() string {
	return r.root
}

// IsInitialized reports whether the state directory exists. Every
// operation other than Initialize requires an initialized repository;
// callers check this first.
func (r *Repo) IsInitialized() (bool, error) {
	return afero.DirExists(r.fs, model.StateDir)
}

// Initialize creates the state directory with empty staging and
// commits documents and the default configuration.
//
// It reports whether initialization actually happened: an already
// initialized repository is left untouched and yields false.
func (r *Repo) Initialize(ctx context.Context) (bool, error) {
	initialized, err := r.IsInitialized()
	if err != nil {
		return false, err
	}
	if initialized {
		return false, nil
	}
	if err = r.fs.MkdirAll(model.StateDir, 0755); err != nil {
		return false, err
	}
	if err = r.saveDocument(ctx, model.GetPathToStaging(), []model.Milestone{}, storage.NoOverWrite); err != nil {
		return false, err
	}
	if err = r.saveDocument(ctx, model.GetPathToCommits(), []model.Commit{}, storage.NoOverWrite); err != nil {
		return false, err
	}
	if err = r.saveDocument(ctx, model.GetPathToConfig(), config.Default(), storage.NoOverWrite); err != nil {
		return false, err
	}
	r.l.Info("initialized repository", zap.String("root", r.root))
	return true, nil
}

// loadDocument reads and decodes one state document. An absent
// document is not an error: v is left untouched and false is returned.
func (r *Repo) loadDocument(ctx context.Context, key string, v interface{}) (bool, error) {
	rdr, err := r.meta.Get(ctx, key)
	if err != nil {
		if errors.Is(err, status.ErrNotExists) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = rdr.Close()
	}()
	b, err := ioutil.ReadAll(rdr)
	if err != nil {
		return false, err
	}
	if err = json.Unmarshal(b, v); err != nil {
		return false, ErrInvalidDocument.Wrap(err)
	}
	return true, nil
}

// saveDocument replaces one state document in full, pretty-printed
// with a 2-space indent.
func (r *Repo) saveDocument(ctx context.Context, key string, v interface{}, exclusive bool) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return r.meta.Put(ctx, key, bytes.NewReader(b), exclusive)
}
