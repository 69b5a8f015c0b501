package core

import (
	"context"

	"github.com/oneconcern/gyt/pkg/config"
	"github.com/oneconcern/gyt/pkg/model"
	"github.com/oneconcern/gyt/pkg/storage"
	"go.uber.org/zap"
)

// GetConfig yields the full configuration mapping. An absent config
// document reads as an empty mapping.
func (r *Repo) GetConfig(ctx context.Context) (config.Config, error) {
	cfg := config.Config{}
	if _, err := r.loadDocument(ctx, model.GetPathToConfig(), &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetConfig assigns value at the dotted key, creating intermediate
// mappings as needed, and rewrites the config document in full.
func (r *Repo) SetConfig(ctx context.Context, dottedKey, value string) error {
	cfg, err := r.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err = cfg.Set(dottedKey, value); err != nil {
		return err
	}
	if err = r.saveDocument(ctx, model.GetPathToConfig(), cfg, storage.OverWrite); err != nil {
		return err
	}
	r.l.Info("set config", zap.String("key", dottedKey))
	return nil
}

// RemoteURL resolves the push target: an explicit URL wins, otherwise
// the remote.url config entry. With neither set it fails with
// ErrNoRemote.
func (r *Repo) RemoteURL(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	cfg, err := r.GetConfig(ctx)
	if err != nil {
		return "", err
	}
	url := cfg.GetString("remote.url")
	if url == "" {
		return "", ErrNoRemote
	}
	return url, nil
}
