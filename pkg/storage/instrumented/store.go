// Copyright © 2019 One Concern

// Package instrumented decorates a document store with debug logging.
package instrumented

import (
	"context"
	"io"

	"github.com/oneconcern/gyt/pkg/storage"
	"go.uber.org/zap"
)

// New wraps a store so that every operation is logged at debug level.
func New(l *zap.Logger, store storage.Store) storage.Store {
	if l == nil {
		l = zap.NewNop()
	}
	return &instrumentedStore{
		store: store,
		l:     l.With(zap.String("store", store.String())),
	}
}

type instrumentedStore struct {
	store storage.Store
	l     *zap.Logger
}

func (i *instrumentedStore) String() string {
	return i.store.String()
}

func (i *instrumentedStore) Has(ctx context.Context, key string) (bool, error) {
	i.l.Debug("storage has", zap.String("key", key))
	return i.store.Has(ctx, key)
}

func (i *instrumentedStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	i.l.Debug("storage get", zap.String("key", key))
	return i.store.Get(ctx, key)
}

func (i *instrumentedStore) Put(ctx context.Context, key string, rdr io.Reader, exclusive bool) error {
	i.l.Debug("storage put", zap.String("key", key), zap.Bool("exclusive", exclusive))
	return i.store.Put(ctx, key, rdr, exclusive)
}

func (i *instrumentedStore) Delete(ctx context.Context, key string) error {
	i.l.Debug("storage delete", zap.String("key", key))
	return i.store.Delete(ctx, key)
}

func (i *instrumentedStore) Keys(ctx context.Context) ([]string, error) {
	i.l.Debug("storage keys")
	return i.store.Keys(ctx)
}
