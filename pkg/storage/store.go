// Copyright © 2019 One Concern

package storage

import (
	"context"
	"io"
)

const (
	// OverWrite replaces whatever document is stored at the key.
	OverWrite = false

	// NoOverWrite makes Put fail when the key is already present.
	NoOverWrite = true
)

// Store implementations know how to read and write whole documents
// addressed by a key.
//
// A gyt repository keeps each of its documents under its own key and
// every write replaces the document in full: there is no partial or
// in-place update at this level.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader, bool) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
}

// PipeIO copies reader to writer with a fixed-size buffer.
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	pn, err := io.CopyBuffer(writer, reader, make([]byte, 32*1024))
	if err != nil {
		return pn, err
	}
	return pn, nil
}
