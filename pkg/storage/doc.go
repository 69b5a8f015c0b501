// Copyright © 2019 One Concern

// Package storage provides the document store interface backing a gyt
// repository, with a local filesystem implementation under localfs and
// a logging decorator under instrumented.
package storage
