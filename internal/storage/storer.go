package storage

import (
	"context"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
)

type Storer interface {
	Save(ctx context.Context, calc domain.Calculation) error
}

// Store is a complete history backend.
type Store interface {
	Storer
	Reader
	Close() error
}

type Type string

const (
	ES     Type = "es"
	PG     Type = "pg"
	SQLite Type = "sqlite"
	InMem  Type = "in_mem"
)

// Types lists every supported backend.
var Types = []Type{PG, SQLite, ES, InMem}

func (t Type) Valid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
