package store

import (
	"context"
	"errors"
)

// SnapshotKey is the single versioned key under which the whole application
// state is persisted. Earlier revisions used two incompatible keys; v2 is the
// one canonical scheme.
const SnapshotKey = "interview_assistant_state:v2"

// ErrNoSnapshot is returned by a backend when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved snapshot")

// Backend persists the serialized snapshot. Every save is a full overwrite
// and the last writer wins; there is no coordination between processes.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}
