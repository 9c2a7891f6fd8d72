package Store

import (
	"context"
	"fmt"
)

// RemoteStore is the opaque remote mirror: a keyed record store per
// collection with no transactions or joins. Implementations must be safe
// for concurrent use. Insert writes the full document under its id,
// replacing any existing record (Firestore Set semantics), so mirroring
// the same record twice never duplicates it.
type RemoteStore interface {
	Insert(ctx context.Context, collection, id string, data map[string]interface{}) error
	Update(ctx context.Context, collection, id string, data map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	SelectAll(ctx context.Context, collection string) ([]map[string]interface{}, error)
}

// SyncError reports a failed best-effort remote write. The local write has
// already committed when this is returned, so callers treat it as a
// warning, not a failure.
type SyncError struct {
	Op         string
	Collection string
	Err        error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("remote %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
