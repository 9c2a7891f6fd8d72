package Store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Gateway pairs the durable local store with an optional remote mirror.
// Every mutation commits locally first; the remote write is best effort
// and never rolls the local result back. Reads prefer the remote store
// and fall back to local on any remote failure. The two sources are never
// merged.
type Gateway struct {
	Local  *LocalStore
	Remote RemoteStore // nil when no mirror is configured
}

func NewGateway(local *LocalStore, remote RemoteStore) *Gateway {
	return &Gateway{Local: local, Remote: remote}
}

// Collection is one entity kind inside the gateway, parameterized by its
// local storage key, its remote collection name, and the identity field
// used to match records on update and delete.
type Collection[T any] struct {
	gw       *Gateway
	key      string
	table    string
	identity func(T) string

	// Serializes local read-modify-write cycles. Two handlers mutating the
	// same kind concurrently must not interleave between read and write.
	mu sync.Mutex
}

func NewCollection[T any](gw *Gateway, key, table string, identity func(T) string) *Collection[T] {
	return &Collection[T]{gw: gw, key: key, table: table, identity: identity}
}

func (c *Collection[T]) readLocal() ([]T, error) {
	raw, err := c.gw.Local.Read(c.key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[T]) writeLocal(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.gw.Local.Write(c.key, raw)
}

// Add prepends the record locally and mirrors an insert. A remote failure
// comes back as *SyncError; the local write has already committed.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	c.mu.Lock()
	items, err := c.readLocal()
	if err == nil {
		err = c.writeLocal(append([]T{item}, items...))
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.mirror(ctx, "insert", item)
}

// Update replaces the record whose identity matches. An absent id is a
// silent no-op locally; the remote update is still attempted by the same
// identity.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	id := c.identity(item)
	c.mu.Lock()
	items, err := c.readLocal()
	if err == nil {
		for i := range items {
			if c.identity(items[i]) == id {
				items[i] = item
			}
		}
		err = c.writeLocal(items)
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.mirror(ctx, "update", item)
}

// Delete removes by id. An absent id is a silent no-op locally.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	items, err := c.readLocal()
	if err == nil {
		kept := items[:0]
		for _, item := range items {
			if c.identity(item) != id {
				kept = append(kept, item)
			}
		}
		err = c.writeLocal(kept)
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if c.gw.Remote == nil {
		return nil
	}
	if err := c.gw.Remote.Delete(ctx, c.table, id); err != nil {
		log.Printf("Remote delete on %s failed: %v", c.table, err)
		return &SyncError{Op: "delete", Collection: c.table, Err: err}
	}
	return nil
}

// FetchAll reads the whole collection: remote when reachable, local
// otherwise. With no remote configured the local order is
// most-recently-added first.
func (c *Collection[T]) FetchAll(ctx context.Context) ([]T, error) {
	if c.gw.Remote != nil {
		docs, err := c.gw.Remote.SelectAll(ctx, c.table)
		if err == nil {
			items, decodeErr := decodeDocuments[T](docs)
			if decodeErr == nil {
				return items, nil
			}
			log.Printf("Decoding remote %s failed, falling back to local: %v", c.table, decodeErr)
		} else {
			log.Printf("Remote read on %s failed, falling back to local: %v", c.table, err)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocal()
}

// FetchOne resolves a single record by id through the same
// prefer-remote-else-local policy.
func (c *Collection[T]) FetchOne(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.FetchAll(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if c.identity(item) == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// ReplaceAll rewrites the local collection in one shot, without touching
// the remote store.
func (c *Collection[T]) ReplaceAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocal(items)
}

// SyncAll rewrites the local collection and mirrors every record to the
// remote store, so prefer-remote reads see the same set the local store
// holds. Remote Insert replaces by id, so re-mirroring never duplicates.
// Used for whole-table writes such as the rate table.
func (c *Collection[T]) SyncAll(ctx context.Context, items []T) error {
	if err := c.ReplaceAll(items); err != nil {
		return err
	}
	for _, item := range items {
		if err := c.mirror(ctx, "insert", item); err != nil {
			return err
		}
	}
	return nil
}

// SeedLocal writes the items only when the key has never been written.
// Returns true when the seed was applied.
func (c *Collection[T]) SeedLocal(items []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	exists, err := c.gw.Local.Exists(c.key)
	if err != nil || exists {
		return false, err
	}
	return true, c.writeLocal(items)
}

func (c *Collection[T]) mirror(ctx context.Context, op string, item T) error {
	if c.gw.Remote == nil {
		return nil
	}
	doc, err := encodeDocument(item)
	if err != nil {
		log.Printf("Encoding %s record for remote %s failed: %v", c.table, op, err)
		return &SyncError{Op: op, Collection: c.table, Err: err}
	}
	var remoteErr error
	switch op {
	case "insert":
		remoteErr = c.gw.Remote.Insert(ctx, c.table, c.identity(item), doc)
	default:
		remoteErr = c.gw.Remote.Update(ctx, c.table, c.identity(item), doc)
	}
	if remoteErr != nil {
		log.Printf("Remote %s on %s failed: %v", op, c.table, remoteErr)
		return &SyncError{Op: op, Collection: c.table, Err: remoteErr}
	}
	return nil
}

func encodeDocument[T any](item T) (map[string]interface{}, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeDocuments[T any](docs []map[string]interface{}) ([]T, error) {
	if docs == nil {
		return []T{}, nil
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
