// Package blob adapts S3-compatible object storage behind a small store
// interface so the service layer never touches a vendor SDK directly.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/cotishq/cloudnest/pkg/configs"
)

// ErrKeyNotFound is returned when a lookup cannot resolve an object key.
var ErrKeyNotFound = errors.New("blob: key not found")

// PutInput describes one object to write. The store derives the object key
// from the owner and parent scope; callers never choose keys.
type PutInput struct {
	OwnerID     string
	ParentID    *string
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// PutResult reports where the object landed.
type PutResult struct {
	Key          string
	URL          string
	ThumbnailURL string
}

// Store is the blob store contract. Implementations must scope keys per
// owner so one user's objects can never collide with another's.
type Store interface {
	// Put writes the object and returns its key and public URL.
	Put(ctx context.Context, in PutInput) (PutResult, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// FindKeyByName searches the owner's scope for an object whose final
	// path segment matches name. Returns ErrKeyNotFound when absent.
	FindKeyByName(ctx context.Context, ownerID, name string) (string, error)
	HealthCheck(ctx context.Context) error
	Close() error
}

// Factory builds a store from the blob configuration.
type Factory func(ctx context.Context, cfg *configs.BlobConfig) (Store, error)

var factories = map[string]Factory{}

// RegisterFactory registers a store backend. Backends register themselves
// from init.
func RegisterFactory(storeType string, factory Factory) {
	factories[storeType] = factory
}

// New builds the store selected by cfg.Type.
func New(ctx context.Context, cfg *configs.BlobConfig) (Store, error) {
	factory, ok := factories[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported blob store type: %s", cfg.Type)
	}

	return factory(ctx, cfg)
}

// ScopedKey builds the owner-scoped object key prefix for uploads:
// cloudnest/{owner}/folders/{parent}/ for nodes inside a folder, otherwise
// cloudnest/{owner}/.
func ScopedKey(ownerID string, parentID *string, object string) string {
	if parentID != nil && *parentID != "" {
		return fmt.Sprintf("%s/%s/folders/%s/%s", configs.AppName, ownerID, *parentID, object)
	}

	return fmt.Sprintf("%s/%s/%s", configs.AppName, ownerID, object)
}

// KeyFromURL recovers an object key from a stored URL by dropping the query
// string and the bucket prefix. It returns "" when the URL does not parse.
// This exists only as a fallback for rows persisted without a key.
func KeyFromURL(rawURL, bucket string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	p := strings.TrimPrefix(u.Path, "/")
	if bucket != "" && strings.HasPrefix(p, bucket+"/") {
		return strings.TrimPrefix(p, bucket+"/")
	}

	return p
}
