package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cotishq/cloudnest/pkg/configs"
)

// MemoryStore keeps objects in process memory. It exists for tests and
// local development without an object store.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	bucket  string

	// FailPuts makes every Put return an error; tests use it to exercise
	// upload failure handling.
	FailPuts bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(_ context.Context, cfg *configs.BlobConfig) (Store, error) {
	bucket := cfg.BucketName
	if bucket == "" {
		bucket = configs.AppName
	}

	return &MemoryStore{
		objects: make(map[string][]byte),
		bucket:  bucket,
	}, nil
}

func (s *MemoryStore) Put(ctx context.Context, in PutInput) (PutResult, error) {
	if s.FailPuts {
		return PutResult{}, fmt.Errorf("put object: store unavailable")
	}

	data, err := io.ReadAll(in.Reader)
	if err != nil {
		return PutResult{}, fmt.Errorf("read object body: %w", err)
	}

	object := uuid.NewString()
	if ext := path.Ext(in.Name); ext != "" {
		object += ext
	}

	key := ScopedKey(in.OwnerID, in.ParentID, object)

	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return PutResult{
		Key: key,
		URL: fmt.Sprintf("memory://%s/%s", s.bucket, key),
	}, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) FindKeyByName(_ context.Context, ownerID, name string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", configs.AppName, ownerID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for key := range s.objects {
		if strings.HasPrefix(key, prefix) && strings.EqualFold(path.Base(key), name) {
			return key, nil
		}
	}

	return "", ErrKeyNotFound
}

func (s *MemoryStore) HealthCheck(context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.objects = make(map[string][]byte)
	s.mu.Unlock()

	return nil
}

// Len reports the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.objects)
}

// Has reports whether a key is present.
func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.objects[key]

	return ok
}

func init() {
	RegisterFactory("memory", NewMemoryStore)
}
