// Package storage aggregates the storage backends behind one manager: the
// metadata database, the blob store, the KV cache and the message queue.
//
// Example:
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx)
//	if err != nil {
//	    // handle error
//	}
//
//	dbClient := mgr.GetDBClient()
//	blobStore := mgr.GetBlobStore()
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/internal/model"
	"github.com/cotishq/cloudnest/pkg/internal/storage/blob"
	dbc "github.com/cotishq/cloudnest/pkg/internal/storage/db"
	kvc "github.com/cotishq/cloudnest/pkg/internal/storage/kv"
	mqc "github.com/cotishq/cloudnest/pkg/internal/storage/mq"
	nlog "github.com/cotishq/cloudnest/pkg/log"
)

// Manager aggregates all storage resources.
type Manager struct {
	DB   *dbc.Client
	Blob blob.Store
	KV   *kvc.Client
	MQ   *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init initializes storage from the global configuration. Repeated calls
// return the already-initialized instance.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()

		var m *Manager

		m, err = NewManager(ctx, cfg)
		if err != nil {
			return
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// NewManager builds a manager from an explicit configuration, migrating the
// node table. Tests use this directly with throwaway backends.
func NewManager(ctx context.Context, cfg *configs.AppConfig) (*Manager, error) {
	m := &Manager{}

	dbi, err := dbc.New(ctx, &cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	m.DB = dbi

	if err := m.DB.WithContext(ctx).AutoMigrate(&model.Node{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	store, err := blob.New(ctx, &cfg.Blob)
	if err != nil {
		return nil, fmt.Errorf("init blob store: %w", err)
	}

	m.Blob = store

	kvi, err := kvc.NewKVClient(ctx, &cfg.KV)
	if err != nil {
		return nil, fmt.Errorf("init kv store: %w", err)
	}

	m.KV = kvi

	mqi, err := mqc.New(ctx, &cfg.MQ)
	if err != nil {
		return nil, fmt.Errorf("init mq: %w", err)
	}

	m.MQ = mqi

	return m, nil
}

// HealthCheck probes the database and the blob store.
func (m *Manager) HealthCheck(ctx context.Context) error {
	sqlDB, err := m.DB.DB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}

	if err := m.Blob.HealthCheck(ctx); err != nil {
		return fmt.Errorf("blob store: %w", err)
	}

	return nil
}

// Close releases all backend connections.
func (m *Manager) Close() error {
	var err error

	if m.MQ != nil {
		if e := m.MQ.Close(); e != nil {
			err = e
		}
	}

	if m.KV != nil {
		if e := m.KV.Close(); e != nil {
			err = e
		}
	}

	if m.Blob != nil {
		if e := m.Blob.Close(); e != nil {
			err = e
		}
	}

	if m.DB != nil {
		if sqlDB, e := m.DB.DB.DB(); e == nil {
			if e := sqlDB.Close(); e != nil {
				err = e
			}
		}
	}

	return err
}

// GetDBClient returns the database client.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetBlobStore returns the blob store.
func (m *Manager) GetBlobStore() blob.Store {
	return m.Blob
}

// GetKVClient returns the KV client.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient returns the MQ client.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
