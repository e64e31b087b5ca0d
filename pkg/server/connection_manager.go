package server

import (
	"context"
	"sync"
	"time"

	"user-directory-api/internal/config"
)

// ConnectionManager holds the dependency container across warm Lambda
// invocations. Reuse is a performance optimization only; no invocation may
// rely on state a prior invocation left behind.
type ConnectionManager struct {
	container   *Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	initOnce    sync.Once
	config      *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize initializes the connection manager with configuration
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	var initErr error
	cm.initOnce.Do(func() {
		cm.mu.Lock()
		defer cm.mu.Unlock()

		cm.config = cfg
		container, err := NewContainer(ctx, cfg)
		if err != nil {
			initErr = err
			return
		}

		cm.container = container
		cm.lastUsed = time.Now()
		cm.initialized = true
	})

	return initErr
}

// GetContainer returns the dependency container, initializing if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*Container, error) {
	cm.mu.RLock()
	if cm.initialized && cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.RUnlock()
		return container, nil
	}
	cm.mu.RUnlock()

	if cm.config == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if err := cm.Initialize(ctx, cfg); err != nil {
			return nil, err
		}
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// UpdateLastUsed updates the last used timestamp
func (cm *ConnectionManager) UpdateLastUsed() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lastUsed = time.Now()
}
