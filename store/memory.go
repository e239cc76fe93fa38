package store

import (
	"context"
	"sync"
)

// MemoryBlob is an in-process Blob. It backs the default server
// configuration and tests; contents do not survive a restart.
type MemoryBlob struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{slots: make(map[string][]byte)}
}

func (m *MemoryBlob) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryBlob) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), data...)
	return nil
}
