package storage

import (
	"bytes"
	"encoding/base64"
	"sync"
)

// memoryStorage implements Storage with a map guarded by a single RWMutex.
// It is safe for concurrent use by multiple goroutines.
type memoryStorage struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory Storage.
func NewMemory() Storage {
	return &memoryStorage{docs: make(map[string][]byte)}
}

func (m *memoryStorage) Save(code string, content []byte) {
	c := bytes.Clone(content)
	m.mu.Lock()
	m.docs[code] = c
	m.mu.Unlock()
}

func (m *memoryStorage) Insert(code string, content []byte) bool {
	c := bytes.Clone(content)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[code]; ok {
		return false
	}
	m.docs[code] = c
	return true
}

// Get hands out a copy so callers cannot modify stored content.
func (m *memoryStorage) Get(code string) ([]byte, bool) {
	m.mu.RLock()
	c, ok := m.docs[code]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return bytes.Clone(c), true
}

func (m *memoryStorage) GetEncoded(code string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.docs[code]
	if !ok {
		return "", false
	}
	return base64.StdEncoding.EncodeToString(c), true
}

func (m *memoryStorage) Clear() {
	m.mu.Lock()
	m.docs = make(map[string][]byte)
	m.mu.Unlock()
}

func (m *memoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
