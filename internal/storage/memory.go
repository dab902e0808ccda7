package storage

import "sync"

// MemKV is an in-memory KV used by tests and anywhere a throwaway store
// is handy. It honors the same absent-key and empty-value semantics as
// FileKV.
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: map[string][]byte{}}
}

// Get returns the value for key, or (nil, nil) when the key is absent or
// holds an empty value.
func (m *MemKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok || len(v) == 0 {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores value under key.
func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Delete removes key from the store.
func (m *MemKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
