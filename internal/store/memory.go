package store

// MemoryStore keeps snapshots in a map. Used for tests and ephemeral runs.
type MemoryStore struct {
	data   map[string][]byte
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	if m.closed {
		return nil, ErrStoreClosed
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Put(key string, value []byte) error {
	if m.closed {
		return ErrStoreClosed
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Close() error {
	m.closed = true
	return nil
}
