package storage

import "errors"

// MemStore is an in-memory Persistence used by tests. FailWrites and
// FailReads inject storage failures to exercise the warning path.
type MemStore struct {
	values     map[string]string
	FailWrites bool
	FailReads  bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Get returns the stored blob, or "" for an absent key.
func (m *MemStore) Get(key string) (string, error) {
	if m.FailReads {
		return "", errors.New("injected read failure")
	}
	return m.values[key], nil
}

// Set stores the blob under key.
func (m *MemStore) Set(key, value string) error {
	if m.FailWrites {
		return errors.New("injected write failure")
	}
	m.values[key] = value
	return nil
}

// Delete removes the blob under key.
func (m *MemStore) Delete(key string) error {
	if m.FailWrites {
		return errors.New("injected write failure")
	}
	delete(m.values, key)
	return nil
}
