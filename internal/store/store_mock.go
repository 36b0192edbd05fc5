package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// MockStore is an in-memory implementation of KVStore. Values go through the
// same JSON round-trip as the durable store so structural equality behaves the
// same way in tests.
type MockStore struct {
	values map[string][]byte
	mu     sync.RWMutex

	// FailGet and FailSet simulate storage failures: reads degrade to absent,
	// writes return an error.
	FailGet bool
	FailSet bool
}

// NewMockStore creates a new instance of MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		values: make(map[string][]byte),
	}
}

// Get unmarshals the stored value for key into dest.
func (s *MockStore) Get(key string, dest any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailGet {
		log.Printf("store: simulated read failure for key %q", key)
		return false, nil
	}
	body, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		log.Printf("store: corrupt value for key %q: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Set marshals value to JSON and replaces the entry for key.
func (s *MockStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSet {
		return fmt.Errorf("simulated write failure for key %q", key)
	}
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	s.values[key] = body
	return nil
}
