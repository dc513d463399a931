package store

import "sync"

// MemoryStateStore is an in-memory StateStore for tests.
type MemoryStateStore struct {
	mu   sync.Mutex
	Data []byte

	LoadError error
	SaveError error
	Saves     int
}

// Load returns a copy of Data.
func (m *MemoryStateStore) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.Data...), nil
}

// Save replaces Data.
func (m *MemoryStateStore) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Data = append([]byte(nil), data...)
	m.Saves++
	return nil
}

// MockCategoryStore returns fixed presets.
type MockCategoryStore struct {
	Categories          []CategoryPreset
	LoadCategoriesError error
}

// LoadCategories returns the mock categories.
func (m *MockCategoryStore) LoadCategories() ([]CategoryPreset, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}
