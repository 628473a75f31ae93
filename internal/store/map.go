package store

import "runtime/debug"

type MapBackend struct {
	storage map[string][]string
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string][]string{}}
}

func (m *MapBackend) Get(key string) ([]string, bool) {
	v, ok := m.storage[key]
	return v, ok
}

func (m *MapBackend) Set(key string, values []string) error {
	m.storage[key] = values
	return nil
}

func (m *MapBackend) Len() int {
	return len(m.storage)
}

func (m *MapBackend) IterCallback(callback func(key string, values []string)) {
	for k, v := range m.storage {
		callback(k, v)
	}
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// By default GC doesnot release buffered/allocated memory
	// since there always is possibilitly of needing it again/immediately
	// and releases memory in chunks
	// debug.FreeOSMemory forces GC to release allocated memory at once
	debug.FreeOSMemory()
}
