// Package storage provides the key-value store every stateful component
// persists through. Values are JSON-encoded; failure is always reported as a
// boolean so no storage error ever crosses a component boundary.
package storage

// Store is a safe JSON key-value store.
type Store interface {
	// Get decodes the value under key into out. On a missing key or
	// undecodable value it returns false and leaves out untouched, so the
	// caller's default survives.
	Get(key string, out interface{}) bool
	// Set encodes value under key, false on failure.
	Set(key string, value interface{}) bool
	// Remove deletes key, false on failure.
	Remove(key string) bool
}
