// Package storage provides the key-value persistence slots backing the
// observable stores. Values are opaque JSON blobs; a missing key reads back
// as nil rather than an error.
package storage

// Storage is a named-slot key-value persistence capability.
type Storage interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Open selects a backend: Postgres when a connection string is configured,
// otherwise JSON files under dataDir.
func Open(databaseURL, dataDir string) (Storage, error) {
	if databaseURL != "" {
		return NewPostgresStore(databaseURL)
	}
	return NewFileStorage(dataDir)
}
