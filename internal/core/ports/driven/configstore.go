package driven

// ConfigStore provides application configuration persistence.
// Keys are flat strings (e.g. "oracle.provider", "retrieval.chunk_size").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value, "" when unset.
	GetString(key string) string

	// GetInt retrieves an integer configuration value, 0 when unset.
	GetInt(key string) int

	// Set stores a configuration value.
	Set(key string, value any) error

	// Delete removes a configuration value.
	Delete(key string) error
}
