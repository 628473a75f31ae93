package store

// Backend stores ordered value lists by key
type Backend interface {
	// Get returns values stored for key
	Get(key string) ([]string, bool)
	// Set adds/replaces values of key
	Set(key string, values []string) error
	// Len returns number of keys
	Len() int
	// Execute given callback on each key while iterating
	IterCallback(callback func(key string, values []string))
	// Cleanup cleans any residuals
	Cleanup()
}

// MaxInMemorySize (default : 100 MB) is estimated input size after which
// a disk backed store is preferred
var MaxInMemorySize = 100 * 1024 * 1024

// New returns a map backend when byteLen fits in memory and
// a hybrid disk backend otherwise
func New(byteLen int) (Backend, error) {
	if byteLen <= MaxInMemorySize {
		return NewMapBackend(), nil
	}
	return NewHybridBackend()
}
