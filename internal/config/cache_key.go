package config

// CacheKeyStruct namespaces every Redis key the service uses.
type CacheKeyStruct struct{}

// NewCacheKeyStruct creates a CacheKeyStruct.
func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CategoryMapKey returns the cache key for the id-to-name category map.
func (r *CacheKeyStruct) CategoryMapKey() string {
	return "categories:map"
}

var CacheKey = NewCacheKeyStruct()
