// Package cache provides a small generic, thread-safe LRU cache.
//
// The cache is bounded: once it holds capacity entries, inserting a new key
// evicts the least recently used one. It keeps compiled field patterns around
// between validation passes without letting markup-driven patterns grow
// memory without limit.
//
// # Usage
//
//	c := cache.NewLRU[string, *regexp.Regexp](128)
//	re, err := c.GetOrLoad(pattern, func(p string) (*regexp.Regexp, error) {
//		return regexp.Compile(p)
//	})
//
// Failed loads are not cached, so a later call retries the loader.
package cache
