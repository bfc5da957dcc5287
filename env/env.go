// Package env abstracts environment-variable resolution so locale
// detection can be exercised without mutating the process environment.
package env

import "os"

// Resolver resolves environment variables.
type Resolver interface {
	// Get returns the value of the variable named by key, or "" when the
	// variable is not present.
	Get(key string) string
}

// OS resolves variables from the process environment.
type OS struct{}

// Get returns the value of the environment variable named by key.
func (OS) Get(key string) string {
	return os.Getenv(key)
}

// Map resolves variables from a fixed map. Intended for tests.
type Map map[string]string

// Get returns the mapped value for key, or "" when absent.
func (m Map) Get(key string) string {
	return m[key]
}
