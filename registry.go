package easel

import (
	"fmt"
	"sort"
	"sync"
)

// HostFactory is a function that creates a new CanvasHost for the given
// canvas dimensions. Factories are registered via RegisterHost() and
// called by NewHost().
type HostFactory func(width, height int) CanvasHost

// Registry state - protected by mutex for thread-safe access.
var (
	hostMu sync.RWMutex
	hosts  = make(map[string]HostFactory)
)

// RegisterHost registers a host factory with the given name.
// This function is typically called from init() in host packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    easel.RegisterHost("soft", func(w, h int) easel.CanvasHost {
//	        return softcanvas.New(w, h)
//	    })
//	}
//
// RegisterHost panics if factory is nil or a host with the same name is
// already registered, so duplicate registrations are caught during
// program initialization rather than silently overwriting hosts.
func RegisterHost(name string, factory HostFactory) {
	hostMu.Lock()
	defer hostMu.Unlock()

	if factory == nil {
		panic("easel: RegisterHost factory is nil")
	}
	if _, dup := hosts[name]; dup {
		panic("easel: RegisterHost called twice for " + name)
	}
	hosts[name] = factory
}

// UnregisterHost removes a host from the registry.
// This is primarily useful for testing to clean up between tests.
// If the host is not registered, this is a no-op.
func UnregisterHost(name string) {
	hostMu.Lock()
	defer hostMu.Unlock()
	delete(hosts, name)
}

// NewHost creates a new CanvasHost instance by name.
// The name must match a previously registered host.
//
// Example:
//
//	import _ "github.com/gogpu/easel/softcanvas" // Register "soft" host
//
//	host, err := easel.NewHost("soft", 1024, 768)
//	if err != nil {
//	    // Handle error - host not registered
//	}
//
// Returns an error if the host is not registered.
// The error message includes a hint about forgotten imports.
func NewHost(name string, width, height int) (CanvasHost, error) {
	hostMu.RLock()
	factory, ok := hosts[name]
	hostMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("easel: unknown canvas host %q (forgotten import?)", name)
	}
	return factory(width, height), nil
}

// MustHost creates a new CanvasHost by name, panicking on error.
// This is useful when host availability is guaranteed.
func MustHost(name string, width, height int) CanvasHost {
	h, err := NewHost(name, width, height)
	if err != nil {
		panic(err)
	}
	return h
}

// Hosts returns a sorted list of registered host names.
// The list is sorted alphabetically for consistent output.
func Hosts() []string {
	hostMu.RLock()
	defer hostMu.RUnlock()

	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsHostRegistered checks if a host with the given name is registered.
func IsHostRegistered(name string) bool {
	hostMu.RLock()
	defer hostMu.RUnlock()
	_, ok := hosts[name]
	return ok
}
