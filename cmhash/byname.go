package cmhash

import (
	"fmt"
	"sort"
	"sync"
)

// Registration pairs a Hasher with its digest size.
type Registration struct {
	Hasher   Hasher
	HashSize int
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Registration{}
)

// Register makes a Hasher available to [ByName].
// It is intended to be called from an init function of the package
// that implements the Hasher.
//
// Register panics if name is already registered or if the registration is invalid.
func Register(name string, r Registration) {
	if r.Hasher == nil || r.HashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: invalid registration for hasher %q (hasher=%v, size=%d)",
			name, r.Hasher, r.HashSize,
		))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[name]; ok {
		panic(fmt.Errorf("BUG: hasher %q registered twice", name))
	}
	registry[name] = r
}

// ByName returns the Hasher registered under name.
func ByName(name string) (Registration, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	r, ok := registry[name]
	if !ok {
		return Registration{}, UnknownHasherError{Name: name}
	}
	return r, nil
}

// Names returns the sorted names of every registered Hasher.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// UnknownHasherError is returned from [ByName]
// when no Hasher was registered under the requested name.
type UnknownHasherError struct {
	Name string
}

func (e UnknownHasherError) Error() string {
	return "unknown hasher " + e.Name
}
