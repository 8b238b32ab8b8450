// SPDX-License-Identifier: MIT
// Package: photonic/backend
//
// registry.go — backend identifiers to constructors.

package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/matrix"
)

// DefaultBackend is used when an empty identifier is requested.
const DefaultBackend = SLOSName

// Constructor builds a backend for a unitary.
type Constructor func(u *matrix.Dense, opts ...Option) (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{
		NaiveName: func(u *matrix.Dense, opts ...Option) (Backend, error) { return NewNaive(u, opts...) },
		SLOSName:  func(u *matrix.Dense, opts ...Option) (Backend, error) { return NewSLOS(u, opts...) },
	}
)

// Get resolves a case-sensitive identifier; "" means DefaultBackend.
// Errors: ErrUnknownBackend.
func Get(name string) (Constructor, error) {
	if name == "" {
		name = DefaultBackend
	}
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Get(%q): %w", name, ErrUnknownBackend)
	}

	return ctor, nil
}

// Register adds a constructor under name. Panics on an empty name or nil ctor.
// Errors: ErrDuplicateBackend.
func Register(name string, ctor Constructor) error {
	if name == "" || ctor == nil {
		panic("backend: Register needs a name and a constructor")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateBackend)
	}
	registry[name] = ctor

	return nil
}

// Names lists registered identifiers in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// New resolves name and builds a backend for u.
func New(name string, u *matrix.Dense, opts ...Option) (Backend, error) {
	ctor, err := Get(name)
	if err != nil {
		return nil, err
	}

	return ctor(u, opts...)
}

// FromElement builds a backend for the element's numeric unitary. Free
// parameters surface as symbolic.ErrUnbound.
func FromElement(name string, e circuit.Element, opts ...Option) (Backend, error) {
	ctor, err := Get(name)
	if err != nil {
		return nil, err
	}
	u, err := circuit.Unitary(e)
	if err != nil {
		return nil, fmt.Errorf("FromElement(%q): %w", name, err)
	}

	return ctor(u, opts...)
}
