// Package param implements the named scalar parameters that drive optical
// components.
//
// A Parameter is either fixed (a constant captured when a component receives a
// plain number) or variable (a user-visible unknown that may be bound and
// re-bound with SetValue). Identity is the pointer: two components that hold
// the same *Parameter are linked and always evaluate with the same value, while
// two distinct variable parameters carrying the same name are a composition
// error (ErrDuplicate).
//
// Bounds:
//
//	New("phi")                             // free, unbounded
//	New("phi", WithBounds(0, 2*math.Pi))   // free, bounded
//	New("R", WithValue(0.3))               // variable, bound to 0.3
//	Fixed("theta", math.Pi/4)              // constant
//
// Components apply their own defaults through ApplyDefaultBounds, which only
// acts on parameters that are still unbounded.
package param
