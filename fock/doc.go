// Package fock provides photon-number (Fock) states.
//
// BasicState is an immutable occupation vector. Literals use the ket syntax
// "|n1,n2,...,nk>" and round-trip through String. Key gives a comparable
// value for maps.
//
// All(m, n) lazily enumerates every state of m modes holding n photons, each
// exactly once, in descending lexicographic order:
//
//	All(2, 2) → |2,0>, |1,1>, |0,2>
//
// Every call starts a fresh enumeration. Count(m, n) = C(n+m-1, n).
//
// StateVector is an ordered superposition of basic states with complex
// amplitudes, as returned by a backend's Evolve.
package fock
