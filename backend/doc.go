// Package backend simulates Fock states through a fixed unitary.
//
// Two strong simulators implement Backend:
//
//   - Naive: each amplitude is a permanent of the unitary restricted to the
//     photons' rows and columns (repeated by occupation):
//
//     ⟨out|U|in⟩ = perm(U[out, in]) / √(Π in_k! · Π out_k!)
//
//     The permanent is expanded over permutations (O(n!·n)); PermanentGlynn
//     gives the same value in O(2ⁿ·n) and is used to cross-check.
//
//   - SLOS: applies one creation operator per input photon to build the full
//     output distribution (O(n·m·C(n+m-1,n))). Partial tables are memoised by
//     the prefix of input photon modes, so inputs sharing a prefix reuse work.
//
// Both agree on every Prob/Amplitude; sampling draws by inverse CDF over the
// AllStates enumeration with a seeded *rand.Rand (seed 0 ⇒ 1).
//
// The registry maps case-sensitive identifiers ("Naive", "SLOS") to
// constructors; "" resolves to DefaultBackend. Unknown names fail with
// ErrUnknownBackend.
//
// Counters (promauto, default registry):
//
//	photonic_backend_prob_queries_total{backend}
//	photonic_backend_permanents_total
//	photonic_backend_slos_cache_hits_total
//	photonic_backend_samples_total{backend}
//
// Concurrency: backends hold a cache and an RNG and are not safe for
// concurrent use. The registry is.
package backend
