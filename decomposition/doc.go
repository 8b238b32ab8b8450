// Package decomposition rewrites an n×n unitary as a mesh of copies of a
// 2-mode template element whose free parameters are solved numerically.
//
// Two layouts are supported:
//
//   - Triangle (Reck): columns k = n-1 … 1 are cleared top-down by
//     multiplying rows (i, i+1) from the left with the inverse of a template
//     copy. The remaining diagonal D becomes an input phase layer:
//
//     U = T_1 · T_2 ⋯ T_N · D
//
//   - Rectangle (Clements): anti-diagonals are cleared alternately from the
//     right (columns) and from the left (rows). Left blocks are then moved
//     through D one by one (T·D = D'·T'), so the phase layer ends up at the
//     output.
//
// Each site is a small root-finding problem over the template's free
// parameters: Nelder–Mead from seeded random starts, then a damped
// Gauss–Newton polish with a finite-difference Jacobian. Bounded parameters
// are searched through a smooth transform so the solver never leaves their
// range; periodic ones wrap.
//
// A site that stays above precision after every restart fails the whole call
// with ErrNoSolution. Callers treat that as "this template cannot express
// the target", not as a bug. Solved copies carry fixed parameters under the
// template's names, so any number of them coexist in one circuit.
//
// Without a phase-shifter generator the result equals the target up to
// per-mode phases (input phases for Triangle, output phases for Rectangle).
//
// The template's own free parameters are restored to unbound before return.
package decomposition
