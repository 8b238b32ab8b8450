// Package photonic is an in-memory toolkit for linear-optical quantum
// circuits: compose beam splitters, phase shifters and polarization optics
// into a global unitary, synthesise meshes for arbitrary unitaries, and
// simulate Fock states through them.
//
// 🚀 What is inside?
//
//	• Parameters: named real values, bound or free, with bounds and periodicity
//	• Symbolic unitaries: expression trees over free parameters, evaluated on demand
//	• Circuits: nested placements with per-mode depths and generic interferometers
//	• Component libraries: two beam-splitter conventions (symb, phys)
//	• Decomposition: Reck (triangle) and Clements (rectangle) meshes of any 2-mode template
//	• Backends: Naive (permanents) and SLOS (creation-operator recurrence)
//	• Analyser: input × output probability tables
//
// Subpackages:
//
//	param/          — Parameter, Set, uniqueness checks
//	symbolic/       — Expr trees and symbolic matrices
//	matrix/         — dense complex matrices, unitarity checks, QR, random unitaries
//	circuit/        — Component, Circuit, GenericInterferometer
//	lib/symb, phys  — component constructors in two conventions
//	fock/           — BasicState, StateVector, Fock-space enumeration
//	backend/        — Naive and SLOS simulators, registry
//	decomposition/  — unitary → template mesh
//	analyser/       — probability tables
//
// Quick ASCII example (two balanced splitters in series swap the modes):
//
//	0 ──╮╭──╮╭── 0
//	    BS  BS
//	1 ──╯╰──╯╰── 1
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/photonic
package photonic
