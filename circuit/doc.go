// Package circuit composes linear-optical elements into circuits and computes
// their global unitary.
//
// What:
//   - Element is the capability shared by leaves (Component) and composites
//     (Circuit): mode count, parameters, numeric and symbolic unitary, per-mode
//     depths and a recursive leaf count.
//   - Component is a leaf built from ordered, keyed parameters and a builder
//     that returns a symbolic matrix. NewUnitary and NewPerm wrap fixed blocks.
//   - Circuit holds ordered placements (modes, element). Add validates modes,
//     checks parameter-name uniqueness over the combined structure and updates
//     the per-mode depth counters transactionally. Then/ThenAt mirror the
//     "//" composition operator.
//   - GenericInterferometer builds triangle or rectangle meshes of 2-mode blocks.
//
// Unitary assembly:
//
//	U = E(u_k, modes_k) · … · E(u_1, modes_1)
//
// where E embeds a block into the identity at the placement's modes. The first
// placement is the first element the signal meets.
//
// Numeric vs symbolic:
//   - ComputeUnitary requires every parameter bound (symbolic.ErrUnbound).
//   - ComputeSymbolic keeps free parameters as variables. Both paths share one
//     builder, so they agree whenever everything is bound.
//
// Depths:
//
//	Adding element e on modes (m_0..m_k) adds e.Depths()[i] to depth[m_i].
//	A leaf contributes 1 per mode; a sub-circuit contributes its own depths,
//	merged or not. NComponents counts leaves recursively.
//
// Errors: ErrInvalidPlacement, ErrInvalidFloor, ErrInvalidModes,
// ErrBadUnitaryShape, ErrInvalidPermutation, ErrUnknownShape, ErrNilElement,
// plus param.ErrDuplicate from the uniqueness check.
//
// Concurrency: a Circuit is not safe for concurrent mutation. Parameters must
// not change while a unitary is being computed.
package circuit
