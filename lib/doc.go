// Package lib holds what the component families share: the Value/Param
// argument type that lets a constructor receive either a plain number or a
// (possibly free) parameter, and the resolution of defaults and bounds.
//
// Families live in sub-packages:
//   - lib/symb: symmetric beam-splitter convention (BS, PS, PBS, PERM).
//   - lib/phys: physical convention with polarization optics (BS, PS, PBS,
//     WP, HWP, QWP, PR, PERM).
package lib
