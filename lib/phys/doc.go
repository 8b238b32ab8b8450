// Package phys is the physical component family.
//
// Conventions:
//
//	BS = ⎡ cos θ e^{iφa}           i sin θ e^{iφb} ⎤
//	     ⎣ i sin θ e^{i(φa-φb+φd)}  cos θ e^{iφd}  ⎦
//
// with R = cos²θ = 1/2, φa = 0, φb = 3π/2 and φd = π by default, which gives
// the real splitter [[c, s], [s, -c]]. PS(φ) = e^{iφ}.
//
// Polarization elements act on an (H, V) pair of modes:
//   - WP(δ, ξ) = cos δ·I + i sin δ·(cos 2ξ·σz + sin 2ξ·σx)
//   - HWP(ξ) = WP(π/2, ξ), QWP(ξ) = WP(π/4, ξ)
//   - PR(δ) rotates the polarization by δ.
//
// PBS acts on (0H, 0V, 1H, 1V): H is transmitted to the other spatial mode,
// V is reflected in place.
package phys
