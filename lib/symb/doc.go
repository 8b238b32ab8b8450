// Package symb is the symmetric component family.
//
// Conventions:
//
//	BS(θ, φ) = ⎡ cos θ           i e^{-iφ} sin θ ⎤
//	           ⎣ i e^{iφ} sin θ  cos θ           ⎦
//
// with θ = π/4 and φ = 0 by default; given a reflectivity R instead of θ,
// cos θ = √R and sin θ = √(1-R). PS(φ) = e^{iφ}. PBS acts on (0H, 0V, 1H, 1V),
// transmits H across with the splitter's factor i and reflects V in place.
//
// Arguments are lib.Value(x) for a number or lib.Param(p) for a parameter.
package symb
