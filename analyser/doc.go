// Package analyser tabulates transition probabilities of a backend over sets
// of input and output Fock states:
//
//	table[i][j] = Prob(inputs[i], outputs[j])
//
// Outputs come from a Selector: an explicit list (States), the inputs
// themselves (SameAsInputs, the default), or every state whose photon count
// matches some input (AllStates, literal "*"). Wildcard columns are ordered
// by photon count, then in fock.All order.
//
// Rows are computed on first access (Prob) or all at once (Compute). With
// WithPrune, Compute drops wildcard columns that no input reaches.
//
// Render draws the table with lipgloss; WithFractions prints probabilities as
// small fractions ("1/2") when a continued-fraction expansion with a bounded
// denominator matches them.
//
// An Analyser drives a backend and shares its lack of concurrency safety.
package analyser
