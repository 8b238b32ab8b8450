package decomposition_test

import (
	"fmt"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/decomposition"
	"github.com/katalvlaran/photonic/lib"
	"github.com/katalvlaran/photonic/lib/symb"
	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
)

// ExampleDecompose rebuilds a random 3-mode unitary as a Reck triangle of
// Mach–Zehnder blocks with an input phase layer.
func ExampleDecompose() {
	target, _ := matrix.RandomUnitary(3, matrix.RNGFromSeed(2024))

	mzi := circuit.MustNew(2).
		Then(circuit.Must(symb.BS())).
		Then(circuit.Must(symb.PS(lib.Param(param.MustNew("phi_a"))))).
		Then(circuit.Must(symb.BS())).
		Then(circuit.Must(symb.PS(lib.Param(param.MustNew("phi_b")))))

	c, err := decomposition.Decompose(target, mzi,
		decomposition.WithShape(circuit.Triangle),
		decomposition.WithPhaseShifters(func(i int) circuit.Element {
			return circuit.Must(symb.PS(lib.Param(param.MustNew(fmt.Sprintf("phi_%d", i)))))
		}))
	if err != nil {
		fmt.Println(err)
		return
	}

	u, _ := c.ComputeUnitary()
	ok, _ := matrix.AllClose(u, target, 0, 1e-7)
	fmt.Println("components:", c.NComponents())
	fmt.Println("depths:", c.Depths())
	fmt.Println("reconstructed:", ok)
	// Output:
	// components: 15
	// depths: [9 9 3]
	// reconstructed: true
}
