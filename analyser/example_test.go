package analyser_test

import (
	"fmt"

	"github.com/katalvlaran/photonic/analyser"
	"github.com/katalvlaran/photonic/backend"
	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/fock"
	"github.com/katalvlaran/photonic/lib/symb"
)

// ExampleNew tabulates Hong–Ou–Mandel interference on a balanced splitter.
func ExampleNew() {
	b, _ := backend.FromElement(backend.SLOSName, circuit.Must(symb.BS()))
	a, _ := analyser.New(b, []fock.BasicState{fock.MustParse("|1,1>")}, analyser.AllStates(), analyser.WithPrune())
	table, _ := a.Table()
	for j, out := range a.Outputs() {
		fmt.Printf("|1,1> -> %s: %s\n", out, analyser.FormatProbability(table[0][j], true))
	}
	// Output:
	// |1,1> -> |2,0>: 1/2
	// |1,1> -> |0,2>: 1/2
}
