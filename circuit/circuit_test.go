package circuit_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/lib"
	"github.com/katalvlaran/photonic/lib/phys"
	"github.com/katalvlaran/photonic/lib/symb"
	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"github.com/katalvlaran/photonic/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func requireClose(t *testing.T, want [][]complex128, got *matrix.Dense) {
	t.Helper()
	ok, err := matrix.AllClose(got, matrix.MustFromRows(want), 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "got\n%s", got)
}

func TestEmptyCircuitIsIdentity(t *testing.T) {
	c := circuit.MustNew(4)
	u, err := c.ComputeUnitary()
	require.NoError(t, err)
	id, _ := matrix.Identity(4)
	assert.Equal(t, id.Rows2D(), u.Rows2D())
	assert.Equal(t, []int{0, 0, 0, 0}, c.Depths())
	assert.Zero(t, c.NComponents())

	s, err := c.ComputeSymbolic()
	require.NoError(t, err)
	assert.True(t, s.IsNumeric())
}

func TestNewRejectsNonPositiveModes(t *testing.T) {
	_, err := circuit.New(0)
	require.ErrorIs(t, err, circuit.ErrInvalidModes)
}

func TestTwoBalancedSplittersSwap(t *testing.T) {
	c := circuit.MustNew(2).
		Then(circuit.Must(symb.BS())).
		Then(circuit.Must(symb.BS()))
	require.NoError(t, c.Err())

	u, err := c.ComputeUnitary()
	require.NoError(t, err)
	requireClose(t, [][]complex128{{0, 1i}, {1i, 0}}, u)
	assert.Equal(t, complex128(0), u.Elem(0, 0))
	assert.Equal(t, complex128(0), u.Elem(1, 1))
}

func TestAddRejectsFailedSubCircuit(t *testing.T) {
	sub := circuit.MustNew(2).
		Then(circuit.Must(symb.BS())).
		ThenAt(1, circuit.Must(symb.BS()))
	require.ErrorIs(t, sub.Err(), circuit.ErrInvalidFloor)
	require.Equal(t, 1, sub.Len())

	for _, merge := range []bool{true, false} {
		parent := circuit.MustNew(2)
		err := parent.Add([]int{0, 1}, sub, merge)
		require.ErrorIs(t, err, circuit.ErrInvalidFloor)
		assert.Zero(t, parent.Len())
		assert.Equal(t, []int{0, 0}, parent.Depths())
	}
}

func TestAddRejectsCycles(t *testing.T) {
	a := circuit.MustNew(2).Then(circuit.Must(symb.BS()))
	b := circuit.MustNew(2).Then(circuit.Must(phys.PS(lib.Value(0.5))))

	require.NoError(t, a.Add([]int{0, 1}, b, false))
	err := b.Add([]int{0, 1}, a, false)
	require.ErrorIs(t, err, circuit.ErrInvalidPlacement)
	assert.Equal(t, 1, b.Len())

	err = b.Add([]int{0, 1}, a, true)
	require.ErrorIs(t, err, circuit.ErrInvalidPlacement)
	assert.Equal(t, 1, b.Len())

	outer := circuit.MustNew(2)
	require.NoError(t, outer.Add([]int{0, 1}, a, false))
	require.ErrorIs(t, b.Add([]int{0, 1}, outer, false), circuit.ErrInvalidPlacement)

	u, err := outer.ComputeUnitary()
	require.NoError(t, err)
	assert.Equal(t, 2, u.Rows())
	assert.Equal(t, 2, outer.NComponents())
}

func TestCompositionWithPhaseShifter(t *testing.T) {
	h := complex(math.Sqrt2/2, 0)
	ps := func() circuit.Element { return circuit.Must(phys.PS(lib.Value(math.Pi / 2))) }

	top := circuit.MustNew(2).Then(circuit.Must(symb.BS())).Then(ps())
	require.NoError(t, top.Err())
	u, err := top.ComputeUnitary()
	require.NoError(t, err)
	requireClose(t, [][]complex128{{1i * h, -h}, {1i * h, h}}, u)

	bottom := circuit.MustNew(2).Then(circuit.Must(symb.BS())).ThenAt(1, ps())
	require.NoError(t, bottom.Err())
	u, err = bottom.ComputeUnitary()
	require.NoError(t, err)
	requireClose(t, [][]complex128{{h, 1i * h}, {-h, 1i * h}}, u)
}

func TestInvalidFloor(t *testing.T) {
	c := circuit.MustNew(2).
		Then(circuit.Must(phys.BS())).
		ThenAt(1, circuit.Must(phys.BS()))
	require.ErrorIs(t, c.Err(), circuit.ErrInvalidFloor)
	assert.Equal(t, 1, c.NComponents())

	// later links are no-ops once an error is recorded
	c.Then(circuit.Must(phys.BS()))
	assert.Equal(t, 1, c.NComponents())
}

func TestAddValidatesModes(t *testing.T) {
	bs := circuit.Must(phys.BS())
	cases := []struct {
		name  string
		modes []int
	}{
		{"wrong length", []int{0}},
		{"out of range", []int{2, 3}},
		{"negative", []int{-1, 0}},
		{"not increasing", []int{1, 0}},
		{"repeated", []int{1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := circuit.MustNew(3)
			err := c.Add(tc.modes, bs, true)
			require.ErrorIs(t, err, circuit.ErrInvalidPlacement)
			assert.Equal(t, []int{0, 0, 0}, c.Depths())
			assert.Zero(t, c.Len())
		})
	}
}

func TestDuplicateParameterNames(t *testing.T) {
	phi1, phi2 := param.MustNew("phi"), param.MustNew("phi")

	_, err := phys.BS(phys.PhiA(lib.Param(phi1)), phys.PhiB(lib.Param(phi2)))
	require.ErrorIs(t, err, param.ErrDuplicate)

	_, err = phys.BS(phys.PhiA(lib.Param(phi1)), phys.PhiB(lib.Param(phi1)))
	require.NoError(t, err)

	c := circuit.MustNew(2).
		Then(circuit.Must(symb.BS(symb.Phi(lib.Param(phi1))))).
		Then(circuit.Must(symb.BS(symb.Phi(lib.Param(phi2)))))
	require.ErrorIs(t, c.Err(), param.ErrDuplicate)
	assert.Equal(t, []int{1, 1}, c.Depths())

	alias := circuit.MustNew(2).
		Then(circuit.Must(symb.BS(symb.Phi(lib.Param(phi1))))).
		Then(circuit.Must(symb.BS(symb.Phi(lib.Param(phi1)))))
	require.NoError(t, alias.Err())
	require.Len(t, alias.Parameters(), 1)
	assert.Same(t, phi1, alias.Parameters()[0])
}

func TestSymbolicAndNumericPathsAgree(t *testing.T) {
	theta, phi := param.MustNew("theta"), param.MustNew("phi")
	bs := circuit.Must(symb.BS(symb.Theta(lib.Param(theta)), symb.Phi(lib.Param(phi))))

	_, err := bs.ComputeUnitary()
	require.ErrorIs(t, err, symbolic.ErrUnbound)

	s, err := bs.ComputeSymbolic()
	require.NoError(t, err)
	assert.Equal(t, "cos(theta)", s.At(0, 0).String())
	assert.Equal(t, "I*exp(-I*phi)*sin(theta)", s.At(0, 1).String())
	assert.Equal(t, "I*exp(I*phi)*sin(theta)", s.At(1, 0).String())

	require.NoError(t, theta.SetValue(0.3))
	require.NoError(t, phi.SetValue(1.1))
	num, err := bs.ComputeUnitary()
	require.NoError(t, err)
	viaSym, err := s.Numeric()
	require.NoError(t, err)
	ok, _ := matrix.AllClose(num, viaSym, 0, 1e-15)
	assert.True(t, ok)
	assert.True(t, num.IsUnitary(0))
}

func TestFreeReflectivityRendersSymbolically(t *testing.T) {
	r := param.MustNew("r")
	bs := circuit.Must(symb.BS(symb.R(lib.Param(r))))
	_, err := bs.ComputeUnitary()
	require.ErrorIs(t, err, symbolic.ErrUnbound)

	s, err := bs.ComputeSymbolic()
	require.NoError(t, err)
	assert.Equal(t, "sqrt(r)", s.At(0, 0).String())
	assert.Contains(t, s.At(0, 1).String(), "sqrt(")
	lo, hi := r.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestDepthsAndNComponents(t *testing.T) {
	ps := circuit.Must(phys.PS(lib.Value(0)))
	assert.Equal(t, []int{1}, ps.Depths())
	assert.Equal(t, 1, ps.NComponents())

	u1 := circuit.Must(circuit.NewUnitary("U1", circuit.Must(matrix.RandomUnitary(3, matrix.RNGFromSeed(1)))))
	u2 := circuit.Must(circuit.NewUnitary("U2", circuit.Must(matrix.RandomUnitary(3, matrix.RNGFromSeed(2)))))
	c := circuit.MustNew(3).
		Then(u1).
		ThenAt(0, circuit.Must(phys.PS(lib.Value(math.Pi/2)))).
		Then(u2)
	require.NoError(t, c.Err())
	assert.Equal(t, []int{3, 2, 2}, c.Depths())
	assert.Equal(t, 3, c.NComponents())
	assert.Contains(t, c.Describe(), "U1")
}

func TestNewUnitaryRejectsNonUnitary(t *testing.T) {
	_, err := circuit.NewUnitary("X", matrix.MustFromRows([][]complex128{{1, 1}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrNonUnitary)
}

func TestPerm(t *testing.T) {
	p := circuit.Must(circuit.NewPerm([]int{2, 0, 1}))
	u, err := p.ComputeUnitary()
	require.NoError(t, err)
	// input mode i goes to output mode perm[i]
	assert.Equal(t, complex128(1), u.Elem(2, 0))
	assert.Equal(t, complex128(1), u.Elem(0, 1))
	assert.Equal(t, complex128(1), u.Elem(1, 2))

	_, err = circuit.NewPerm([]int{0, 0})
	require.ErrorIs(t, err, circuit.ErrInvalidPermutation)
}

func TestLeavesDescendIntoUnmergedCircuits(t *testing.T) {
	c := circuit.MustNew(3)
	comps := [][]int{{0, 1}, {1, 2}, {0, 1}}
	for k, modes := range comps {
		bs := circuit.Must(phys.BS(phys.R(lib.Value(1 / float64(k+1)))))
		require.NoError(t, c.Add(modes, bs, true))
	}

	d := circuit.MustNew(4)
	require.NoError(t, d.Add([]int{0, 1, 2}, c, false))
	require.NoError(t, d.Add([]int{2, 3}, circuit.Must(phys.BS(phys.R(lib.Value(0.25)))), true))
	comps = append(comps, []int{2, 3})

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 4, d.NComponents())

	i := 0
	for modes, leaf := range d.Leaves() {
		r, ok := leaf.Param("R")
		require.True(t, ok)
		v, _ := r.Value()
		assert.InDelta(t, 1/float64(i+1), v, 1e-15)
		assert.Equal(t, comps[i], modes)
		i++
	}
	assert.Equal(t, 4, i)

	// merged and unmerged placements compose to the same unitary
	e := circuit.MustNew(4)
	require.NoError(t, e.Add([]int{0, 1, 2}, c, true))
	require.NoError(t, e.Add([]int{2, 3}, circuit.Must(phys.BS(phys.R(lib.Value(0.25)))), true))
	assert.Equal(t, 4, e.Len())
	assert.Equal(t, d.Depths(), e.Depths())
	ud, err := d.ComputeUnitary()
	require.NoError(t, err)
	ue, err := e.ComputeUnitary()
	require.NoError(t, err)
	ok, _ := matrix.AllClose(ud, ue, 0, 1e-15)
	assert.True(t, ok)
}

func TestSubstituteKeepsOriginal(t *testing.T) {
	x := param.MustNew("x")
	c := circuit.MustNew(2).Then(circuit.Must(symb.PS(lib.Param(x))))
	require.NoError(t, c.Err())

	fixed := param.Fixed("x", math.Pi)
	cp := c.Substitute(map[*param.Parameter]*param.Parameter{x: fixed})
	assert.Empty(t, cp.Parameters())
	u, err := cp.ComputeUnitary()
	require.NoError(t, err)
	assert.InDelta(t, -1, real(u.Elem(0, 0)), 1e-15)

	_, err = c.ComputeUnitary()
	require.ErrorIs(t, err, symbolic.ErrUnbound)
}

func genPhysBS(i int) circuit.Element {
	return circuit.Must(phys.BS(phys.R(lib.Param(param.MustNew(fmt.Sprintf("R%d", i))))))
}

func TestGenericInterferometerCounts(t *testing.T) {
	c, err := circuit.GenericInterferometer(5, genPhysBS)
	require.NoError(t, err)
	assert.Len(t, c.Parameters(), 10)

	c, err = circuit.GenericInterferometer(5, genPhysBS, circuit.WithDepth(1))
	require.NoError(t, err)
	assert.Len(t, c.Parameters(), 2)

	c, err = circuit.GenericInterferometer(5, genPhysBS, circuit.WithDepth(2))
	require.NoError(t, err)
	assert.Len(t, c.Parameters(), 4)

	tri, err := circuit.GenericInterferometer(5, genPhysBS, circuit.WithShape(circuit.Triangle))
	require.NoError(t, err)
	assert.Len(t, tri.Parameters(), 10)
	assert.Equal(t, []int{4, 7, 5, 3, 1}, tri.Depths())
}

func TestMeshPairsOrderAndDepth(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 0, 1, 0}, circuit.MeshPairs(4, circuit.Triangle, 0))
	assert.Equal(t, []int{0, 2, 1, 0, 2, 1}, circuit.MeshPairs(4, circuit.Rectangle, 0))

	// One block per mode: both shapes keep only the disjoint pairs.
	assert.Equal(t, []int{0, 2}, circuit.MeshPairs(4, circuit.Triangle, 1))
	assert.Equal(t, []int{0, 2}, circuit.MeshPairs(4, circuit.Rectangle, 1))

	// Middle modes join every column, so a limit of 2 stops them after two.
	assert.Equal(t, []int{0, 2, 1}, circuit.MeshPairs(4, circuit.Rectangle, 2))
}

func TestGenericInterferometerPhaseLayer(t *testing.T) {
	ps := func(i int) circuit.Element {
		return circuit.Must(phys.PS(lib.Param(param.MustNew(fmt.Sprintf("phi%d", i)))))
	}
	c, err := circuit.GenericInterferometer(3, genPhysBS, circuit.WithPhaseShifters(ps))
	require.NoError(t, err)
	assert.Equal(t, 6, c.NComponents())
	assert.Len(t, c.Parameters(), 6)
	assert.Equal(t, "PS", c.Placements()[0].Element.Name())
}

func TestParseShape(t *testing.T) {
	s, err := circuit.ParseShape("triangle")
	require.NoError(t, err)
	assert.Equal(t, circuit.Triangle, s)
	assert.Equal(t, "rectangle", circuit.Rectangle.String())

	_, err = circuit.ParseShape("hexagon")
	require.ErrorIs(t, err, circuit.ErrUnknownShape)
}
