package phys_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/lib"
	"github.com/katalvlaran/photonic/lib/phys"
	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSplitterIsRealAndBalanced(t *testing.T) {
	u, err := circuit.Must(phys.BS()).ComputeUnitary()
	require.NoError(t, err)
	h := math.Sqrt2 / 2
	want := matrix.MustFromRows([][]complex128{{complex(h, 0), complex(h, 0)}, {complex(h, 0), complex(-h, 0)}})
	ok, err := matrix.AllClose(u, want, 0, 1e-15)
	require.NoError(t, err)
	assert.True(t, ok, "got\n%s", u)
}

func TestReflexivity(t *testing.T) {
	u, err := circuit.Must(phys.BS(phys.R(lib.Value(1.0 / 3)))).ComputeUnitary()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.0/3), real(u.Elem(0, 0)), 1e-15)
	assert.True(t, u.IsUnitary(0))
}

func TestThetaForm(t *testing.T) {
	u, err := circuit.Must(phys.BS(phys.Theta(lib.Value(math.Pi / 3)))).ComputeUnitary()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, real(u.Elem(0, 0)), 1e-15)
	assert.True(t, u.IsUnitary(0))

	_, err = phys.BS(phys.Theta(lib.Value(1)), phys.R(lib.Value(0.5)))
	require.ErrorIs(t, err, lib.ErrConflictingArgs)
}

func TestAliasedPhases(t *testing.T) {
	phi := param.MustNew("phi")
	bs, err := phys.BS(phys.PhiA(lib.Param(phi)), phys.PhiB(lib.Param(phi)))
	require.NoError(t, err)
	require.Len(t, bs.Parameters(), 1)

	require.NoError(t, phi.SetValue(0.7))
	u, err := bs.ComputeUnitary()
	require.NoError(t, err)
	assert.True(t, u.IsUnitary(0))
}

func TestPolarizingBeamSplitter(t *testing.T) {
	u, err := circuit.Must(phys.PBS()).ComputeUnitary()
	require.NoError(t, err)
	require.Equal(t, 4, u.Rows())
	// H crosses, V stays
	assert.Equal(t, complex128(1), u.Elem(2, 0))
	assert.Equal(t, complex128(1), u.Elem(1, 1))
	assert.Equal(t, complex128(1), u.Elem(0, 2))
	assert.Equal(t, complex128(1), u.Elem(3, 3))
}

func TestWavePlates(t *testing.T) {
	hwp, err := circuit.Must(phys.HWP(lib.Value(0))).ComputeUnitary()
	require.NoError(t, err)
	ok, _ := matrix.AllClose(hwp, matrix.MustFromRows([][]complex128{{1i, 0}, {0, -1i}}), 0, 1e-15)
	assert.True(t, ok, "got\n%s", hwp)

	// a half-wave plate at 45° swaps H and V up to a global i
	hwp, err = circuit.Must(phys.HWP(lib.Value(math.Pi / 4))).ComputeUnitary()
	require.NoError(t, err)
	ok, _ = matrix.AllClose(hwp, matrix.MustFromRows([][]complex128{{0, 1i}, {1i, 0}}), 0, 1e-15)
	assert.True(t, ok, "got\n%s", hwp)

	for _, xsi := range []float64{0.1, 1.3, 2.9} {
		for _, e := range []*circuit.Component{
			circuit.Must(phys.QWP(lib.Value(xsi))),
			circuit.Must(phys.WP(lib.Value(0.4), lib.Value(xsi))),
			circuit.Must(phys.PR(lib.Value(xsi))),
		} {
			u, err := e.ComputeUnitary()
			require.NoError(t, err)
			assert.True(t, u.IsUnitary(0), e.Describe())
		}
	}

	pr, err := circuit.Must(phys.PR(lib.Value(math.Pi / 2))).ComputeUnitary()
	require.NoError(t, err)
	ok, _ = matrix.AllClose(pr, matrix.MustFromRows([][]complex128{{0, 1}, {-1, 0}}), 0, 1e-15)
	assert.True(t, ok)
}
