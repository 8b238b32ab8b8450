package lib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/photonic/lib"
	"github.com/katalvlaran/photonic/lib/phys"
	"github.com/katalvlaran/photonic/param"
)

func TestResolveAllDefaultsAndValues(t *testing.T) {
	args, err := lib.ResolveAll(
		[]lib.Spec{lib.Unit("R", 0.5), lib.Angle("phi", 0)},
		[]lib.Arg{{}, lib.Value(0.25)},
	)
	require.NoError(t, err)
	require.Len(t, args, 2)

	v, ok := args[0].Param.Value()
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
	assert.True(t, args[1].Param.IsFixed())
}

func TestResolveAllInstallsBounds(t *testing.T) {
	phi := param.MustNew("phi")
	_, err := lib.ResolveAll([]lib.Spec{lib.Angle("phi", 0)}, []lib.Arg{lib.Param(phi)})
	require.NoError(t, err)

	lo, hi := phi.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, param.TwoPi, hi)
	assert.True(t, phi.IsPeriodic())
}

func TestDuplicateHandlesLeaveBoundsUntouched(t *testing.T) {
	a, b := param.MustNew("phi"), param.MustNew("phi")

	_, err := phys.BS(phys.PhiA(lib.Param(a)), phys.PhiB(lib.Param(b)))
	require.ErrorIs(t, err, param.ErrDuplicate)

	for _, p := range []*param.Parameter{a, b} {
		assert.False(t, p.HasBounds())
		assert.False(t, p.IsPeriodic())
	}
}

func TestOutOfRangeHandleLeavesOthersUntouched(t *testing.T) {
	phi := param.MustNew("phi")
	r := param.MustNew("R", param.WithValue(2))

	_, err := lib.ResolveAll(
		[]lib.Spec{lib.Angle("phi", 0), lib.Unit("R", 0.5)},
		[]lib.Arg{lib.Param(phi), lib.Param(r)},
	)
	require.ErrorIs(t, err, param.ErrRange)
	assert.False(t, phi.HasBounds())
	assert.False(t, r.HasBounds())
}
