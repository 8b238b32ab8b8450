package param_test

import (
	"testing"

	"github.com/katalvlaran/photonic/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDedupByIdentity(t *testing.T) {
	a := param.MustNew("a")
	b := param.MustNew("b")
	s := param.NewSet(a, b, a, nil)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, []*param.Parameter{a, b}, s.Items())
	assert.True(t, s.Contains(b))

	got, ok := s.ByName("b")
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestCheckUnique(t *testing.T) {
	phi1 := param.MustNew("phi")
	phi2 := param.MustNew("phi")

	require.NoError(t, param.CheckUnique(phi1, phi1))
	require.ErrorIs(t, param.CheckUnique(phi1, phi2), param.ErrDuplicate)

	// fixed parameters never collide
	require.NoError(t, param.CheckUnique(param.Fixed("theta", 1), param.Fixed("theta", 2)))
	require.NoError(t, param.CheckUnique(param.MustNew("theta"), param.Fixed("theta", 2)))
}

func TestVariablesAndFree(t *testing.T) {
	free := param.MustNew("x")
	bound := param.MustNew("y", param.WithValue(1))
	fixed := param.Fixed("z", 2)
	ps := []*param.Parameter{free, bound, fixed}

	assert.Equal(t, []*param.Parameter{free, bound}, param.Variables(ps))
	assert.Equal(t, []*param.Parameter{free}, param.Free(ps))
}
