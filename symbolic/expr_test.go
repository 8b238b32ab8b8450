package symbolic_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"github.com/katalvlaran/photonic/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantFolding(t *testing.T) {
	e := symbolic.Add(symbolic.Real(1), symbolic.Mul(symbolic.I, symbolic.I))
	assert.True(t, symbolic.IsConst(e))
	v, err := e.Eval()
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v)

	assert.Equal(t, symbolic.Zero, symbolic.Mul(symbolic.Zero, symbolic.VarOf(param.MustNew("x"))))
}

func TestExactTrigOnRealConstants(t *testing.T) {
	v, _ := symbolic.Cos(symbolic.Real(0)).Eval()
	assert.Equal(t, complex128(1), v)

	v, _ = symbolic.Sqrt(symbolic.Real(1)).Eval()
	assert.Equal(t, complex128(1), v)

	v, _ = symbolic.ExpI(symbolic.Real(math.Pi / 2)).Eval()
	assert.InDelta(t, 0, real(v), 1e-16)
	assert.Equal(t, 1.0, imag(v))

	v, _ = symbolic.Sqrt(symbolic.Real(-4)).Eval()
	assert.Equal(t, complex128(2i), v)
}

func TestFreeVariableFailsFast(t *testing.T) {
	theta := param.MustNew("theta")
	e := symbolic.Cos(symbolic.Of(theta))
	assert.False(t, symbolic.IsConst(e))
	assert.Equal(t, "cos(theta)", e.String())

	_, err := e.Eval()
	require.ErrorIs(t, err, symbolic.ErrUnbound)
	assert.Contains(t, err.Error(), "theta")

	require.NoError(t, theta.SetValue(math.Pi))
	v, err := e.Eval()
	require.NoError(t, err)
	assert.InDelta(t, -1, real(v), 1e-15)
}

func TestOfBoundParameterIsConstant(t *testing.T) {
	p := param.MustNew("phi", param.WithValue(0.25))
	assert.True(t, symbolic.IsConst(symbolic.Of(p)))
	assert.False(t, symbolic.IsConst(symbolic.VarOf(p)))
}

func TestParametersDiscoveryOrder(t *testing.T) {
	a, b := param.MustNew("a"), param.MustNew("b")
	e := symbolic.Add(symbolic.Sin(symbolic.VarOf(b)), symbolic.Mul(symbolic.VarOf(a), symbolic.VarOf(b)))
	ps := symbolic.Parameters(e)
	require.Len(t, ps, 2)
	assert.Same(t, b, ps[0])
	assert.Same(t, a, ps[1])
}

func TestStringForms(t *testing.T) {
	x := symbolic.VarOf(param.MustNew("x"))
	assert.Equal(t, "I", symbolic.I.String())
	assert.Equal(t, "-x", symbolic.Neg(x).String())
	assert.Equal(t, "exp(I*x)", symbolic.ExpI(x).String())
	assert.Equal(t, "0.5", symbolic.Real(0.5).String())
}

func TestMatrixNumericMatchesDense(t *testing.T) {
	theta := param.MustNew("theta")
	c, s := symbolic.Cos(symbolic.VarOf(theta)), symbolic.Sin(symbolic.VarOf(theta))
	rot := symbolic.MustFromRows([][]symbolic.Expr{{c, symbolic.Mul(symbolic.I, s)}, {symbolic.Mul(symbolic.I, s), c}})

	_, err := rot.Numeric()
	require.ErrorIs(t, err, symbolic.ErrUnbound)
	assert.Len(t, rot.Parameters(), 1)
	assert.False(t, rot.IsNumeric())

	require.NoError(t, theta.SetValue(math.Pi/4))
	sq, err := symbolic.MatMul(rot, rot)
	require.NoError(t, err)
	d, err := sq.Numeric()
	require.NoError(t, err)

	want := matrix.MustFromRows([][]complex128{{0, 1i}, {1i, 0}})
	ok, err := matrix.AllClose(d, want, 0, 1e-15)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApplyLeftEmbedsBlock(t *testing.T) {
	acc, err := symbolic.Identity(3)
	require.NoError(t, err)
	ps := symbolic.MustFromRows([][]symbolic.Expr{{symbolic.ExpI(symbolic.Real(math.Pi))}})

	out, err := symbolic.ApplyLeft(ps, acc, []int{2})
	require.NoError(t, err)
	assert.True(t, out.IsNumeric())
	d, _ := out.Numeric()
	assert.InDelta(t, 0, cmplx.Abs(d.Elem(2, 2)+1), 1e-15)
	assert.Equal(t, complex128(1), d.Elem(0, 0))

	_, err = symbolic.ApplyLeft(ps, acc, []int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = symbolic.MatMul(ps, acc)
	require.ErrorIs(t, err, symbolic.ErrShape)
}
