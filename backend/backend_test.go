package backend_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/photonic/backend"
	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/fock"
	"github.com/katalvlaran/photonic/lib"
	"github.com/katalvlaran/photonic/lib/phys"
	"github.com/katalvlaran/photonic/lib/symb"
	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"github.com/katalvlaran/photonic/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []string{"", backend.SLOSName, backend.NaiveName}

func unitaryOf(t *testing.T, e circuit.Element) *matrix.Dense {
	t.Helper()
	u, err := e.ComputeUnitary()
	require.NoError(t, err)

	return u
}

func TestBalancedSplitterHalfHalf(t *testing.T) {
	for _, e := range []circuit.Element{circuit.Must(symb.BS()), circuit.Must(phys.BS())} {
		for _, name := range names {
			b, err := backend.New(name, unitaryOf(t, e))
			require.NoError(t, err)
			in := fock.MustParse("|0,1>")
			want := map[string]float64{"|1,0>": 0.5, "|0,1>": 0.5}

			count := 0
			for out := range b.AllStates(in) {
				w, ok := want[out.String()]
				require.True(t, ok, out.String())
				p, err := b.Prob(in, out)
				require.NoError(t, err)
				assert.InDelta(t, w, p, 1e-15)
				count++
			}
			assert.Equal(t, len(want), count)
		}
	}
}

func TestExtremeReflectivitiesSampleDeterministically(t *testing.T) {
	cases := []struct {
		r    float64
		want string
	}{
		{1, "|0,1>"},
		{0, "|1,0>"},
	}
	for _, tc := range cases {
		u := unitaryOf(t, circuit.Must(symb.BS(symb.R(lib.Value(tc.r)))))
		for _, name := range names[1:] {
			b, err := backend.New(name, u, backend.WithSeed(7))
			require.NoError(t, err)
			for i := 0; i < 10; i++ {
				out, err := b.Sample(fock.MustParse("|0,1>"))
				require.NoError(t, err)
				require.Equal(t, tc.want, out.String())
			}
		}
	}
}

func TestNaiveAndSLOSAgree(t *testing.T) {
	u, err := matrix.RandomUnitary(4, matrix.RNGFromSeed(11))
	require.NoError(t, err)
	naive, err := backend.NewNaive(u)
	require.NoError(t, err)
	slos, err := backend.NewSLOS(u)
	require.NoError(t, err)

	inputs := []string{"|1,0,0,0>", "|1,1,0,0>", "|2,0,1,0>", "|1,1,1,0>", "|0,3,0,1>"}
	for _, lit := range inputs {
		in := fock.MustParse(lit)
		sum := 0.0
		seen := 0
		for out := range slos.AllStates(in) {
			pn, err := naive.Prob(in, out)
			require.NoError(t, err)
			ps, err := slos.Prob(in, out)
			require.NoError(t, err)
			require.InDelta(t, pn, ps, 1e-12, "%s -> %s", in, out)

			an, _ := naive.Amplitude(in, out)
			as, _ := slos.Amplitude(in, out)
			require.InDelta(t, real(an), real(as), 1e-12)
			require.InDelta(t, imag(an), imag(as), 1e-12)

			sum += ps
			seen++
		}
		assert.Equal(t, fock.Count(4, in.N()), seen)
		assert.InDelta(t, 1, sum, 1e-12, lit)
	}
}

func TestPermanentFormulasAgree(t *testing.T) {
	for n := 1; n <= 6; n++ {
		a, err := matrix.RandomUnitary(n, matrix.RNGFromSeed(int64(n)))
		require.NoError(t, err)
		p1, err := backend.Permanent(a)
		require.NoError(t, err)
		p2, err := backend.PermanentGlynn(a)
		require.NoError(t, err)
		assert.InDelta(t, real(p1), real(p2), 1e-12, "n=%d", n)
		assert.InDelta(t, imag(p1), imag(p2), 1e-12, "n=%d", n)
	}

	ones := matrix.MustFromRows([][]complex128{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	p, err := backend.Permanent(ones)
	require.NoError(t, err)
	assert.Equal(t, complex128(6), p)

	rect, _ := matrix.NewDense(2, 3)
	_, err = backend.Permanent(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestHongOuMandel(t *testing.T) {
	u := unitaryOf(t, circuit.Must(symb.BS()))
	for _, name := range names[1:] {
		b, err := backend.New(name, u)
		require.NoError(t, err)
		in := fock.MustParse("|1,1>")
		p, err := b.Prob(in, fock.MustParse("|1,1>"))
		require.NoError(t, err)
		assert.InDelta(t, 0, p, 1e-15)
		p, err = b.Prob(in, fock.MustParse("|2,0>"))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, p, 1e-15)
	}
}

func TestEvolve(t *testing.T) {
	u := unitaryOf(t, circuit.Must(phys.BS()))
	for _, name := range names[1:] {
		b, err := backend.New(name, u)
		require.NoError(t, err)
		v, err := b.Evolve(fock.MustParse("|1,0>"))
		require.NoError(t, err)
		assert.Equal(t, "0.707107*|1,0>+0.707107*|0,1>", v.String())
		assert.InDelta(t, 1, v.Norm(), 1e-15)
	}
}

func TestSamplingIsSeededAndConsistentWithProb(t *testing.T) {
	u, err := matrix.RandomUnitary(3, matrix.RNGFromSeed(5))
	require.NoError(t, err)
	in := fock.MustParse("|1,1,0>")

	a, _ := backend.NewSLOS(u, backend.WithSeed(99))
	b, _ := backend.NewNaive(u, backend.WithSeed(99))
	const draws = 4000
	freq := map[string]int{}
	for i := 0; i < draws; i++ {
		sa, err := a.Sample(in)
		require.NoError(t, err)
		sb, err := b.Sample(in)
		require.NoError(t, err)
		require.True(t, sa.Equal(sb))
		freq[sa.Key()]++
	}

	for out := range a.AllStates(in) {
		p, _ := a.Prob(in, out)
		got := float64(freq[out.Key()]) / draws
		// 5 sigma of a binomial proportion
		assert.InDelta(t, p, got, 5*math.Sqrt(p*(1-p)/draws)+1e-9, out.String())
	}
}

func TestPhotonAndModeMismatch(t *testing.T) {
	u := unitaryOf(t, circuit.Must(symb.BS()))
	for _, name := range names[1:] {
		b, err := backend.New(name, u)
		require.NoError(t, err)

		p, err := b.Prob(fock.MustParse("|1,0>"), fock.MustParse("|1,1>"))
		require.NoError(t, err)
		assert.Zero(t, p)

		_, err = b.Amplitude(fock.MustParse("|1,0>"), fock.MustParse("|1,1>"))
		require.ErrorIs(t, err, backend.ErrPhotonMismatch)

		_, err = b.Prob(fock.MustParse("|1,0,0>"), fock.MustParse("|1,0,0>"))
		require.ErrorIs(t, err, backend.ErrModeMismatch)

		_, err = b.Sample(fock.MustParse("|1>"))
		require.ErrorIs(t, err, backend.ErrModeMismatch)

		count := 0
		for range b.AllStates(fock.MustParse("|1>")) {
			count++
		}
		assert.Zero(t, count)
	}
}

func TestBunchedInputAmplitudes(t *testing.T) {
	b, err := backend.NewSLOS(unitaryOf(t, circuit.Must(phys.BS())))
	require.NoError(t, err)
	in := fock.MustParse("|2,0>")

	for out, want := range map[string]float64{
		"|2,0>": 0.5,
		"|1,1>": math.Sqrt2 / 2,
		"|0,2>": 0.5,
	} {
		a, err := b.Amplitude(in, fock.MustParse(out))
		require.NoError(t, err)
		assert.InDelta(t, want, real(a), 1e-12, out)
		assert.InDelta(t, 0, imag(a), 1e-12, out)
	}
}

func TestVacuum(t *testing.T) {
	b, err := backend.NewSLOS(unitaryOf(t, circuit.Must(symb.BS())))
	require.NoError(t, err)
	vac, err := fock.Vacuum(2)
	require.NoError(t, err)
	p, err := b.Prob(vac, vac)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
}

func TestSLOSReusesPrefixes(t *testing.T) {
	u, err := matrix.RandomUnitary(3, matrix.RNGFromSeed(3))
	require.NoError(t, err)
	b, err := backend.NewSLOS(u)
	require.NoError(t, err)

	_, err = b.Prob(fock.MustParse("|1,1,0>"), fock.MustParse("|0,1,1>"))
	require.NoError(t, err)
	assert.Equal(t, 2, b.CacheSize())

	_, err = b.Prob(fock.MustParse("|1,1,1>"), fock.MustParse("|1,1,1>"))
	require.NoError(t, err)
	assert.Equal(t, 3, b.CacheSize())

	b.ClearCache()
	assert.Zero(t, b.CacheSize())
}

func TestFactory(t *testing.T) {
	assert.Contains(t, backend.Names(), "Naive")
	assert.Contains(t, backend.Names(), "SLOS")

	_, err := backend.Get("slos")
	require.ErrorIs(t, err, backend.ErrUnknownBackend)

	ctor, err := backend.Get("")
	require.NoError(t, err)
	b, err := ctor(unitaryOf(t, circuit.Must(symb.BS())))
	require.NoError(t, err)
	assert.Equal(t, backend.DefaultBackend, b.Name())
	assert.Equal(t, 2, b.M())

	err = backend.Register(backend.NaiveName, func(u *matrix.Dense, opts ...backend.Option) (backend.Backend, error) {
		return backend.NewNaive(u, opts...)
	})
	require.ErrorIs(t, err, backend.ErrDuplicateBackend)
}

func TestConstructorsValidateUnitary(t *testing.T) {
	m := matrix.MustFromRows([][]complex128{{1, 1}, {0, 1}})
	_, err := backend.New("Naive", m)
	require.ErrorIs(t, err, matrix.ErrNonUnitary)

	_, err = backend.New("SLOS", m, backend.WithoutUnitaryCheck())
	require.NoError(t, err)

	rect, _ := matrix.NewDense(2, 3)
	_, err = backend.NewSLOS(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestFromElementNeedsBoundParameters(t *testing.T) {
	theta := param.MustNew("theta")
	bs := circuit.Must(symb.BS(symb.Theta(lib.Param(theta))))
	_, err := backend.FromElement("SLOS", bs)
	require.ErrorIs(t, err, symbolic.ErrUnbound)

	require.NoError(t, theta.SetValue(math.Pi/2))
	b, err := backend.FromElement("SLOS", bs)
	require.NoError(t, err)
	p, err := b.Prob(fock.MustParse("|1,0>"), fock.MustParse("|0,1>"))
	require.NoError(t, err)
	assert.InDelta(t, 1, p, 1e-15)

	_, err = backend.FromElement("Quantum", bs)
	require.ErrorIs(t, err, backend.ErrUnknownBackend)
}
