package noise_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/grid"
	"github.com/katalvlaran/lvnoise/kernel"
	"github.com/katalvlaran/lvnoise/lattice"
	"github.com/katalvlaran/lvnoise/noise"
)

func TestFindDecayFactor(t *testing.T) {
	assert.InDelta(t, 0.7, noise.FindDecayFactor(0.3), 1e-15)
	assert.Equal(t, 0.5, noise.FindDecayFactor(0.5))
	assert.Equal(t, noise.MinDecayFactor, noise.FindDecayFactor(1))
}

func TestOctaveWeights(t *testing.T) {
	w, total, err := noise.OctaveWeights(noise.WithOctaves(3), noise.WithMultiplier(0.5))
	require.NoError(t, err)
	// 0.5, 0.25, then the last weight 0.125/0.5.
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, w)
	assert.Equal(t, 1.0, total)

	// Multiplier 1 clamps the decay factor instead of failing.
	w, _, err = noise.OctaveWeights(noise.WithOctaves(2), noise.WithMultiplier(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, w[0])
	assert.InDelta(t, 1.0, w[1], 1e-12) // (1·d)/d

	w, total, err = noise.OctaveWeights(noise.WithOctaves(1), noise.WithMultiplier(0.4), noise.WithDecayFactor(0.8))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w[0], 1e-15) // m/d
	assert.InDelta(t, 0.5, total, 1e-15)
}

// TestOneOctaveEqualsGenerate: m/d · noise / (m/d) is plain noise.
func TestOneOctaveEqualsGenerate(t *testing.T) {
	gen := noise.New()
	opts := []noise.Option{noise.WithSeed(77), noise.WithOctaves(1), noise.WithMultiplier(0.35)}

	oct, err := gen.GenerateOctaves([]int{24, 18}, []int{6, 5}, opts...)
	require.NoError(t, err)
	plain, err := gen.Generate([]int{24, 18}, []int{6, 5}, opts...)
	require.NoError(t, err)
	for i := range plain.Data() {
		require.InDelta(t, plain.Data()[i], oct.Data()[i], 1e-12)
	}
}

// TestTwoOctavesContinueOneStream rebuilds a two-octave field by hand: the
// second lattice is drawn from the same source right after the first.
func TestTwoOctavesContinueOneStream(t *testing.T) {
	out, err := noise.New().GenerateOctaves([]int{8}, []int{4},
		noise.WithSeed(42), noise.WithOctaves(2), noise.WithMultiplier(0.5))
	require.NoError(t, err)

	src := lattice.NewSource(42)
	lat0, err := lattice.Sample([]int{3}, lattice.Uniform(0, 1), src) // scale 4
	require.NoError(t, err)
	lat1, err := lattice.Sample([]int{5}, lattice.Uniform(0, 1), src) // scale 2
	require.NoError(t, err)
	c4, err := kernel.BuildCurve(4)
	require.NoError(t, err)
	c2, err := kernel.BuildCurve(2)
	require.NoError(t, err)

	// Weights 0.5 and 0.25/0.5 = 0.5; total 1.
	for i := 0; i < 8; i++ {
		v0 := noise.Interpolate1D(lat0.Data()[i/4], lat0.Data()[i/4+1], c4.At(i%4))
		v1 := noise.Interpolate1D(lat1.Data()[i/2], lat1.Data()[i/2+1], c2.At(i%2))
		require.InDelta(t, 0.5*v0+0.5*v1, out.Data()[i], 1e-12, "cell %d", i)
	}
}

// TestOctavesScaleFloor: scales stop at 1, many octaves still work.
func TestOctavesScaleFloor(t *testing.T) {
	out, err := noise.New().GenerateOctaves([]int{9, 9}, []int{2, 3}, noise.WithOctaves(12), noise.WithSeed(3))
	require.NoError(t, err)
	for _, v := range out.Data() {
		require.False(t, math.IsNaN(v))
	}
}

// TestOctavesRange: uniform[0,1) octaves stay inside [0,1].
func TestOctavesRange(t *testing.T) {
	gen := noise.New()
	for _, m := range []float64{0.2, 0.5, 0.8, 1} {
		out, err := gen.GenerateOctaves([]int{64, 48}, []int{32, 16},
			noise.WithSeed(9), noise.WithOctaves(6), noise.WithMultiplier(m))
		require.NoError(t, err)
		s := out.Summary()
		assert.GreaterOrEqual(t, s.Min, -1e-9, "multiplier %g", m)
		assert.LessOrEqual(t, s.Max, 1+1e-9, "multiplier %g", m)
	}
}

func TestOctavesDeterminism3D(t *testing.T) {
	gen := noise.New()
	a, err := gen.GenerateOctaves([]int{12, 10, 8}, []int{8, 8, 4}, noise.WithSeed(5), noise.WithOctaves(4))
	require.NoError(t, err)
	b, err := gen.GenerateOctaves([]int{12, 10, 8}, []int{8, 8, 4}, noise.WithSeed(5), noise.WithOctaves(4))
	require.NoError(t, err)
	require.Equal(t, a.Data(), b.Data())
}

// TestOctavesIntoOverwrites: previous buffer contents do not leak through.
func TestOctavesIntoOverwrites(t *testing.T) {
	gen := noise.New()
	want, err := gen.GenerateOctaves([]int{16, 16}, []int{8, 8}, noise.WithSeed(1), noise.WithOctaves(3))
	require.NoError(t, err)

	dst, err := grid.NewDense(16, 16)
	require.NoError(t, err)
	dst.Fill(123)
	require.NoError(t, gen.GenerateOctavesInto(dst, []int{8, 8}, noise.WithSeed(1), noise.WithOctaves(3)))
	require.Equal(t, want.Data(), dst.Data())
}

func TestInvalidArguments(t *testing.T) {
	gen := noise.New()
	cases := []struct {
		name  string
		shape []int
		scale []int
		opts  []noise.Option
		want  error
	}{
		{"empty shape", nil, nil, nil, noise.ErrBadShape},
		{"zero dim", []int{4, 0}, []int{2, 2}, nil, noise.ErrBadShape},
		{"four dims", []int{2, 2, 2, 2}, []int{1, 1, 1, 1}, nil, noise.ErrBadShape},
		{"rank mismatch", []int{4, 4}, []int{2}, nil, noise.ErrScaleMismatch},
		{"zero scale", []int{4, 4}, []int{2, 0}, nil, noise.ErrBadScale},
		{"zero octaves", []int{4}, []int{2}, []noise.Option{noise.WithOctaves(0)}, noise.ErrBadOctaves},
		{"zero multiplier", []int{4}, []int{2}, []noise.Option{noise.WithMultiplier(0)}, noise.ErrBadMultiplier},
		{"big multiplier", []int{4}, []int{2}, []noise.Option{noise.WithMultiplier(1.5)}, noise.ErrBadMultiplier},
		{"NaN multiplier", []int{4}, []int{2}, []noise.Option{noise.WithMultiplier(math.NaN())}, noise.ErrBadMultiplier},
		{"zero decay", []int{4}, []int{2}, []noise.Option{noise.WithDecayFactor(0)}, noise.ErrBadDecayFactor},
		{"big decay", []int{4}, []int{2}, []noise.Option{noise.WithDecayFactor(2)}, noise.ErrBadDecayFactor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gen.GenerateOctaves(tc.shape, tc.scale, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, noise.ErrInvalidArgument)
		})
	}

	// Generate ignores the octave count.
	_, err := gen.Generate([]int{4}, []int{2}, noise.WithOctaves(0))
	require.NoError(t, err)

	err = gen.GenerateInto(nil, []int{2})
	require.ErrorIs(t, err, noise.ErrNilGrid)
	require.True(t, errors.Is(err, noise.ErrInvalidArgument))
}

// TestFailedRequestLeavesBufferUntouched: validation happens before writes.
func TestFailedRequestLeavesBufferUntouched(t *testing.T) {
	gen := noise.New()
	dst, err := grid.NewDense(8, 8)
	require.NoError(t, err)
	dst.Fill(7)

	err = gen.GenerateOctavesInto(dst, []int{4, 4}, noise.WithMultiplier(-1))
	require.ErrorIs(t, err, noise.ErrBadMultiplier)
	err = gen.GenerateOctavesInto(dst, []int{4})
	require.ErrorIs(t, err, noise.ErrScaleMismatch)
	for _, v := range dst.Data() {
		require.Equal(t, 7.0, v)
	}
	assert.Equal(t, 0, gen.Cache().Len(), "no kernel built for a rejected request")
}

func TestOptionConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { noise.WithDistribution(nil) })
	assert.Panics(t, func() { noise.NewWithCache(nil) })
}

// TestConcurrentRequests shares one generator (and cache) across goroutines;
// identical requests must give identical grids. Run with -race.
func TestConcurrentRequests(t *testing.T) {
	gen := noise.NewWithCache(kernel.NewCache())
	want, err := gen.GenerateOctaves([]int{32, 32}, []int{16, 16}, noise.WithSeed(99), noise.WithOctaves(5))
	require.NoError(t, err)

	const workers = 16
	results := make([]*grid.Dense, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = gen.GenerateOctaves([]int{32, 32}, []int{16, 16}, noise.WithSeed(99), noise.WithOctaves(5))
		}(w)
	}
	wg.Wait()
	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		require.Equal(t, want.Data(), results[w].Data(), "worker %d", w)
	}
}
