package dist_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthset/dist"
)

const roundTripTol = 1e-4

// coordSweep spans the full coordinate range including both endpoints.
func coordSweep() []float64 {
	coords := make([]float64, 0, 41)
	for i := -20; i <= 20; i++ {
		coords = append(coords, float64(i)/20)
	}

	return coords
}

func TestLogUniform_RoundTrip(t *testing.T) {
	t.Parallel()

	l, err := dist.NewLogUniform(20, 20000)
	require.NoError(t, err)

	for _, coord := range coordSweep() {
		value := l.MapToValue(coord)
		assert.InDelta(t, coord, l.ValueToMap(value), roundTripTol, "coord %v", coord)
		assert.GreaterOrEqual(t, value, 20.0)
		assert.LessOrEqual(t, value, 20000.0)
	}
}

func TestLogUniform_Endpoints(t *testing.T) {
	t.Parallel()

	l, err := dist.NewLogUniform(0.1, 0.8)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, l.MapToValue(-1), 1e-12)
	assert.InDelta(t, 0.8, l.MapToValue(1), 1e-12)
	// Coordinate 0 is the geometric midpoint on a log scale.
	assert.InDelta(t, math.Sqrt(0.1*0.8), l.MapToValue(0), 1e-12)
}

func TestLogUniform_DegenerateDomain(t *testing.T) {
	t.Parallel()

	l, err := dist.NewLogUniform(3, 3)
	require.NoError(t, err)

	for _, coord := range coordSweep() {
		assert.Equal(t, 3.0, l.MapToValue(coord))
	}

	rng := rand.New(rand.NewSource(7))
	coord, value := l.SampleWithMap(rng)
	assert.Equal(t, 3.0, value)
	assert.GreaterOrEqual(t, coord, -1.0)
	assert.LessOrEqual(t, coord, 1.0)
}

func TestLogUniform_ZeroMinClamped(t *testing.T) {
	t.Parallel()

	l, err := dist.NewLogUniform(0, 1)
	require.NoError(t, err)

	// The lower endpoint maps to the epsilon floor, not to -Inf or 0.
	low := l.MapToValue(-1)
	assert.InDelta(t, 1e-6, low, 1e-9)
	assert.InDelta(t, 1.0, l.MapToValue(1), 1e-12)
}

func TestLogUniform_InvalidRanges(t *testing.T) {
	t.Parallel()

	_, err := dist.NewLogUniform(-0.5, 1)
	assert.ErrorIs(t, err, dist.ErrNegativeMin)

	_, err = dist.NewLogUniform(2, 1)
	assert.ErrorIs(t, err, dist.ErrInvertedRange)
}

func TestUniform_RoundTrip(t *testing.T) {
	t.Parallel()

	u, err := dist.NewUniform(0.5, 3)
	require.NoError(t, err)

	for _, coord := range coordSweep() {
		value := u.MapToValue(coord)
		assert.InDelta(t, coord, u.ValueToMap(value), roundTripTol, "coord %v", coord)
	}

	// Coordinate 0 is the arithmetic midpoint on a linear scale.
	assert.InDelta(t, 1.75, u.MapToValue(0), 1e-12)
}

func TestUniform_InvalidRange(t *testing.T) {
	t.Parallel()

	_, err := dist.NewUniform(5, 4)
	assert.ErrorIs(t, err, dist.ErrInvertedRange)
}

// A Uniform may span negative territory, e.g. perceptual map coordinates.
func TestUniform_NegativeBounds(t *testing.T) {
	t.Parallel()

	u, err := dist.NewUniform(-0.75, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, -0.75, u.MapToValue(-1), 1e-12)
	assert.InDelta(t, 0.5, u.MapToValue(1), 1e-12)
	assert.InDelta(t, -0.125, u.MapToValue(0), 1e-12)
}

func TestSampleWithMap_ConsistentAndDeterministic(t *testing.T) {
	t.Parallel()

	l, err := dist.NewLogUniform(50, 2000)
	require.NoError(t, err)

	rngA := rand.New(rand.NewSource(42))
	rngB := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		coordA, valueA := l.SampleWithMap(rngA)
		coordB, valueB := l.SampleWithMap(rngB)

		// Same seed, same stream.
		assert.Equal(t, coordA, coordB)
		assert.Equal(t, valueA, valueB)

		// The pair is internally consistent and inside the domain.
		assert.InDelta(t, valueA, l.MapToValue(coordA), 1e-12)
		assert.GreaterOrEqual(t, coordA, -1.0)
		assert.LessOrEqual(t, coordA, 1.0)
		assert.GreaterOrEqual(t, valueA, 50.0)
		assert.LessOrEqual(t, valueA, 2000.0)
	}
}

// Both spaces satisfy the shared Space contract.
func TestSpaceInterface(t *testing.T) {
	t.Parallel()

	var spaces []dist.Space

	l, err := dist.NewLogUniform(1, 10)
	require.NoError(t, err)
	u, err := dist.NewUniform(1, 10)
	require.NoError(t, err)

	spaces = append(spaces, l, u)
	rng := rand.New(rand.NewSource(1))
	for _, s := range spaces {
		assert.Equal(t, 1.0, s.Min())
		assert.Equal(t, 10.0, s.Max())
		v := s.Sample(rng)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 10.0)
	}
}
