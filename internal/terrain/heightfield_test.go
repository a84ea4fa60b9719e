package terrain

import (
	"context"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/terrain3d/internal/vecmath"
)

func TestSineCosineMatchesClassicField(t *testing.T) {
	fn := SineCosine(SinAmplitude, SinPeriod, CosAmplitude, CosPeriod, CosOffset, true)
	for _, p := range [][2]int{{0, 0}, {0, 50}, {13, 7}, {100, 200}, {255, 255}} {
		x, z := p[0], p[1]
		want := Real(int16(10*math.Sin(float64(x)/24) + 7*math.Cos((float64(z)-50)/18)))
		assert.Equal(t, want, fn(x, z), "h(%d, %d)", x, z)
	}
	assert.Equal(t, Real(7), fn(0, 50))
}

func TestQuantizeTruncatesTowardZero(t *testing.T) {
	// sin(4) ~ -0.757, sin(1) ~ 0.841
	q := SineCosine(1, 1, 0, 1, 0, true)
	assert.Equal(t, Real(0), q(4, 0))
	assert.Equal(t, Real(0), q(1, 0))

	raw := SineCosine(1, 1, 0, 1, 0, false)
	assert.InDelta(t, -0.7568, float64(raw(4, 0)), 1e-4)
}

func TestRidgesIsBounded(t *testing.T) {
	fn := Ridges(2, 5, 3, 7, 0, false)
	for x := 0; x < 50; x++ {
		for z := 0; z < 50; z++ {
			h := fn(x, z)
			require.LessOrEqual(t, h, Real(5+1e-5))
			require.GreaterOrEqual(t, h, Real(-5-1e-5))
		}
	}
}

func TestNewHeightfieldRejectsTinyGrids(t *testing.T) {
	_, err := NewHeightfield(1, 5)
	assert.Error(t, err)
	_, err = NewHeightfield(5, 0)
	assert.Error(t, err)

	hf, err := NewHeightfield(2, 3)
	require.NoError(t, err)
	assert.Len(t, hf.Buf, 6)
}

func TestGenerateIndependentOfWorkers(t *testing.T) {
	fn := SineCosine(SinAmplitude, SinPeriod, CosAmplitude, CosPeriod, CosOffset, true)
	ctx := context.Background()

	one, err := Generate(ctx, 37, 23, fn, 1)
	require.NoError(t, err)
	many, err := Generate(ctx, 37, 23, fn, 7)
	require.NoError(t, err)
	assert.Equal(t, one.Buf, many.Buf)

	for x := 0; x < 37; x++ {
		for z := 0; z < 23; z++ {
			require.Equal(t, fn(x, z), one.At(x, z))
		}
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, 8, 8, SineCosine(1, 1, 1, 1, 0, false), 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFlatGroundNormalsPointUp(t *testing.T) {
	hf, err := NewHeightfield(4, 4)
	require.NoError(t, err)
	up := vecmath.Vec(0, 1, 0)
	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			require.True(t, hf.Normal(x, z, 0.5).ApproxEqual(up, 1e-6), "normal at (%d, %d)", x, z)
		}
	}
}

func TestSlopeNormalLeansDownhill(t *testing.T) {
	hf, err := NewHeightfield(5, 5)
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		for z := 0; z < 5; z++ {
			hf.Set(x, z, Real(x))
		}
	}
	s := 1 / math32.Sqrt(2)
	n := hf.Normal(2, 2, 1)
	assert.True(t, n.ApproxEqual(vecmath.Vec(-s, s, 0), 1e-6), "got %v", n)
}

func TestVertexAndCenter(t *testing.T) {
	hf, err := NewHeightfield(3, 5)
	require.NoError(t, err)
	hf.Set(2, 4, 10)
	assert.Equal(t, vecmath.Vec(4, 20, 8), hf.Vertex(2, 4, 2))
	assert.Equal(t, vecmath.Vec(2, 0, 4), hf.Center(2))
}
