package idcard

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadialGradientEndpoints(t *testing.T) {
	center := color.NRGBA{100, 0, 0, 255}
	edge := color.NRGBA{0, 0, 100, 255}
	img := RadialGradient(100, 60, center, edge)

	require.Equal(t, image.Rect(0, 0, 100, 60), img.Bounds())

	// Center pixel carries the center color.
	assert.Equal(t, center, img.NRGBAAt(50, 30))

	// The corner sits at normalized distance 1: pure edge color.
	assert.Equal(t, edge, img.NRGBAAt(0, 0))
}

func TestRadialGradientDeterministic(t *testing.T) {
	a := RadialGradient(64, 64, colorPrimary, colorPrimaryDeep)
	b := RadialGradient(64, 64, colorPrimary, colorPrimaryDeep)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestLinearGradientSmoothstepEndpoints(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 100))
	from := color.NRGBA{0, 0, 0, 255}
	to := color.NRGBA{200, 200, 200, 255}
	LinearGradient(img, img.Bounds(), from, to, true)

	// smoothstep(0)=0 and smoothstep(1)=1, so the first and last strips are
	// exactly the endpoint colors.
	assert.Equal(t, from, img.NRGBAAt(5, 0))
	assert.Equal(t, to, img.NRGBAAt(5, 99))

	// The midpoint of smoothstep is 0.5: halfway blend.
	mid := img.NRGBAAt(5, 50)
	assert.InDelta(t, 100, int(mid.R), 3)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, smoothstep(0))
	assert.Equal(t, 1.0, smoothstep(1))
	assert.Equal(t, 0.5, smoothstep(0.5))
	// Eased curve stays below linear in the first half.
	assert.Less(t, smoothstep(0.25), 0.25)
	assert.Greater(t, smoothstep(0.75), 0.75)
}

func TestHolographicShinePreservesSize(t *testing.T) {
	src := RadialGradient(200, 120, colorPrimary, colorPrimaryDeep)
	out := HolographicShine(src)
	assert.Equal(t, src.Bounds(), out.Bounds())
	// Source must not be mutated by the overlay pass.
	assert.Equal(t, colorPrimaryDeep, src.NRGBAAt(0, 0))
}

func TestFlattenOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	// Half-transparent red square.
	fillRect(src, src.Bounds(), color.NRGBA{255, 0, 0, 128})
	out := flattenOpaque(src)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.EqualValues(t, 255, out.NRGBAAt(x, y).A)
		}
	}
}

func TestLerpColorRounds(t *testing.T) {
	a := color.NRGBA{0, 0, 0, 255}
	b := color.NRGBA{255, 255, 255, 255}
	assert.Equal(t, a, lerpColor(a, b, 0))
	assert.Equal(t, b, lerpColor(a, b, 1))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, lerpColor(a, b, 0.5))
}
