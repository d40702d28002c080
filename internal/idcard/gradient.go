package idcard

import (
	"image"
	"image/color"
	"math"
)

// RadialGradient fills a new image with a per-pixel interpolation from
// center (image center) to edge (farthest corner). Distance is Euclidean,
// normalized by the corner distance and clamped to [0,1]. O(w*h) on purpose:
// it is the base layer of both card faces.
func RadialGradient(w, h int, center, edge color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	cy := float64(h) / 2
	corner := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := math.Hypot(float64(x)-cx, float64(y)-cy) / corner
			if t > 1 {
				t = 1
			}
			c := lerpColor(center, edge, t)
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// smoothstep eases t so gradient transitions have soft endpoints.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// LinearGradient blends from -> to across the rectangle, one 1-pixel strip
// at a time, with smoothstep easing along the gradient axis.
func LinearGradient(dst *image.NRGBA, r image.Rectangle, from, to color.NRGBA, vertical bool) {
	if r.Dx() < 2 || r.Dy() < 2 {
		fillRect(dst, r, from)
		return
	}
	if vertical {
		n := r.Dy()
		for i := 0; i < n; i++ {
			t := smoothstep(float64(i) / float64(n-1))
			c := lerpColor(from, to, t)
			fillRect(dst, image.Rect(r.Min.X, r.Min.Y+i, r.Max.X, r.Min.Y+i+1), c)
		}
		return
	}
	n := r.Dx()
	for i := 0; i < n; i++ {
		t := smoothstep(float64(i) / float64(n-1))
		c := lerpColor(from, to, t)
		fillRect(dst, image.Rect(r.Min.X+i, r.Min.Y, r.Min.X+i+1, r.Max.Y), c)
	}
}

// DecorativePattern draws the faint hexagon lattice and sine-modulated arcs
// used as a watermark on both faces. Alpha stays around 4/255 so foreground
// content is never obscured.
func DecorativePattern(dst *image.NRGBA) {
	const (
		cell    = 96
		hexR    = 34
		pAlpha  = 4
		numArcs = 4
	)
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()
	faint := withAlpha(colorAccent, pAlpha)

	// Checkerboarded hexagon outlines: only every other cell.
	for row := 0; row*cell < h+cell; row++ {
		for col := 0; col*cell < w+cell; col++ {
			if (row+col)%2 != 0 {
				continue
			}
			cx := col * cell
			cy := row * cell
			drawHexOutline(dst, cx, cy, hexR, faint)
		}
	}

	// A few long sine arcs drifting across the card.
	for k := 0; k < numArcs; k++ {
		base := float64(h) * float64(k+1) / float64(numArcs+1)
		amp := 18.0 + float64(k)*7
		freq := 0.012 + float64(k)*0.004
		phase := float64(k) * 1.7
		for x := 0; x < w; x++ {
			y := base + amp*math.Sin(float64(x)*freq+phase)
			blendPixel(dst, x, int(y), faint)
		}
	}
}

func drawHexOutline(dst *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	var pts [6]image.Point
	for i := 0; i < 6; i++ {
		a := math.Pi/6 + float64(i)*math.Pi/3
		pts[i] = image.Pt(cx+int(float64(r)*math.Cos(a)), cy+int(float64(r)*math.Sin(a)))
	}
	for i := 0; i < 6; i++ {
		p, q := pts[i], pts[(i+1)%6]
		drawLinePixels(dst, p.X, p.Y, q.X, q.Y, c)
	}
}

// HolographicShine overlays diagonal parallelogram bands cycling through
// three pastel hues at low alpha. Applied as the final pass over a face.
func HolographicShine(src *image.NRGBA) *image.NRGBA {
	const (
		period    = 120
		bandWidth = 38
		bandAlpha = 10
	)
	out := image.NewNRGBA(src.Rect)
	copy(out.Pix, src.Pix)

	w := out.Rect.Dx()
	h := out.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := x + y
			if d%period >= bandWidth {
				continue
			}
			hue := holoHues[(d/period)%3]
			blendPixel(out, x, y, withAlpha(hue, bandAlpha))
		}
	}
	return out
}

// flattenOpaque composites src over an opaque dark background so the saved
// card carries no residual alpha.
func flattenOpaque(src *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = colorPrimaryDeep.R
		out.Pix[i+1] = colorPrimaryDeep.G
		out.Pix[i+2] = colorPrimaryDeep.B
		out.Pix[i+3] = 255
	}
	pasteOver(out, src, 0, 0)
	return out
}
