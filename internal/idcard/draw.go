package idcard

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Low-level raster helpers. Everything blends with the standard "over"
// operator in 8-bit integer math on non-premultiplied NRGBA.

func blendPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if c.A == 0 || !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	i := img.PixOffset(x, y)
	dr := uint32(img.Pix[i])
	dg := uint32(img.Pix[i+1])
	db := uint32(img.Pix[i+2])
	da := uint32(img.Pix[i+3])
	sa := uint32(c.A)

	outA := sa + da*(255-sa)/255
	if outA == 0 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 0
		return
	}
	blend := func(sc uint8, dc uint32) uint8 {
		return uint8((uint32(sc)*sa + dc*da*(255-sa)/255) / outA)
	}
	img.Pix[i] = blend(c.R, dr)
	img.Pix[i+1] = blend(c.G, dg)
	img.Pix[i+2] = blend(c.B, db)
	img.Pix[i+3] = uint8(outA)
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

// inRoundedRect tests pixel (px,py) against a rounded rectangle at (x,y)
// with the given size and corner radius.
func inRoundedRect(px, py, x, y, w, h, radius int) bool {
	if px < x || py < y || px >= x+w || py >= y+h {
		return false
	}
	if radius <= 0 {
		return true
	}
	rx, ry := px-x, py-y
	var cx, cy int
	switch {
	case rx < radius && ry < radius:
		cx, cy = radius, radius
	case rx >= w-radius && ry < radius:
		cx, cy = w-radius-1, radius
	case rx < radius && ry >= h-radius:
		cx, cy = radius, h-radius-1
	case rx >= w-radius && ry >= h-radius:
		cx, cy = w-radius-1, h-radius-1
	default:
		return true
	}
	dx, dy := rx-cx, ry-cy
	return dx*dx+dy*dy <= radius*radius
}

func fillRoundedRect(img *image.NRGBA, x, y, w, h, radius int, c color.NRGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if inRoundedRect(px, py, x, y, w, h, radius) {
				blendPixel(img, px, py, c)
			}
		}
	}
}

// strokeRoundedRect draws a rounded-rect outline of the given stroke width,
// drawn inward from the outer edge.
func strokeRoundedRect(img *image.NRGBA, x, y, w, h, radius, width int, c color.NRGBA) {
	innerRadius := radius - width
	if innerRadius < 0 {
		innerRadius = 0
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if !inRoundedRect(px, py, x, y, w, h, radius) {
				continue
			}
			if inRoundedRect(px, py, x+width, y+width, w-2*width, h-2*width, innerRadius) {
				continue
			}
			blendPixel(img, px, py, c)
		}
	}
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, px, py, c)
			}
		}
	}
}

func strokeCircle(img *image.NRGBA, cx, cy, r, width int, c color.NRGBA) {
	inner := r - width
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx, dy := px-cx, py-cy
			d := dx*dx + dy*dy
			if d <= r*r && d > inner*inner {
				blendPixel(img, px, py, c)
			}
		}
	}
}

func drawLinePixels(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		blendPixel(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillPolygon scanline-fills a simple polygon (even-odd rule).
func fillPolygon(img *image.NRGBA, pts []image.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	for y := minY; y <= maxY; y++ {
		var xs []int
		j := len(pts) - 1
		for i := 0; i < len(pts); i++ {
			yi, yj := pts[i].Y, pts[j].Y
			if (yi <= y && yj > y) || (yj <= y && yi > y) {
				x := pts[i].X + (y-yi)*(pts[j].X-pts[i].X)/(yj-yi)
				xs = append(xs, x)
			}
			j = i
		}
		for i := 0; i+1 < len(xs); i += 2 {
			a, b := xs[i], xs[i+1]
			if a > b {
				a, b = b, a
			}
			for x := a; x <= b; x++ {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// pasteOver composites src onto dst at (x,y) with the over operator.
func pasteOver(dst *image.NRGBA, src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Over)
}

func drawText(img *image.NRGBA, face font.Face, x, y int, c color.NRGBA, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawTextCentered(img *image.NRGBA, face font.Face, cx, y int, c color.NRGBA, s string) {
	drawText(img, face, cx-textWidth(face, s)/2, y, c, s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// lerpColor interpolates two colors channel-wise in source RGB.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
