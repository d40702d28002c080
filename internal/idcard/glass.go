package idcard

import (
	"image"
	"image/color"
)

// GlassPanel draws the frosted-glass container used by every text block on
// both faces: a low-alpha rounded body, a lighter band over the top quarter,
// and two concentric soft border outlines.
func GlassPanel(dst *image.NRGBA, x, y, w, h, radius int) {
	white := color.NRGBA{255, 255, 255, 255}

	fillRoundedRect(dst, x, y, w, h, radius, withAlpha(white, 24))

	highlightH := h / 4
	hr := radius
	if hr > highlightH/2 {
		hr = highlightH / 2
	}
	fillRoundedRect(dst, x, y, w, highlightH, hr, withAlpha(white, 18))

	strokeRoundedRect(dst, x, y, w, h, radius, 1, withAlpha(white, 70))
	strokeRoundedRect(dst, x+1, y+1, w-2, h-2, radius-1, 1, withAlpha(white, 35))
}
