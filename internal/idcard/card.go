// Package idcard generates the two-sided digital membership card as a pair
// of 1016x640 PNG images: procedural gradients, glass panels, a verification
// QR code and a holographic overlay, composed per member record.
package idcard

import "image/color"

const (
	CardWidth  = 1016
	CardHeight = 640

	photoSize = 220
	qrSize    = 150
)

// Club palette. Blending happens directly in these RGB values, no
// color-space conversion; the output must match the established card look.
var (
	colorPrimary     = color.NRGBA{30, 41, 59, 255}   // slate
	colorPrimaryDeep = color.NRGBA{2, 6, 23, 255}     // near-black blue
	colorAccent      = color.NRGBA{34, 211, 238, 255} // cyan
	colorAccentAlt   = color.NRGBA{59, 130, 246, 255} // blue
	colorTextPrimary = color.NRGBA{255, 255, 255, 255}
	colorTextMuted   = color.NRGBA{148, 163, 184, 255}
	colorStudent     = color.NRGBA{74, 222, 128, 255} // green
	colorAlumni      = color.NRGBA{250, 204, 21, 255} // amber
)

// Holographic shine hues, cycled across the diagonal bands.
var holoHues = [3]color.NRGBA{
	{255, 179, 222, 255},
	{179, 235, 255, 255},
	{187, 255, 214, 255},
}

const (
	clubName    = "DIGITAL CLUB"
	clubSub     = "KIUT"
	clubWebsite = "digitalclub.kiut.ac.tz"
)
