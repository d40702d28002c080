package idcard

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kiutdigital/clubportal/internal/member"
)

// backPanel is one titled block of fixed lines on the back face.
type backPanel struct {
	title string
	lines []string
}

var backPanels = [4]backPanel{
	{"ABOUT", []string{
		"KIUT Digital Club is a student-led technology",
		"community advancing practical digital skills",
		"through projects, events and mentorship.",
	}},
	{"CONTACT", []string{
		"Email: kiutdigitalclubs@gmail.com",
		"Web: " + clubWebsite,
		"Kampala International University in Tanzania",
	}},
	{"TERMS", []string{
		"This card remains property of KIUT Digital Club.",
		"Present it on request at club events.",
		"Report lost cards to the club leadership.",
	}},
	{"SECURITY FEATURES", []string{
		"Holographic overlay",
		"QR verification link",
		"Unique member identifier",
	}},
}

const backFallbackYear = 2024

// composeBack builds the mostly static back face.
func (g *Generator) composeBack(m *member.Member) *image.NRGBA {
	fonts := Fonts()

	canvas := RadialGradient(CardWidth, CardHeight, colorPrimaryDeep, colorPrimary)
	drawBackDiagonal(canvas)
	DecorativePattern(canvas)

	drawBackHeader(canvas, fonts, g.LogoPath)
	drawBackPanels(canvas, fonts)
	drawMagStripe(canvas)
	drawBackFooter(canvas, fonts, m)
	drawCornerAccents(canvas)

	return flattenOpaque(HolographicShine(canvas))
}

// drawBackDiagonal lays a single faint diagonal band across the face.
func drawBackDiagonal(dst *image.NRGBA) {
	white := color.NRGBA{255, 255, 255, 8}
	for y := 0; y < CardHeight; y++ {
		for x := 0; x < CardWidth; x++ {
			d := x - y + CardHeight
			if d > 520 && d < 760 {
				blendPixel(dst, x, y, white)
			}
		}
	}
}

func drawBackHeader(dst *image.NRGBA, fonts *FontSet, logoPath string) {
	const logoSize = 80
	cx := CardWidth / 2

	logo := LoadLogo(logoPath, logoSize)
	if logo != nil {
		pasteOver(dst, logo, cx-logoSize/2, 24)
		drawTextCentered(dst, fonts.Small, cx, 24+logoSize+24, colorTextPrimary, clubName)
	} else {
		drawTextCentered(dst, fonts.Large, cx, 64, colorAccent, clubName)
		drawTextCentered(dst, fonts.Tiny, cx, 90, colorTextMuted, clubSub)
	}

	fillRect(dst, image.Rect(120, 148, CardWidth-120, 149), withAlpha(colorAccent, 80))
}

// drawBackPanels lays the four information panels in a 2x2 grid.
func drawBackPanels(dst *image.NRGBA, fonts *FontSet) {
	const (
		margin = 48
		gap    = 24
		top    = 172
		h      = 150
		pitch  = 22
	)
	w := (CardWidth - 2*margin - gap) / 2

	for i, p := range backPanels {
		x := margin + (i%2)*(w+gap)
		y := top + (i/2)*(h+gap)
		GlassPanel(dst, x, y, w, h, 14)

		drawText(dst, fonts.Small, x+20, y+32, colorAccent, p.title)
		ly := y + 60
		for _, line := range p.lines {
			drawText(dst, fonts.Tiny, x+20, ly, colorTextMuted, line)
			ly += pitch
		}
	}
}

// drawMagStripe simulates a magnetic stripe: a dark vertical gradient band
// crossed by faint hatch lines.
func drawMagStripe(dst *image.NRGBA) {
	const y, h = 530, 56
	LinearGradient(dst, image.Rect(0, y, CardWidth, y+h),
		color.NRGBA{15, 20, 30, 255}, color.NRGBA{40, 48, 64, 255}, true)
	hatch := color.NRGBA{255, 255, 255, 14}
	for x := 0; x < CardWidth; x += 7 {
		fillRect(dst, image.Rect(x, y+4, x+1, y+h-4), hatch)
	}
}

func drawBackFooter(dst *image.NRGBA, fonts *FontSet, m *member.Member) {
	year := backFallbackYear
	if !m.CreatedAt.IsZero() {
		year = m.CreatedAt.Year()
	}
	line := fmt.Sprintf("© %d KIUT Digital Club · %s", year, clubWebsite)
	drawTextCentered(dst, fonts.Micro, CardWidth/2, CardHeight-18, colorTextMuted, line)
}
