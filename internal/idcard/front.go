package idcard

import (
	"image"
	"math"
	"math/rand"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/kiutdigital/clubportal/internal/member"
)

// Front-face layout anchors.
const (
	frontHeaderH = 110

	frontPhotoX = 48
	frontPhotoY = 170

	frontInfoX = 312
	frontInfoY = 170
	frontInfoW = 430
	frontInfoH = 330

	frontQRX = 782
	frontQRY = 180

	particleSeed  = 42
	particleCount = 15
)

// composeFront builds the front face for a member. Drawing-stage problems
// (missing photo, dead logo path) degrade to placeholders; only QR encoding
// can fail the call.
func (g *Generator) composeFront(m *member.Member, verifyURL string) (*image.NRGBA, error) {
	fonts := Fonts()

	canvas := RadialGradient(CardWidth, CardHeight, colorPrimary, colorPrimaryDeep)
	DecorativePattern(canvas)

	drawFrontHeader(canvas)
	drawFrontBranding(canvas, fonts, g.LogoPath)
	drawCornerAccents(canvas)
	drawParticleField(canvas)

	g.drawPhotoBlock(canvas, m)
	drawInfoPanel(canvas, fonts, m)

	qr, err := verificationQR(verifyURL)
	if err != nil {
		return nil, err
	}
	drawQRBlock(canvas, fonts, qr, frontQRX, frontQRY)

	drawValidityBlock(canvas, fonts, m)
	drawBottomWave(canvas)

	return flattenOpaque(HolographicShine(canvas)), nil
}

// drawFrontHeader paints the top band: a horizontal accent-to-primary sweep
// whose alpha eases out toward the right edge.
func drawFrontHeader(dst *image.NRGBA) {
	for x := 0; x < CardWidth; x++ {
		t := smoothstep(float64(x) / float64(CardWidth-1))
		c := lerpColor(colorAccent, colorPrimary, t)
		c.A = uint8(110 - 90*t)
		fillRect(dst, image.Rect(x, 0, x+1, frontHeaderH), c)
	}
	fillRect(dst, image.Rect(0, frontHeaderH-2, CardWidth, frontHeaderH), withAlpha(colorAccent, 90))
}

// drawFrontBranding places the logo with a blurred glow plus the club name,
// or the text wordmark when the logo cannot be rasterized.
func drawFrontBranding(dst *image.NRGBA, fonts *FontSet, logoPath string) {
	const logoSize = 66
	const logoX, logoY = 40, 22

	logo := LoadLogo(logoPath, logoSize)
	if logo != nil {
		glow := imaging.Blur(logo, 6)
		pasteOver(dst, glow, logoX-3, logoY-3)
		pasteOver(dst, logo, logoX, logoY)
		drawText(dst, fonts.Large, logoX+logoSize+22, logoY+34, colorTextPrimary, clubName)
		drawText(dst, fonts.Tiny, logoX+logoSize+22, logoY+58, colorTextMuted, clubSub)
		return
	}
	drawText(dst, fonts.Large, logoX, logoY+38, colorAccent, clubName)
	drawText(dst, fonts.Tiny, logoX, logoY+62, colorTextMuted, clubSub)
}

// drawCornerAccents draws the two decorative wedges: layered triangles at
// the top-right and bottom-left corners.
func drawCornerAccents(dst *image.NRGBA) {
	w, h := CardWidth, CardHeight
	fillPolygon(dst, []image.Point{{w, 0}, {w - 120, 0}, {w, 120}}, withAlpha(colorAccent, 28))
	fillPolygon(dst, []image.Point{{w, 0}, {w - 70, 0}, {w, 70}}, withAlpha(colorAccent, 45))
	fillPolygon(dst, []image.Point{{0, h}, {120, h}, {0, h - 120}}, withAlpha(colorAccentAlt, 28))
	fillPolygon(dst, []image.Point{{0, h}, {70, h}, {0, h - 70}}, withAlpha(colorAccentAlt, 45))
}

// drawParticleField scatters 15 low-alpha dots from a locally scoped
// fixed-seed generator, keeping regeneration deterministic.
func drawParticleField(dst *image.NRGBA) {
	rng := rand.New(rand.NewSource(particleSeed))
	for i := 0; i < particleCount; i++ {
		x := rng.Intn(CardWidth)
		y := frontHeaderH + 40 + rng.Intn(CardHeight-frontHeaderH-120)
		r := 1 + rng.Intn(3)
		fillCircle(dst, x, y, r, withAlpha(colorAccent, 22))
	}
}

// drawPhotoBlock renders the member photo with glow rings and corner ticks,
// or the glass placeholder with a camera glyph when no photo is usable.
func (g *Generator) drawPhotoBlock(dst *image.NRGBA, m *member.Member) {
	const radius = 24
	x, y := frontPhotoX, frontPhotoY

	photo, err := g.loadPhoto(m)
	if err != nil {
		logPhotoFallback(m.ProfileImageRef, err)
		drawPhotoPlaceholder(dst, x, y, radius)
		return
	}

	// Soft glow: expanding rounded outlines behind the photo.
	for i, a := range []uint8{60, 35, 16} {
		off := 3 + i*3
		strokeRoundedRect(dst, x-off, y-off, photoSize+2*off, photoSize+2*off, radius+off, 2, withAlpha(colorAccent, a))
	}

	pasteOver(dst, photo, x, y)

	strokeRoundedRect(dst, x, y, photoSize, photoSize, radius, 2, withAlpha(colorAccent, 200))
	strokeRoundedRect(dst, x+2, y+2, photoSize-4, photoSize-4, radius-2, 1, withAlpha(colorTextPrimary, 70))
	drawCornerTicks(dst, x-6, y-6, photoSize+12, photoSize+12, 18, withAlpha(colorAccent, 160))
}

// loadPhoto recovers from any panic inside image decoding; a corrupt upload
// must degrade to the placeholder, not abort the card.
func (g *Generator) loadPhoto(m *member.Member) (img *image.NRGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = errPhotoPanic
		}
	}()
	src, err := loadMemberPhoto(g.UploadRoot, m.ProfileImageRef)
	if err != nil {
		return nil, err
	}
	return preparePhoto(src, 24), nil
}

func drawPhotoPlaceholder(dst *image.NRGBA, x, y, radius int) {
	GlassPanel(dst, x, y, photoSize, photoSize, radius)

	// Camera glyph: body, lens, flash bump.
	cx := x + photoSize/2
	cy := y + photoSize/2
	body := withAlpha(colorTextMuted, 180)
	fillRoundedRect(dst, cx-38, cy-24, 76, 52, 8, body)
	fillRoundedRect(dst, cx-12, cy-32, 24, 10, 3, body)
	strokeCircle(dst, cx, cy+2, 16, 4, withAlpha(colorPrimaryDeep, 220))
	fillCircle(dst, cx, cy+2, 7, withAlpha(colorAccent, 160))
}

// drawInfoPanel renders the member-info glass panel: wrapped name, divider,
// ID badge, optional course/year lines and the status pill.
func drawInfoPanel(dst *image.NRGBA, fonts *FontSet, m *member.Member) {
	x, y := frontInfoX, frontInfoY
	const pad = 26
	GlassPanel(dst, x, y, frontInfoW, frontInfoH, 18)

	tx := x + pad
	ty := y + pad + 26

	lines := wrapName(m.FullName)
	drawText(dst, fonts.Large, tx, ty, colorTextPrimary, lines[0])
	ty += 36
	if len(lines) > 1 {
		drawText(dst, fonts.Large, tx, ty, colorTextPrimary, lines[1])
		ty += 36
	}

	fillRect(dst, image.Rect(tx, ty-10, x+frontInfoW-pad, ty-9), withAlpha(colorAccent, 80))
	ty += 14

	// MEMBER ID badge: gradient strip behind the label and number.
	LinearGradient(dst, image.Rect(tx, ty-14, tx+240, ty+30),
		withAlpha(colorAccent, 60), withAlpha(colorAccent, 0), false)
	drawText(dst, fonts.Micro, tx+6, ty, colorTextMuted, "MEMBER ID")
	drawText(dst, fonts.Large, tx+6, ty+28, colorAccent, m.MemberIDNumber)
	ty += 62

	if m.Course != "" {
		drawText(dst, fonts.Micro, tx, ty, colorTextMuted, "COURSE")
		drawText(dst, fonts.Medium, tx, ty+24, colorTextPrimary, truncate(m.Course, 28))
		ty += 52
	}
	if m.Year != "" {
		drawText(dst, fonts.Micro, tx, ty, colorTextMuted, "ACADEMIC YEAR")
		drawText(dst, fonts.Medium, tx, ty+24, colorTextPrimary, m.Year)
		ty += 52
	}

	drawStatusPill(dst, fonts, tx, ty-6, m.Status)
}

func drawStatusPill(dst *image.NRGBA, fonts *FontSet, x, y int, status member.Status) {
	const w, h = 120, 30
	c := colorStudent
	if status == member.StatusAlumni {
		c = colorAlumni
	}
	fillRoundedRect(dst, x, y, w, h, h/2, withAlpha(c, 50))
	strokeRoundedRect(dst, x, y, w, h, h/2, 2, c)
	label := strings.ToUpper(string(status))
	drawTextCentered(dst, fonts.Small, x+w/2, y+21, c, label)
}

// drawValidityBlock shows the VALID FROM month/year, only when the record
// carries a membership start date.
func drawValidityBlock(dst *image.NRGBA, fonts *FontSet, m *member.Member) {
	if m.CreatedAt.IsZero() {
		return
	}
	const x, y, w, h = frontQRX - 12, 420, 202, 96
	GlassPanel(dst, x, y, w, h, 12)
	drawTextCentered(dst, fonts.Micro, x+w/2, y+24, colorTextMuted, "VALID FROM")
	drawTextCentered(dst, fonts.Small, x+w/2, y+48, colorTextPrimary, m.CreatedAt.Format("January 2006"))
	drawTextCentered(dst, fonts.Tiny, x+w/2, y+74, colorStudent, "ACTIVE")
}

// drawBottomWave paints the thin sine-modulated accent band along the
// bottom edge.
func drawBottomWave(dst *image.NRGBA) {
	base := float64(CardHeight - 26)
	for x := 0; x < CardWidth; x++ {
		y := int(base + 6*math.Sin(float64(x)*0.025))
		fillRect(dst, image.Rect(x, y, x+1, y+3), withAlpha(colorAccent, 60))
	}
}

// wrapName upper-cases the member name and greedily wraps it onto two lines
// when it exceeds 20 characters; line one never exceeds 20.
func wrapName(name string) []string {
	const limit = 20
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) <= limit {
		return []string{name}
	}
	words := strings.Fields(name)
	var first []string
	length := 0
	for i, w := range words {
		need := len(w)
		if length > 0 {
			need++ // joining space
		}
		if length+need > limit && length > 0 {
			return []string{strings.Join(first, " "), strings.Join(words[i:], " ")}
		}
		first = append(first, w)
		length += need
	}
	return []string{strings.Join(first, " ")}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
