package idcard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// verificationQR encodes the verification URL at error-correction level
// High and returns a qrSize x qrSize raster. The encode result is decoded
// back as a sanity check before use.
func verificationQR(url string) (image.Image, error) {
	pngBytes, err := qrcode.Encode(url, qrcode.High, qrSize*2)
	if err != nil {
		return nil, fmt.Errorf("encoding QR: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("validating QR PNG: %w", err)
	}
	return imaging.Resize(img, qrSize, qrSize, imaging.Lanczos), nil
}

// drawQRBlock renders the framed QR unit: graduated gray frame, white well,
// the code itself, corner accents and the SCAN TO VERIFY caption.
func drawQRBlock(dst *image.NRGBA, fonts *FontSet, qr image.Image, x, y int) {
	const (
		pad     = 14
		frameW  = qrSize + 2*pad
		frameH  = qrSize + 2*pad
		capDrop = 22
	)

	LinearGradient(dst, image.Rect(x, y, x+frameW, y+frameH),
		color.NRGBA{203, 213, 225, 255}, color.NRGBA{100, 116, 139, 255}, true)
	fillRoundedRect(dst, x+4, y+4, frameW-8, frameH-8, 6, color.NRGBA{255, 255, 255, 255})

	pasteOver(dst, qr, x+pad, y+pad)

	drawCornerTicks(dst, x, y, frameW, frameH, 16, withAlpha(colorAccent, 200))

	drawTextCentered(dst, fonts.Micro, x+frameW/2, y+frameH+capDrop, colorTextMuted, "SCAN TO VERIFY")
}

// drawCornerTicks draws four L-shaped accents just inside a rectangle's
// corners, shared by the QR frame and the photo block.
func drawCornerTicks(dst *image.NRGBA, x, y, w, h, l int, c color.NRGBA) {
	t := 3 // tick thickness
	// top-left
	fillRect(dst, image.Rect(x, y, x+l, y+t), c)
	fillRect(dst, image.Rect(x, y, x+t, y+l), c)
	// top-right
	fillRect(dst, image.Rect(x+w-l, y, x+w, y+t), c)
	fillRect(dst, image.Rect(x+w-t, y, x+w, y+l), c)
	// bottom-left
	fillRect(dst, image.Rect(x, y+h-t, x+l, y+h), c)
	fillRect(dst, image.Rect(x, y+h-l, x+t, y+h), c)
	// bottom-right
	fillRect(dst, image.Rect(x+w-l, y+h-t, x+w, y+h), c)
	fillRect(dst, image.Rect(x+w-t, y+h-l, x+w, y+h), c)
}
