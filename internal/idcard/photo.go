package idcard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/kiutdigital/clubportal/internal/util"
)

// errPhotoPanic marks a panic recovered inside photo decoding.
var errPhotoPanic = errors.New("panic while processing profile photo")

// loadMemberPhoto resolves a profile image reference: a bare filename is a
// local upload under {uploadRoot}/profiles, an http(s) URL is fetched with a
// bounded client. Failures are reported, never fatal; the front composer
// falls back to the placeholder panel.
func loadMemberPhoto(uploadRoot, ref string) (image.Image, error) {
	if ref == "" {
		return nil, fmt.Errorf("no profile image reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		body, err := util.GetBytes(ref)
		if err != nil {
			return nil, fmt.Errorf("fetching profile image: %w", err)
		}
		img, err := imaging.Decode(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("decoding profile image: %w", err)
		}
		return img, nil
	}
	img, err := imaging.Open(filepath.Join(uploadRoot, "profiles", ref))
	if err != nil {
		return nil, fmt.Errorf("opening profile image: %w", err)
	}
	return img, nil
}

// preparePhoto produces the card-ready photo: solid background, resized to
// photoSize, +5% brightness, masked to a rounded rectangle.
func preparePhoto(src image.Image, radius int) *image.NRGBA {
	resized := imaging.Resize(src, photoSize, photoSize, imaging.Lanczos)

	// Flatten onto the card primary so transparent photos get a solid base.
	solid := imaging.New(photoSize, photoSize, colorPrimary)
	flat := imaging.Overlay(solid, resized, image.Pt(0, 0), 1.0)

	bright := imaging.AdjustBrightness(flat, 5)

	masked := image.NewNRGBA(image.Rect(0, 0, photoSize, photoSize))
	for y := 0; y < photoSize; y++ {
		for x := 0; x < photoSize; x++ {
			if !inRoundedRect(x, y, 0, 0, photoSize, photoSize, radius) {
				continue
			}
			si := bright.PixOffset(x, y)
			di := masked.PixOffset(x, y)
			copy(masked.Pix[di:di+4], bright.Pix[si:si+4])
		}
	}
	return masked
}

func logPhotoFallback(ref string, err error) {
	if err != nil && ref != "" {
		slog.Debug("profile photo unavailable, using placeholder", "ref", ref, "error", err)
	}
}
