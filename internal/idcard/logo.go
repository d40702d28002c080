package idcard

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanFT"
)

// logoProvider is one strategy for turning a logo asset into a raster at the
// target pixel size. Providers are tried in order; the first success wins.
type logoProvider struct {
	name   string
	render func(path string, size int) (image.Image, error)
}

var logoProviders = []logoProvider{
	{"svg/rasterx", renderSVGRasterx},
	{"svg/scanft", renderSVGScanFT},
	{"sibling-png", renderSiblingPNG},
	{"direct", renderDirect},
}

// LoadLogo rasterizes the logo asset to size x size pixels. It returns nil
// when every provider fails; callers render the text wordmark instead. The
// returned image keeps its alpha channel for glow compositing.
func LoadLogo(path string, size int) image.Image {
	if path == "" {
		return nil
	}
	for _, p := range logoProviders {
		img, err := p.render(path, size)
		if err == nil && img != nil {
			return img
		}
		slog.Debug("logo provider failed", "provider", p.name, "path", path, "error", err)
	}
	return nil
}

func renderSVGRasterx(path string, size int) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path)
	if err != nil {
		return nil, fmt.Errorf("reading svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

func renderSVGScanFT(path string, size int) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path)
	if err != nil {
		return nil, fmt.Errorf("reading svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := scanFT.NewScannerFT(size, size, scanFT.NewRGBAPainter(img))
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// renderSiblingPNG looks for a pre-rendered raster next to the vector asset.
func renderSiblingPNG(path string, size int) (image.Image, error) {
	sibling := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	img, err := imaging.Open(sibling)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}

// renderDirect opens the asset as a raster, which works when the configured
// "logo" is already a PNG/JPEG rather than an SVG.
func renderDirect(path string, size int) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}
