package idcard

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontSet holds the six faces the card layout uses. Title and Large render
// from the bold variant, the rest from the regular variant.
type FontSet struct {
	Title  font.Face // 48pt
	Large  font.Face // 32pt
	Medium font.Face // 22pt
	Small  font.Face // 18pt
	Tiny   font.Face // 14pt
	Micro  font.Face // 11pt
}

// fontCandidate is one ranked font family: the first path in each list that
// exists is used. A candidate only wins if every role loads.
type fontCandidate struct {
	name    string
	bold    []string
	regular []string
}

var fontCandidates = []fontCandidate{
	{
		name:    "DejaVu Sans",
		bold:    []string{"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf", "/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf"},
		regular: []string{"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", "/usr/share/fonts/dejavu/DejaVuSans.ttf"},
	},
	{
		name:    "Liberation Sans",
		bold:    []string{"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf", "/usr/share/fonts/liberation-sans/LiberationSans-Bold.ttf"},
		regular: []string{"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf", "/usr/share/fonts/liberation-sans/LiberationSans-Regular.ttf"},
	},
	{
		name:    "Noto Sans",
		bold:    []string{"/usr/share/fonts/truetype/noto/NotoSans-Bold.ttf", "/usr/share/fonts/noto/NotoSans-Bold.ttf"},
		regular: []string{"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf", "/usr/share/fonts/noto/NotoSans-Regular.ttf"},
	},
	{
		name:    "Arial",
		bold:    []string{"/Library/Fonts/Arial Bold.ttf", "/System/Library/Fonts/Supplemental/Arial Bold.ttf", `C:\Windows\Fonts\arialbd.ttf`},
		regular: []string{"/Library/Fonts/Arial.ttf", "/System/Library/Fonts/Supplemental/Arial.ttf", `C:\Windows\Fonts\arial.ttf`},
	},
	{
		name:    "Helvetica",
		bold:    []string{"/System/Library/Fonts/Supplemental/Helvetica Bold.ttf"},
		regular: []string{"/System/Library/Fonts/Supplemental/Helvetica.ttf"},
	},
}

var (
	fontsOnce sync.Once
	fonts     *FontSet
)

// Fonts resolves the card font set once per process. It never fails: when no
// candidate family fully loads, every role falls back to the built-in
// basicfont face and text renders with degraded typography.
func Fonts() *FontSet {
	fontsOnce.Do(func() {
		fonts = resolveFonts()
	})
	return fonts
}

func resolveFonts() *FontSet {
	for _, cand := range fontCandidates {
		set, err := loadCandidate(cand)
		if err == nil {
			return set
		}
	}
	fallback := basicfont.Face7x13
	return &FontSet{
		Title:  fallback,
		Large:  fallback,
		Medium: fallback,
		Small:  fallback,
		Tiny:   fallback,
		Micro:  fallback,
	}
}

func loadCandidate(cand fontCandidate) (*FontSet, error) {
	bold, err := parseFirst(cand.bold)
	if err != nil {
		return nil, fmt.Errorf("%s bold: %w", cand.name, err)
	}
	regular, err := parseFirst(cand.regular)
	if err != nil {
		return nil, fmt.Errorf("%s regular: %w", cand.name, err)
	}

	var set FontSet
	roles := []struct {
		face *font.Face
		src  *opentype.Font
		size float64
	}{
		{&set.Title, bold, 48},
		{&set.Large, bold, 32},
		{&set.Medium, regular, 22},
		{&set.Small, regular, 18},
		{&set.Tiny, regular, 14},
		{&set.Micro, regular, 11},
	}
	for _, r := range roles {
		face, err := opentype.NewFace(r.src, &opentype.FaceOptions{
			Size:    r.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("%s at %.0fpt: %w", cand.name, r.size, err)
		}
		*r.face = face
	}
	return &set, nil
}

func parseFirst(paths []string) (*opentype.Font, error) {
	var lastErr error = os.ErrNotExist
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			lastErr = err
			continue
		}
		return f, nil
	}
	return nil, lastErr
}
