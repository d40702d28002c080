package idcard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/kiutdigital/clubportal/internal/config"
	"github.com/kiutdigital/clubportal/internal/member"
	"github.com/kiutdigital/clubportal/internal/util"
)

// Generator produces the front/back card pair for a member. It is stateless
// per call; concurrent generations for distinct members need no
// coordination, and same-member regeneration is last-write-wins.
type Generator struct {
	UploadRoot string
	LogoPath   string
	BaseURL    string
	// IDs assigns a member ID number when the record lacks one; uniqueness
	// is the backing store's concern.
	IDs member.Allocator
}

func NewGenerator(cfg config.Config, ids member.Allocator) *Generator {
	return &Generator{
		UploadRoot: cfg.Assets.UploadRoot,
		LogoPath:   cfg.Assets.LogoPath,
		BaseURL:    cfg.BaseURL,
		IDs:        ids,
	}
}

// OutputDir is where both card faces are written.
func (g *Generator) OutputDir() string {
	return filepath.Join(g.UploadRoot, "digital_ids")
}

// FrontFilename and BackFilename derive the fixed file names for an ID
// number; BackFilenameFor derives the back name from a stored front name.
func FrontFilename(idNumber string) string {
	return idNumber + "_front.png"
}

func BackFilename(idNumber string) string {
	return idNumber + "_back.png"
}

// BackFilenameFor maps a stored front filename to its back counterpart. A
// legacy name without the _front suffix gets _back spliced before .png.
func BackFilenameFor(frontName string) string {
	if strings.HasSuffix(frontName, "_front.png") {
		return strings.TrimSuffix(frontName, "_front.png") + "_back.png"
	}
	if strings.HasSuffix(frontName, ".png") {
		return strings.TrimSuffix(frontName, ".png") + "_back.png"
	}
	return frontName + "_back.png"
}

// Generate composes and writes both faces, assigning an ID number first if
// the member lacks one. It sets m.DigitalIDPath to the front filename; the
// caller owns persisting the record. Only ID allocation, QR encoding and
// filesystem errors propagate; missing assets degrade inside the composers.
func (g *Generator) Generate(ctx context.Context, m *member.Member, baseURL string) (front, back string, err error) {
	if m.MemberIDNumber == "" {
		if g.IDs == nil {
			return "", "", fmt.Errorf("member %s has no ID number and no allocator is configured", m.ID)
		}
		if err := g.IDs.Assign(ctx, m); err != nil {
			return "", "", fmt.Errorf("assigning member ID: %w", err)
		}
	}

	verifyURL := g.verificationURL(m.MemberIDNumber, baseURL)

	frontImg, err := g.composeFront(m, verifyURL)
	if err != nil {
		return "", "", fmt.Errorf("composing front face: %w", err)
	}
	backImg := g.composeBack(m)

	dir := g.OutputDir()
	if err := util.EnsureDir(dir); err != nil {
		return "", "", fmt.Errorf("creating output directory: %w", err)
	}

	front = FrontFilename(m.MemberIDNumber)
	back = BackFilename(m.MemberIDNumber)
	if err := imaging.Save(frontImg, filepath.Join(dir, front)); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", front, err)
	}
	if err := imaging.Save(backImg, filepath.Join(dir, back)); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", back, err)
	}

	m.DigitalIDPath = front
	return front, back, nil
}

// verificationURL resolves the QR target: explicit argument, then the
// configured base, then the production fallback.
func (g *Generator) verificationURL(idNumber, baseURL string) string {
	base := baseURL
	if base == "" {
		base = g.BaseURL
	}
	if base == "" {
		base = config.DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/verify-id/" + idNumber
}

// Delete removes both faces for a member, tolerating files that are already
// gone. The back name derives from the stored front name.
func (g *Generator) Delete(m *member.Member) error {
	if m.DigitalIDPath == "" {
		return nil
	}
	dir := g.OutputDir()
	for _, name := range []string{m.DigitalIDPath, BackFilenameFor(m.DigitalIDPath)} {
		err := os.Remove(filepath.Join(dir, name))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	m.DigitalIDPath = ""
	return nil
}

// NeedsRegeneration reports whether the member's card should be rebuilt:
// no stored filename, or the stored front file is missing on disk.
func (g *Generator) NeedsRegeneration(m *member.Member) bool {
	if m.DigitalIDPath == "" {
		return true
	}
	return !util.FileExists(filepath.Join(g.OutputDir(), m.DigitalIDPath))
}
