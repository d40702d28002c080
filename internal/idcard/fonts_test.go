package idcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFontsNeverNil(t *testing.T) {
	set := resolveFonts()
	require.NotNil(t, set)
	assert.NotNil(t, set.Title)
	assert.NotNil(t, set.Large)
	assert.NotNil(t, set.Medium)
	assert.NotNil(t, set.Small)
	assert.NotNil(t, set.Tiny)
	assert.NotNil(t, set.Micro)
}

func TestFontsCachedPerProcess(t *testing.T) {
	a := Fonts()
	b := Fonts()
	assert.Same(t, a, b)
}

func TestLoadCandidateMissingFamily(t *testing.T) {
	_, err := loadCandidate(fontCandidate{
		name:    "Ghost Sans",
		bold:    []string{"/no/such/GhostSans-Bold.ttf"},
		regular: []string{"/no/such/GhostSans.ttf"},
	})
	assert.Error(t, err)
}
