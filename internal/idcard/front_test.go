package idcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapNameShortStaysOnOneLine(t *testing.T) {
	lines := wrapName("Jane Wanjiru Otieno") // 19 chars
	assert.Equal(t, []string{"JANE WANJIRU OTIENO"}, lines)
}

func TestWrapNameExactLimit(t *testing.T) {
	name := "Jane Wanjiru Otienos" // exactly 20 chars
	lines := wrapName(name)
	assert.Len(t, lines, 1)
	assert.Equal(t, strings.ToUpper(name), lines[0])
}

func TestWrapNameLongSplitsOnWords(t *testing.T) {
	name := "Jane Wanjiru Otienoss" // 21 chars, space near the middle
	lines := wrapName(name)
	assert.Len(t, lines, 2)
	assert.LessOrEqual(t, len(lines[0]), 20)
	assert.Equal(t, "JANE WANJIRU", lines[0])
	assert.Equal(t, "OTIENOSS", lines[1])
}

func TestWrapNameManyWords(t *testing.T) {
	lines := wrapName("Abdul Rahman Mohammed Al Hassan")
	assert.Len(t, lines, 2)
	assert.LessOrEqual(t, len(lines[0]), 20)
	assert.Equal(t, strings.ToUpper("Abdul Rahman Mohammed Al Hassan"), strings.Join(lines, " "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Computer Science", truncate("Computer Science", 28))
	long := "Bachelor of Science in Software Engineering"
	assert.Equal(t, long[:28], truncate(long, 28))
}
