package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PlainParagraph(t *testing.T) {
	lines := Parse("Builder of things.")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Runs, 1)
	assert.Equal(t, "Builder of things.", lines[0].Runs[0].Text)
	assert.False(t, lines[0].Bullet)
}

func TestParse_BoldRun(t *testing.T) {
	lines := Parse(`#text(weight: "bold")[great]`)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Runs, 1)
	assert.True(t, lines[0].Runs[0].Bold)
	assert.Equal(t, "great", lines[0].Runs[0].Text)
}

func TestParse_NestedEmphInBold(t *testing.T) {
	lines := Parse(`#text(weight: "bold")[very #emph[important] news]`)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Runs, 3)
	assert.True(t, lines[0].Runs[0].Bold)
	assert.True(t, lines[0].Runs[1].Bold)
	assert.True(t, lines[0].Runs[1].Italic)
	assert.Equal(t, "important", lines[0].Runs[1].Text)
}

func TestParse_Link(t *testing.T) {
	lines := Parse(`#link("https://example.com?a=1&b=2")[site]`)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Runs, 1)
	assert.Equal(t, "https://example.com?a=1&b=2", lines[0].Runs[0].LinkHref)
	assert.Equal(t, "site", lines[0].Runs[0].Text)
}

func TestParse_BulletList(t *testing.T) {
	lines := Parse("- Shipped v2\n- Cut latency 40%\n")
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Bullet)
	assert.Equal(t, "Shipped v2", lines[0].Runs[0].Text)
	assert.True(t, lines[1].Bullet)
}

func TestParse_ParagraphsSeparateIntoLines(t *testing.T) {
	lines := Parse("First paragraph.\n\nSecond paragraph.")
	require.Len(t, lines, 2)
	assert.Equal(t, "First paragraph.", lines[0].Runs[0].Text)
	assert.Equal(t, "Second paragraph.", lines[1].Runs[0].Text)
}

func TestParse_EscapedSpecialCharacters(t *testing.T) {
	lines := Parse(`Cost is \$5 \(not a command\)`)
	require.Len(t, lines, 1)
	assert.Equal(t, "Cost is $5 (not a command)", lines[0].Runs[0].Text)
}

func TestParse_EmptyInputYieldsNoLines(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   "))
}
