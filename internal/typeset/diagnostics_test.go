package typeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten_SingleDiagnostic(t *testing.T) {
	source := "line one\nline two\nline three\n"
	offset := len("line one\nline ") // inside "line two"
	diags := []Diagnostic{{VirtualPath: "main.typ", Offset: offset, Message: "unexpected token"}}
	assert.Equal(t, `main.typ:2: line two: unexpected token`, Flatten(source, diags))
}

func TestFlatten_MultipleDiagnosticsJoinedByNewline(t *testing.T) {
	source := "a\nb\nc\n"
	diags := []Diagnostic{
		{VirtualPath: "main.typ", Offset: 0, Message: "bad a"},
		{VirtualPath: "main.typ", Offset: 2, Message: "bad b"},
	}
	got := Flatten(source, diags)
	assert.Equal(t, "main.typ:1: a: bad a\nmain.typ:2: b: bad b", got)
}

func TestFlatten_OffsetAtEndOfSource(t *testing.T) {
	source := "only line"
	diags := []Diagnostic{{VirtualPath: "main.typ", Offset: len(source), Message: "eof"}}
	got := Flatten(source, diags)
	assert.Equal(t, "main.typ:1: only line: eof", got)
}

func TestFlatten_NoDiagnosticsYieldsEmptyString(t *testing.T) {
	assert.Equal(t, "", Flatten("anything", nil))
}
