package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/dupdecl/internal/source"
)

// fooSource places "data class Foo(" on lines 3 and 10.
const fooSource = `package com.example.model

data class Foo(val id: Int)

data class Other(val x: String)

// filler
// filler

data class Foo(val id: Long)
`

func TestBuildReport重複を行番号付きで返す(t *testing.T) {
	rep := BuildReport(fooSource, DefaultKeyword, []string{"Foo"})

	require.Len(t, rep.Entries, 1)
	entry := rep.Entries[0]
	assert.Equal(t, "Foo", entry.Name)
	assert.Equal(t, 2, entry.Count())
	assert.Equal(t, []int{3, 10}, entry.Lines())
	assert.True(t, entry.HasDuplicates())
	assert.Len(t, rep.Duplicates(), 1)
}

func TestBuildReportKeepsNameOrder(t *testing.T) {
	names := []string{"Missing", "Other", "Foo"}
	rep := BuildReport(fooSource, DefaultKeyword, names)

	require.Len(t, rep.Entries, 3)
	for i, name := range names {
		assert.Equal(t, name, rep.Entries[i].Name)
	}
	assert.Equal(t, 0, rep.Entries[0].Count())
	assert.Nil(t, rep.Entries[0].Lines())
	assert.Equal(t, []int{5}, rep.Entries[1].Lines())
	assert.Equal(t, []int{3, 10}, rep.Entries[2].Lines())
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  []int // offsets
		lines []int
	}{
		{name: "none", text: "class Foo(\nobject Foo\n", want: nil},
		{name: "single", text: "data class Foo(a)", want: []int{0}, lines: []int{1}},
		{name: "whitespace before paren", text: "x\ndata class Foo  \n(", want: []int{2}, lines: []int{2}},
		{name: "prefix name is not a match", text: "data class FooBar(\n", want: nil},
		{name: "suffix name is not a match", text: "data class XFoo(\n", want: nil},
		{name: "modifier before keyword", text: "internal data class Foo(", want: []int{9}, lines: []int{1}},
		{name: "extra space after keyword", text: "data class  Foo(", want: nil},
		{name: "vertical tab before paren", text: "data class Foo\v(", want: []int{0}, lines: []int{1}},
		{name: "no-break space before paren", text: "data class Foo\u00a0(", want: []int{0}, lines: []int{1}},
		{name: "ideographic space and NEL", text: "data class Foo\u3000\u0085(", want: []int{0}, lines: []int{1}},
		{name: "line separator before paren", text: "data class Foo\u2028(", want: []int{0}, lines: []int{1}},
		{name: "zero width space is not whitespace", text: "data class Foo\u200b(", want: nil},
		{name: "three in order", text: "data class Foo(\ndata class Foo(\n\ndata class Foo(", want: []int{0, 16, 33}, lines: []int{1, 2, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindMatches(tc.text, DefaultKeyword, "Foo")
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, len(tc.want))
			for i, m := range got {
				assert.Equal(t, tc.want[i], m.Offset)
				assert.Equal(t, tc.lines[i], m.Line)
				assert.Equal(t, LineNumberOf(tc.text, m.Offset), m.Line)
				assert.True(t, strings.HasPrefix(m.Text, "data class Foo"))
				assert.True(t, strings.HasSuffix(m.Text, "("))
			}
		})
	}
}

func TestFindMatchesEscapesName(t *testing.T) {
	text := "data class A.B(\ndata class AxB(\n"
	got := FindMatches(text, DefaultKeyword, "A.B")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Line)
}

func TestFindMatchesCustomKeyword(t *testing.T) {
	text := "record class Foo(\ndata class Foo(\n"
	got := FindMatches(text, "record class", "Foo")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 1, got[0].Column)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "User.kt")
	require.NoError(t, os.WriteFile(path, []byte(fooSource), 0o644))

	rep, err := Run(Options{File: path, Names: []string{"Foo", "Bar"}})
	require.NoError(t, err)
	assert.Equal(t, path, rep.File)
	assert.Equal(t, "utf-8", rep.Encoding)
	assert.Equal(t, DefaultKeyword, rep.Keyword)
	require.Len(t, rep.Entries, 2)
	assert.Equal(t, []int{3, 10}, rep.Entries[0].Lines())
	assert.Equal(t, 0, rep.Entries[1].Count())
}

func TestRunMissingFileProducesNoReport(t *testing.T) {
	rep, err := Run(Options{File: filepath.Join(t.TempDir(), "nope.kt"), Names: []string{"Foo"}})
	require.Error(t, err)
	assert.Nil(t, rep)
	assert.True(t, errors.Is(err, source.ErrNotFound))
}

func TestRunRequiresFileAndNames(t *testing.T) {
	_, err := Run(Options{Names: []string{"Foo"}})
	assert.Error(t, err)
	_, err = Run(Options{File: "x.kt"})
	assert.Error(t, err)
}
