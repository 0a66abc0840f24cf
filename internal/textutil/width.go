package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (covers common CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns terminal display width (wcwidth-based, grapheme aware).
// Tabs count as a single cell.
func VisibleWidth(s string) int {
	width := 0
	forEachGrapheme(StripANSI(s), func(_ string, w int) bool {
		width += w
		return true
	})
	return width
}

// TruncateByWidth cuts s to at most w cells without splitting graphemes.
// When truncation happens the ellipsis is appended if it fits. Escape
// sequences are dropped from truncated results.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	budget := w - runewidth.StringWidth(ellipsis)
	if budget < 0 {
		budget = w
		ellipsis = ""
	}
	var b strings.Builder
	used := 0
	forEachGrapheme(StripANSI(s), func(seg string, segW int) bool {
		if used+segW > budget {
			return false
		}
		b.WriteString(seg)
		used += segW
		return true
	})
	return b.String() + ellipsis
}

// PadRight pads s on the right with spaces so that the visible width equals w.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func forEachGrapheme(s string, fn func(seg string, width int) bool) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		seg := g.Str()
		w := runewidth.StringWidth(seg)
		if seg == "\t" {
			w = 1
		}
		if !fn(seg, w) {
			return
		}
	}
}
