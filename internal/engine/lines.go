package engine

import (
	"sort"
	"strings"
)

// LineNumberOf は offset より前にある改行の数 + 1（1 始まりの行番号）を返します。
// offset は [0, len(text)] に丸められます。
func LineNumberOf(text string, offset int) int {
	offset = clampOffset(offset, len(text))
	return strings.Count(text[:offset], "\n") + 1
}

// LineIndex は改行位置を事前計算し、オフセットから行・桁を二分探索で求めます。
type LineIndex struct {
	starts []int
	size   int
}

// NewLineIndex は text の各行の開始オフセットを記録します。
func NewLineIndex(text string) *LineIndex {
	starts := make([]int, 0, strings.Count(text, "\n")+1)
	starts = append(starts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(text)}
}

// LineCol returns the 1-based line and byte column of offset.
func (x *LineIndex) LineCol(offset int) (line, col int) {
	offset = clampOffset(offset, x.size)
	idx := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset })
	if idx == 0 {
		return 1, offset + 1
	}
	return idx, offset - x.starts[idx-1] + 1
}

func clampOffset(offset, size int) int {
	if offset < 0 {
		return 0
	}
	if offset > size {
		return size
	}
	return offset
}
