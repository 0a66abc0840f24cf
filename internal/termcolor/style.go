package termcolor

import (
	"strconv"
	"strings"
)

type Style struct {
	Bold   bool
	Dim    bool
	FGBase *int
	FG256  *int
	FGTrue *[3]uint8
}

// Apply wraps text in SGR sequences for s. Disabled or empty styles return
// text unchanged.
func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := s.codes()
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func (s Style) codes() []string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	switch {
	case s.FGTrue != nil:
		rgb := *s.FGTrue
		codes = append(codes, "38;2;"+strconv.Itoa(int(rgb[0]))+";"+strconv.Itoa(int(rgb[1]))+";"+strconv.Itoa(int(rgb[2])))
	case s.FG256 != nil:
		codes = append(codes, "38;5;"+strconv.Itoa(*s.FG256))
	case s.FGBase != nil:
		codes = append(codes, "3"+strconv.Itoa(*s.FGBase))
	}
	return codes
}
