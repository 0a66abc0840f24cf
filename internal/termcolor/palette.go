package termcolor

import "math"

// severityCeiling is the occurrence count that maps to full red.
const severityCeiling = 5

func HeaderStyle() Style {
	return Style{Bold: true}
}

// MissingStyle is used for names without any declaration.
func MissingStyle() Style {
	return Style{Dim: true}
}

// UniqueStyle is used for names declared exactly once.
func UniqueStyle() Style {
	green := 2
	return Style{FGBase: &green}
}

// CountStyle colors a duplicate count line: two declarations are yellow-ish,
// severityCeiling or more are red. Richer profiles get a gradient.
func CountStyle(count int, profile Profile) Style {
	if count < 2 {
		return UniqueStyle()
	}
	switch profile {
	case ProfileTrueColor:
		r, g, b := gradientRGB(count)
		rgb := [3]uint8{r, g, b}
		return Style{Bold: true, FGTrue: &rgb}
	case ProfileANSI256:
		r, g, b := gradientRGB(count)
		idx := rgbToANSI256(r, g, b)
		return Style{Bold: true, FG256: &idx}
	default:
		color := 3
		if count >= severityCeiling {
			color = 1
		}
		return Style{Bold: true, FGBase: &color}
	}
}

// gradientRGB runs from yellow (count 2) to red (severityCeiling and above).
func gradientRGB(count int) (uint8, uint8, uint8) {
	t := float64(count-2) / float64(severityCeiling-2)
	if t <= 0 {
		return 255, 255, 0
	}
	if t >= 1 {
		return 255, 0, 0
	}
	g := uint8(math.Round(255 * (1 - t)))
	return 255, g, 0
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
