package config

import (
	"fmt"
	"strings"

	engineopts "github.com/phyten/dupdecl/internal/engine/opts"
)

func CanonicalizeColor(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

func ValidateTailLines(n int) error {
	if n < 1 {
		return fmt.Errorf("tail_lines must be >= 1")
	}
	return nil
}

// NormalizeOutput canonicalizes format and color. TailLines is only checked
// by the tail command (ValidateTailLines).
func NormalizeOutput(values OutputSettings) (OutputSettings, error) {
	var err error
	values.Format, err = engineopts.NormalizeOutput(values.Format)
	if err != nil {
		return values, err
	}
	values.Color, err = CanonicalizeColor(values.Color)
	if err != nil {
		return values, err
	}
	return values, nil
}
