package opts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/dupdecl/internal/engine"
	"github.com/phyten/dupdecl/internal/source"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// OutputFormats lists the accepted --output values.
var OutputFormats = []string{"text", "table", "json", "ndjson", "csv", "markdown"}

// Defaults returns the baseline options shared by every input layer.
func Defaults() engine.Options {
	return engine.Options{
		File:     "",
		Names:    nil,
		Keyword:  engine.DefaultKeyword,
		Encoding: source.EncodingUTF8,
	}
}

// NormalizeAndValidate ensures the options are canonical before a run.
func NormalizeAndValidate(o *engine.Options) error {
	o.File = strings.TrimSpace(o.File)
	if o.File == "" {
		return errors.New("no file to scan: pass a path or set file_path")
	}

	o.Names = trimSlice(o.Names)
	if len(o.Names) == 0 {
		return errors.New("no target names: pass --name or set target_names")
	}

	o.Keyword = strings.Join(strings.Fields(o.Keyword), " ")
	if o.Keyword == "" {
		o.Keyword = engine.DefaultKeyword
	}

	enc, err := source.CanonicalEncoding(o.Encoding)
	if err != nil {
		return fmt.Errorf("invalid --encoding: %w", err)
	}
	o.Encoding = enc
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	v := strings.TrimSpace(raw)
	n, err := strconv.Atoi(v)
	if v == "" || err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the --output value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "text", nil
	case "md":
		return "markdown", nil
	}
	for _, f := range OutputFormats {
		if v == f {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid --output: %s (want one of %s)", value, strings.Join(OutputFormats, "|"))
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
