package config

import (
	"errors"
	"strings"

	engineopts "github.com/phyten/dupdecl/internal/engine/opts"
)

func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		*target = &list
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setString(&cfg.Scan.File, "DUPDECL_FILE")
	setList(&cfg.Scan.Names, "DUPDECL_NAMES")
	setString(&cfg.Scan.Keyword, "DUPDECL_KEYWORD")
	setString(&cfg.Scan.Encoding, "DUPDECL_ENCODING")
	setBool(&cfg.Scan.FailOnDuplicates, "DUPDECL_FAIL_ON_DUPLICATES")

	setString(&cfg.Output.Format, "DUPDECL_OUTPUT")
	setString(&cfg.Output.Color, "DUPDECL_COLOR")
	setBool(&cfg.Output.Verbose, "DUPDECL_VERBOSE")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}

// TailLinesFromEnv reads DUPDECL_TAIL_LINES. It is separate from FromEnv so
// that a value meant for the tail command never fails a scan.
func TailLinesFromEnv(getenv func(string) string) (*int, error) {
	if getenv == nil {
		return nil, nil
	}
	const key = "DUPDECL_TAIL_LINES"
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return nil, nil
	}
	n, err := engineopts.ParseIntInRange(raw, key, 1, 0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
