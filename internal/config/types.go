package config

import (
	"strings"

	"github.com/phyten/dupdecl/internal/engine"
)

type ScanConfig struct {
	File             *string   `yaml:"file" toml:"file" json:"file"`
	Names            *[]string `yaml:"names" toml:"names" json:"names"`
	Keyword          *string   `yaml:"keyword" toml:"keyword" json:"keyword"`
	Encoding         *string   `yaml:"encoding" toml:"encoding" json:"encoding"`
	FailOnDuplicates *bool     `yaml:"fail_on_duplicates" toml:"fail_on_duplicates" json:"fail_on_duplicates"`
}

type OutputConfig struct {
	Format    *string `yaml:"format" toml:"format" json:"format"`
	Color     *string `yaml:"color" toml:"color" json:"color"`
	Verbose   *bool   `yaml:"verbose" toml:"verbose" json:"verbose"`
	TailLines *int    `yaml:"tail_lines" toml:"tail_lines" json:"tail_lines"`
}

type Config struct {
	Scan   ScanConfig   `yaml:"scan" toml:"scan" json:"scan"`
	Output OutputConfig `yaml:"output" toml:"output" json:"output"`
}

type ScanSettings struct {
	File             string
	Names            []string
	Keyword          string
	Encoding         string
	FailOnDuplicates bool
}

type OutputSettings struct {
	Format    string
	Color     string
	Verbose   bool
	TailLines int
}

func ScanSettingsFromOptions(opts engine.Options) ScanSettings {
	return ScanSettings{
		File:     opts.File,
		Names:    cloneStrings(opts.Names),
		Keyword:  opts.Keyword,
		Encoding: opts.Encoding,
	}
}

func (s ScanSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	if trimmed := strings.TrimSpace(s.File); trimmed != "" {
		opts.File = trimmed
	}
	opts.Names = cloneStrings(s.Names)
	opts.Keyword = s.Keyword
	opts.Encoding = s.Encoding
}

func DefaultOutputSettings() OutputSettings {
	return OutputSettings{
		Format:    "text",
		Color:     "auto",
		Verbose:   false,
		TailLines: 50,
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
