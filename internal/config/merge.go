package config

import "strings"

func MergeScan(base ScanSettings, layers ...ScanConfig) ScanSettings {
	out := base
	for _, layer := range layers {
		out.File = ResolveAndTrim(out.File, layer.File)
		out.Names = ResolveStrings(out.Names, layer.Names)
		out.Keyword = ResolveString(out.Keyword, layer.Keyword)
		out.Encoding = ResolveAndTrim(out.Encoding, layer.Encoding)
		out.FailOnDuplicates = ResolveBool(out.FailOnDuplicates, layer.FailOnDuplicates)
	}
	return out
}

func MergeOutput(base OutputSettings, layers ...OutputConfig) OutputSettings {
	out := base
	for _, layer := range layers {
		out.Format = ResolveAndTrim(out.Format, layer.Format)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Verbose = ResolveBool(out.Verbose, layer.Verbose)
		out.TailLines = ResolveInt(out.TailLines, layer.TailLines)
	}
	if strings.TrimSpace(out.Format) == "" {
		out.Format = "text"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
