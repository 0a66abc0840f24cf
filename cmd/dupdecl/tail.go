package main

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/phyten/dupdecl/internal/config"
	"github.com/phyten/dupdecl/internal/source"
	"github.com/phyten/dupdecl/internal/textutil"
)

func tailCmd(args []string, stdout io.Writer, logger *log.Logger, getenv func(string) string) int {
	parsed, err := parseTailArgs(args, logger.Writer())
	if err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitUsage
	}
	if parsed.showHelp {
		return exitOK
	}

	settings, err := resolveSettings(parsed.layer, parsed.configPath, true, getenv, logger)
	if err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitUsage
	}
	if err := config.ValidateTailLines(settings.output.TailLines); err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitUsage
	}
	enc, err := source.CanonicalEncoding(settings.scan.Encoding)
	if err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitUsage
	}

	text, err := source.Load(settings.scan.File, enc)
	if err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitError
	}
	if err := writeTail(stdout, source.Lines(text), settings.output.TailLines, parsed.width); err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitError
	}
	return exitOK
}

// writeTail prints the line count, then the last n lines numbered from 1.
func writeTail(w io.Writer, lines []string, n, width int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Total lines: %d\n", len(lines))
	start := len(lines) - n
	if start < 0 {
		start = 0
	}
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if width > 0 {
			line = textutil.TruncateByWidth(line, width, "…")
		}
		fmt.Fprintf(bw, "%d: %s\n", i+1, line)
	}
	return bw.Flush()
}
