package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/phyten/dupdecl/internal/config"
	"github.com/phyten/dupdecl/internal/engine"
	engineopts "github.com/phyten/dupdecl/internal/engine/opts"
	"github.com/phyten/dupdecl/internal/output"
	"github.com/phyten/dupdecl/internal/termcolor"
)

const (
	exitOK         = 0
	exitError      = 1
	exitUsage      = 2
	exitDuplicates = 3
)

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	logger := log.New(stderr, "", 0)
	if len(args) > 0 {
		switch args[0] {
		case "tail":
			return tailCmd(args[1:], stdout, logger, getenv)
		case "scan":
			args = args[1:]
		}
	}
	return scanCmd(args, stdout, logger, getenv)
}

func scanCmd(args []string, stdout io.Writer, logger *log.Logger, getenv func(string) string) int {
	parsed, err := parseScanArgs(args, logger.Writer())
	if err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitUsage
	}
	if parsed.showHelp {
		return exitOK
	}

	settings, err := resolveSettings(parsed.layer, parsed.configPath, false, getenv, logger)
	if err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitUsage
	}

	opts := engineopts.Defaults()
	settings.scan.ApplyToOptions(&opts)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitUsage
	}
	if settings.output.Verbose {
		logger.Printf("checking %d name(s) in %s (encoding %s, keyword %q)", len(opts.Names), opts.File, opts.Encoding, opts.Keyword)
	}

	report, err := engine.Run(opts)
	if err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitError
	}

	colors := resolveColors(settings.output.Color, stdout, getenv)
	if err := output.Write(stdout, settings.output.Format, report, colors); err != nil {
		logger.Printf("dupdecl: %v", err)
		return exitError
	}

	if settings.scan.FailOnDuplicates && len(report.Duplicates()) > 0 {
		if settings.output.Verbose {
			logger.Printf("%d name(s) declared more than once", len(report.Duplicates()))
		}
		return exitDuplicates
	}
	return exitOK
}

type runSettings struct {
	scan   config.ScanSettings
	output config.OutputSettings
}

// resolveSettings merges defaults < config file < environment (.env included)
// < flags. DUPDECL_TAIL_LINES is only read when withTail is set.
func resolveSettings(flags config.Config, explicitConfig string, withTail bool, getenv func(string) string, logger *log.Logger) (runSettings, error) {
	var out runSettings
	env, err := config.EnvWithDotenv(".env", getenv)
	if err != nil {
		return out, fmt.Errorf("read .env: %w", err)
	}
	envLayer, err := config.FromEnv(env)
	if err != nil {
		return out, err
	}
	if withTail {
		envLayer.Output.TailLines, err = config.TailLinesFromEnv(env)
		if err != nil {
			return out, err
		}
	}

	if strings.TrimSpace(explicitConfig) == "" {
		explicitConfig = env("DUPDECL_CONFIG")
	}
	startDir := "."
	if f := firstNonEmpty(flags.Scan.File, envLayer.Scan.File); f != "" {
		startDir = filepath.Dir(f)
	}
	path, source, err := config.Find(startDir, explicitConfig, env("XDG_CONFIG_HOME"), env("HOME"))
	if err != nil {
		return out, fmt.Errorf("locate config: %w", err)
	}
	var fileLayer config.Config
	if path != "" {
		fileLayer, err = config.Load(path)
		if err != nil {
			return out, err
		}
	}

	base := config.ScanSettingsFromOptions(engineopts.Defaults())
	out.scan = config.MergeScan(base, fileLayer.Scan, envLayer.Scan, flags.Scan)
	out.output = config.MergeOutput(config.DefaultOutputSettings(), fileLayer.Output, envLayer.Output, flags.Output)
	out.output, err = config.NormalizeOutput(out.output)
	if err != nil {
		return out, err
	}
	if out.output.Verbose {
		if path != "" {
			logger.Printf("config: %s (%s)", path, source)
		} else {
			logger.Printf("config: none found")
		}
	}
	return out, nil
}

func resolveColors(raw string, out io.Writer, getenv func(string) string) output.Colors {
	mode, err := termcolor.ParseMode(raw)
	if err != nil {
		mode = termcolor.ModeAuto
	}
	env := colorEnv(getenv)
	return output.Colors{
		Enabled: termcolor.Resolve(mode, out, env),
		Profile: termcolor.DetectProfile(env),
	}
}

func colorEnv(getenv func(string) string) map[string]string {
	env := make(map[string]string)
	for _, key := range []string{"TERM", "NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "FORCE_COLOR", "COLORTERM"} {
		if v := getenv(key); v != "" {
			env[key] = v
		}
	}
	return env
}

func firstNonEmpty(values ...*string) string {
	out := ""
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			out = strings.TrimSpace(*v)
		}
	}
	return out
}
