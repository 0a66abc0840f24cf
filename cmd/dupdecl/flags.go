package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/dupdecl/internal/config"
	engineopts "github.com/phyten/dupdecl/internal/engine/opts"
)

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type scanArgs struct {
	layer      config.Config
	configPath string
	showHelp   bool
}

type tailArgs struct {
	layer      config.Config
	configPath string
	width      int
	showHelp   bool
}

const scanUsage = `Usage: dupdecl [scan] [flags] FILE

Reports names declared more than once as "data class NAME(" in FILE.

Flags:
  -f, --file PATH            file to scan (or the positional FILE)
  -n, --name NAME            target name (repeatable, comma separated)
      --keyword TEXT         declaration keyword (default "data class")
  -e, --encoding NAME        text encoding of FILE (default utf-8)
  -o, --output FORMAT        text|table|json|ndjson|csv|markdown (default text)
      --color MODE           auto|always|never (default auto)
      --fail-on-duplicates   exit with status 3 when a duplicate is found
  -v, --verbose              log config resolution to stderr
      --config PATH          config file (default: discovered)
`

const tailUsage = `Usage: dupdecl tail [flags] FILE

Prints the line count of FILE and its last lines with line numbers.

Flags:
  -n, --lines N              number of lines to show (default 50)
  -e, --encoding NAME        text encoding of FILE (default utf-8)
      --width N              truncate each line to N cells (0 = unlimited)
      --config PATH          config file (default: discovered)
`

func parseScanArgs(args []string, stderr io.Writer) (scanArgs, error) {
	var out scanArgs
	fs := flag.NewFlagSet("dupdecl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, scanUsage) }

	var (
		file, keyword, encoding, format, color, cfgPath string
		names                                            stringList
		failOnDup, verbose                               bool
	)
	fs.StringVar(&file, "file", "", "")
	fs.StringVar(&file, "f", "", "")
	fs.Var(&names, "name", "")
	fs.Var(&names, "n", "")
	fs.StringVar(&keyword, "keyword", "", "")
	fs.StringVar(&encoding, "encoding", "", "")
	fs.StringVar(&encoding, "e", "", "")
	fs.StringVar(&format, "output", "", "")
	fs.StringVar(&format, "o", "", "")
	fs.StringVar(&color, "color", "", "")
	fs.BoolVar(&failOnDup, "fail-on-duplicates", false, "")
	fs.BoolVar(&verbose, "verbose", false, "")
	fs.BoolVar(&verbose, "v", false, "")
	fs.StringVar(&cfgPath, "config", "", "")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			out.showHelp = true
			return out, nil
		}
		return out, err
	}

	set := visited(fs)
	if set["file"] || set["f"] {
		out.layer.Scan.File = &file
	}
	switch len(positional) {
	case 0:
	case 1:
		if out.layer.Scan.File != nil {
			return out, fmt.Errorf("file given twice: --file %s and %s", file, positional[0])
		}
		p := positional[0]
		out.layer.Scan.File = &p
	default:
		return out, fmt.Errorf("expected one file, got %d: %s", len(positional), strings.Join(positional, " "))
	}
	if set["name"] || set["n"] {
		list := engineopts.SplitMulti(names)
		out.layer.Scan.Names = &list
	}
	if set["keyword"] {
		out.layer.Scan.Keyword = &keyword
	}
	if set["encoding"] || set["e"] {
		out.layer.Scan.Encoding = &encoding
	}
	if set["fail-on-duplicates"] {
		out.layer.Scan.FailOnDuplicates = &failOnDup
	}
	if set["output"] || set["o"] {
		out.layer.Output.Format = &format
	}
	if set["color"] {
		out.layer.Output.Color = &color
	}
	if set["verbose"] || set["v"] {
		out.layer.Output.Verbose = &verbose
	}
	out.configPath = cfgPath
	return out, nil
}

func parseTailArgs(args []string, stderr io.Writer) (tailArgs, error) {
	var out tailArgs
	fs := flag.NewFlagSet("dupdecl tail", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, tailUsage) }

	var (
		encoding, cfgPath string
		lines, width      int
	)
	fs.IntVar(&lines, "lines", 0, "")
	fs.IntVar(&lines, "n", 0, "")
	fs.StringVar(&encoding, "encoding", "", "")
	fs.StringVar(&encoding, "e", "", "")
	fs.IntVar(&width, "width", 0, "")
	fs.StringVar(&cfgPath, "config", "", "")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			out.showHelp = true
			return out, nil
		}
		return out, err
	}
	if len(positional) != 1 {
		return out, fmt.Errorf("tail expects exactly one file, got %d", len(positional))
	}
	file := positional[0]
	out.layer.Scan.File = &file

	set := visited(fs)
	if set["lines"] || set["n"] {
		if err := config.ValidateTailLines(lines); err != nil {
			return out, err
		}
		out.layer.Output.TailLines = &lines
	}
	if set["encoding"] || set["e"] {
		out.layer.Scan.Encoding = &encoding
	}
	if width < 0 {
		return out, fmt.Errorf("--width must be >= 0")
	}
	out.width = width
	out.configPath = cfgPath
	return out, nil
}

// parseInterspersed lets flags follow positional arguments
// ("dupdecl User.kt -n Foo"). Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		before := len(rest)
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		consumed := before - len(rest)
		if consumed > 0 && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
}

func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
