package config

import (
	"sort"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/jmagar/claude-runner/internal/model"
)

// ProgramName is the name shown in usage and help output.
const ProgramName = "claude-runner"

// valueFlags take a value; the spelling maps to the long name go-arg knows.
var valueFlags = map[string]string{
	"-p":        "--prompt",
	"--prompt":  "--prompt",
	"-w":        "--workdir",
	"--workdir": "--workdir",
	"-m":        "--model",
	"--model":   "--model",
	"-o":        "--output",
	"--output":  "--output",
	"--extra":   "--extra",
	"--binary":  "--binary",
	"--cancel":  "--cancel",

	"--completion": "--completion",
}

var boolFlags = map[string]bool{
	"-h":                             true,
	"--help":                         true,
	"--dangerously-skip-permissions": true,
	"--dry-run":                      true,
	"--status":                       true,
	"--prune":                        true,
}

// longFlags lists every long spelling, for prefix expansion.
var longFlags = func() []string {
	var names []string
	for name := range valueFlags {
		if strings.HasPrefix(name, "--") {
			names = append(names, name)
		}
	}
	for name := range boolFlags {
		if strings.HasPrefix(name, "--") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}()

// expandPrefix resolves an abbreviated long flag ("--prom") to the single
// long flag it prefixes. Exact, ambiguous and unmatched names come back
// unchanged.
func expandPrefix(name string) string {
	if !strings.HasPrefix(name, "--") || len(name) < 3 {
		return name
	}
	match := ""
	for _, long := range longFlags {
		if long == name {
			return name
		}
		if strings.HasPrefix(long, name) {
			if match != "" {
				return name
			}
			match = long
		}
	}
	if match == "" {
		return name
	}
	return match
}

// FilterKnownArgs keeps the flags claude-runner understands and drops
// everything else, so unknown flags and stray positionals are ignored rather
// than rejected. Unambiguous long-flag prefixes are expanded. Known value
// flags are rewritten as "--long=value" so values starting with "-" survive
// parsing.
func FilterKnownArgs(argv []string) []string {
	var known []string
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if tok == "--" {
			break
		}
		name, value, hasValue := strings.Cut(tok, "=")
		name = expandPrefix(name)
		if boolFlags[name] && !hasValue {
			known = append(known, name)
			continue
		}

		long, ok := valueFlags[name]
		if !ok && !hasValue && len(tok) > 2 && !strings.HasPrefix(tok, "--") {
			// Attached short form: -pvalue
			if l, short := valueFlags[tok[:2]]; short {
				long, value, hasValue, ok = l, tok[2:], true, true
			}
		}
		if !ok {
			continue
		}
		if !hasValue {
			if i+1 >= len(argv) {
				known = append(known, long)
				continue
			}
			i++
			value = argv[i]
		}
		known = append(known, long+"="+value)
	}
	return known
}

// NewParser builds the go-arg parser for args.
func NewParser(args *model.Args) (*arg.Parser, error) {
	return arg.NewParser(arg.Config{Program: ProgramName}, args)
}

// ParseArgs parses argv (without the program name) into Args. The parser is
// returned alongside so callers can print usage on error; arg.ErrHelp is
// returned unchanged when help was requested.
func ParseArgs(argv []string) (*model.Args, *arg.Parser, error) {
	var args model.Args
	p, err := NewParser(&args)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Parse(FilterKnownArgs(argv)); err != nil {
		return &args, p, err
	}
	return &args, p, nil
}
