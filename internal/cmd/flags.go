package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/lithammer/dedent"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS] [SEQUENCE...]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Stderr.Write([]byte(dedent.Dedent(`

		Each SEQUENCE argument is a list of values separated by --sep.
		seqtools writes combinations to stdout, one per line, drawing one
		element from each sequence. Without --num, exactly one full cycle
		is written and every combination appears exactly once.
		`)))
	}
}

var k = koanf.New(".")

// setupConfig layers defaults, SEQTOOLS_* environment variables and command
// line flags, last wins.
func setupConfig() error {
	pflag.IntP("num", "n", 0, "Number of combinations to draw. 0 draws one full cycle.")
	pflag.StringP("file", "f", "", "Path to a YAML file holding the list of sequences.")
	pflag.StringP("sep", "s", ",", "Separator for values of a SEQUENCE argument.")
	pflag.Bool("color", defaultColor(), "Force color output.")
	pflag.CountP("quiet", "q", "Decrease log verbosity.")
	pflag.CountP("verbose", "v", "Increase log verbosity.")
	pflag.BoolP("help", "?", false, "Show this help message and exit.")
	pflag.BoolP("version", "V", false, "Show version and exit.")
	pflag.Parse()

	_ = k.Load(confmap.Provider(map[string]any{
		"num":   0,
		"sep":   ",",
		"color": defaultColor(),
	}, k.Delim()), nil)
	err := k.Load(env.Provider("SEQTOOLS_", k.Delim(), func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "SEQTOOLS_"))
	}), nil)
	if err != nil {
		return err
	}
	return k.Load(posflag.Provider(pflag.CommandLine, k.Delim(), k), nil)
}

func defaultColor() bool {
	plain := os.Getenv("NO_COLOR")
	if plain != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Controller holds flags and env values controlling a seqtools run.
type Controller struct {
	Num      int
	File     string
	Sep      string
	Color    bool
	Quiet    int
	Verbose  int
	LogLevel slog.Level
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func unmarshalController() (controller Controller, err error) {
	err = k.Unmarshal("", &controller)
	controller.LogLevel = levels[levelIndex(k.Int("verbose"), k.Int("quiet"))]
	return controller, err
}

// levelIndex clamps verbosity counts to the levels scale.
func levelIndex(verbose, quiet int) int {
	// Default log level is INFO, which index is 1.
	index := 1 - verbose + quiet
	return max(0, min(index, len(levels)-1))
}
