// Package cmd implements the seqtools command line entry point.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/simkit/seqtools/internal/logging"
	"github.com/simkit/seqtools/internal/perf"
	"github.com/simkit/seqtools/product"
)

func Main() {
	// Pick up SEQTOOLS_* variables from a local .env, if any.
	_ = godotenv.Load()
	err := logging.Setup()
	if err == nil {
		err = setupConfig()
	}
	if err != nil {
		slog.Error("Fatal error.", "err", err)
		os.Exit(1)
	}

	if k.Bool("help") {
		pflag.Usage()
		return
	} else if k.Bool("version") {
		showVersion()
		return
	}

	controller, err := unmarshalController()
	if err == nil {
		logging.SetHandler(controller.LogLevel, controller.Color)
		err = run(controller, pflag.Args())
	}
	if err != nil {
		slog.Error("Fatal error.", "err", err)
		if logging.CurrentLevel() > slog.LevelDebug {
			slog.Error("Run with --verbose to get more informations.")
		}
		var ec errorCode
		if errors.As(err, &ec) {
			ec.Exit()
		}
		os.Exit(1)
	}
}

func run(controller Controller, args []string) error {
	seqs, err := readSequences(controller, args)
	if err != nil {
		return err
	}
	slog.Debug("Generating combinations.", "sequences", len(seqs), "num", controller.Num)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var watch perf.StopWatch
	var count int
	watch.TimeIt(func() {
		count, err = writeCombinations(out, controller, seqs)
	})
	if err != nil {
		return err
	}

	vmPeak := perf.ReadVMPeak()
	slog.Info("Done.",
		"combinations", count,
		"elapsed", watch.Total,
		"mempeak", perf.FormatBytes(vmPeak*1024),
	)
	return nil
}

func writeCombinations(out *bufio.Writer, controller Controller, seqs [][]string) (int, error) {
	if controller.Num != 0 {
		combos, err := product.Take(controller.Num, seqs...)
		if err != nil {
			return 0, err
		}
		for _, combo := range combos {
			fmt.Fprintln(out, strings.Join(combo, controller.Sep))
		}
		return len(combos), nil
	}

	g, err := product.New(true, seqs...)
	if err != nil {
		return 0, err
	}
	slog.Debug("Writing one full cycle.", "combinations", g.Period())
	count := 0
	for {
		combo, err := g.Next()
		if errors.Is(err, product.ErrExhausted) {
			return count, nil
		}
		fmt.Fprintln(out, strings.Join(combo, controller.Sep))
		count++
	}
}

func readSequences(controller Controller, args []string) ([][]string, error) {
	if controller.File != "" {
		if len(args) > 0 {
			return nil, errorCode{code: 2, message: "both --file and sequence arguments given"}
		}
		return readSequencesFile(controller.File)
	}
	if len(args) == 0 {
		pflag.Usage()
		return nil, errorCode{code: 2, message: "no sequences given"}
	}
	seqs := make([][]string, 0, len(args))
	for _, arg := range args {
		seqs = append(seqs, strings.Split(arg, controller.Sep))
	}
	return seqs, nil
}

// readSequencesFile loads a YAML document holding a list of sequences.
func readSequencesFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows [][]any
	err = yaml.Unmarshal(data, &rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	seqs := make([][]string, 0, len(rows))
	for _, row := range rows {
		seq := make([]string, 0, len(row))
		for _, value := range row {
			seq = append(seq, fmt.Sprint(value))
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}
