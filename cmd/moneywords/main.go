// Command moneywords spells out monetary amounts in words and composes the
// commercial paragraphs of proposal letters.
//
//	moneywords spell 1234.50
//	moneywords quote --price 12000 --periods 6 --unit month --contract NEC4
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/govalues/moneywords/internal/logger"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const service = "moneywords"

// Options are the global options shared by all commands.
type Options struct {
	Verbose     bool `short:"v" long:"verbose" env:"MONEYWORDS_VERBOSE" description:"Verbose logging mode"`
	Stackdriver bool `long:"stackdriver" env:"MONEYWORDS_STACKDRIVER" description:"Encode log entries for Google Stackdriver"`
}

type app struct {
	opts   Options
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}

	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = service

	if _, err := parser.AddCommand("spell",
		"Spell out amounts in words",
		"Spell out each amount in English words, using the unit names of the currency.",
		&spellCommand{app: a}); err != nil {
		panic(err)
	}
	if _, err := parser.AddCommand("quote",
		"Compose the commercial paragraphs of a proposal",
		"Print the price statement, the pricing basis, the duration and the contract clause of a proposal.",
		&quoteCommand{app: a}); err != nil {
		panic(err)
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		log, err := logger.New(service, logger.Options{
			Verbose:     a.opts.Verbose,
			Stackdriver: a.opts.Stackdriver,
			Output:      zapcore.AddSync(a.stderr),
		})
		if err != nil {
			return errors.Wrap(err, "creating logger")
		}
		defer func() { _ = log.Sync() }()
		a.log = log

		if err := cmd.Execute(args); err != nil {
			log.Debug("command failed", zap.Error(err))
			return err
		}
		return nil
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
