// Command kantera evaluates a scene script and prints the value of its last
// expression.
//
// Usage:
//
//	kantera [-config kantera.yaml] [-log-level debug] [-all] script.star
//
// A script path of "-" reads the script from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/goweiwen/kantera"
	"github.com/goweiwen/kantera/loader"
	"github.com/goweiwen/kantera/machines/starlark"
	"github.com/goweiwen/kantera/options"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kantera", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	levelFlag := fs.String("log-level", "", "log level, overriding the config file")
	all := fs.Bool("all", false, "print the value of every expression form")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one script path")
	}

	file := &options.File{}
	if *configPath != "" {
		var err error
		if file, err = options.LoadFile(*configPath); err != nil {
			return err
		}
	}
	if *levelFlag != "" {
		file.LogLevel = *levelFlag
	}
	level, err := file.Level()
	if err != nil {
		return err
	}

	opts := append(file.Options(), options.WithLogHandler(newHandler(stderr, level)))
	rt, err := kantera.New(opts...)
	if err != nil {
		return err
	}

	ldr, err := newLoader(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	result, evalErr := rt.Eval(ctx, ldr)
	if result == nil {
		return evalErr
	}
	printResult(stdout, result, *all)
	if evalErr != nil {
		return fmt.Errorf("%d of %d forms failed: %w", len(result.Failed()), len(result.Forms), evalErr)
	}
	return nil
}

// newHandler writes text to terminals and JSON everywhere else.
func newHandler(w io.Writer, level slog.Level) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.NewTextHandler(w, handlerOpts)
	}
	return slog.NewJSONHandler(w, handlerOpts)
}

func newLoader(path string, stdin io.Reader) (loader.Loader, error) {
	if path == "-" {
		return loader.NewFromIoReader(stdin, "stdin")
	}
	return loader.NewFromDisk(path)
}

func printResult(w io.Writer, result *starlark.Result, all bool) {
	if !all {
		if v, ok := result.Last(); ok {
			fmt.Fprintln(w, v)
		}
		return
	}
	for _, form := range result.Forms {
		if form.Err == nil && form.Value.IsValid() {
			fmt.Fprintf(w, "%d: %s\n", form.Index+1, form.Value)
		}
	}
}
