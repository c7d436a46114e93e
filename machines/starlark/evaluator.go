// Package starlark hosts the kantera builtins in Starlark scripts.
//
// A script is a sequence of top-level statements, each one a form. Forms run
// in order against shared globals; a failing form is reported and the next
// one still runs, keeping whatever the earlier forms bound.
package starlark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/goweiwen/kantera/data"
	"github.com/goweiwen/kantera/env"
	"github.com/goweiwen/kantera/internal/helpers"
	"github.com/goweiwen/kantera/loader"
	"github.com/goweiwen/kantera/value"
)

// Evaluator runs scripts against an environment of builtins.
type Evaluator struct {
	env      *env.Env
	provider data.Provider
	fileOpts *syntax.FileOptions

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewEvaluator creates an evaluator for the bindings in e. provider supplies
// the ctx global on each evaluation and may be nil.
func NewEvaluator(handler slog.Handler, e *env.Env, provider data.Provider) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "kantera", "StarlarkEvaluator")
	return &Evaluator{
		env:      e,
		provider: provider,
		fileOpts: &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
			Recursion:       true,
		},
		logHandler: handler,
		logger:     logger,
	}
}

func (ev *Evaluator) String() string {
	return "starlark.Evaluator"
}

// Eval reads the script from ldr and runs it. See EvalSource.
func (ev *Evaluator) Eval(ctx context.Context, ldr loader.Loader) (*Result, error) {
	src, err := loader.ReadAll(ldr)
	if err != nil {
		return nil, err
	}
	return ev.EvalSource(ctx, loader.SourceName(ldr), src)
}

// EvalSource parses src and runs each form. A syntax error fails the whole
// script. Otherwise the result lists every form that ran, and the returned
// error joins the *FormError of each form that failed. Once ctx is done no
// further form runs and the error also carries context.Cause(ctx).
func (ev *Evaluator) EvalSource(ctx context.Context, name string, src []byte) (*Result, error) {
	logger := ev.logger.WithGroup("EvalSource").With("script", name)
	startTime := time.Now()

	f, err := ev.fileOpts.Parse(name, src, 0)
	if err != nil {
		logger.WarnContext(ctx, "parse failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	b := &bridge{env: ev.env}
	globals, err := ev.prepareGlobals(ctx, b)
	if err != nil {
		return nil, err
	}

	thread := &starlarkLib.Thread{
		Name: name,
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	lines := strings.Split(string(src), "\n")
	result := &Result{globals: globals, bridge: b}
	var errz []error
	for i, stmt := range f.Stmts {
		if ctx.Err() != nil {
			logger.WarnContext(ctx, "evaluation cancelled", "remaining", len(f.Stmts)-i)
			errz = append(errz, context.Cause(ctx))
			break
		}
		start, _ := stmt.Span()
		form := Form{Index: i, Source: sourceOf(lines, stmt)}

		v, err := execForm(thread, f, stmt, globals, b)
		if err != nil {
			// The thread's cancellation error does not carry the cause.
			if ctx.Err() != nil {
				err = context.Cause(ctx)
			}
			ferr := &FormError{Index: i, Pos: start, Source: form.Source, Err: err}
			logger.WarnContext(ctx, "form failed", "index", i, "pos", start.String(), "error", err)
			form.Err = ferr
			errz = append(errz, ferr)
		} else {
			form.Value = v
		}
		result.Forms = append(result.Forms, form)
		if form.Err != nil && ctx.Err() != nil {
			break
		}
	}

	result.ExecTime = time.Since(startTime)
	logger.DebugContext(ctx, "script complete",
		"forms", len(result.Forms), "failed", len(errz), "execTime", result.ExecTime)
	return result, errors.Join(errz...)
}

// prepareGlobals merges the standard modules, the environment and the ctx
// input data.
func (ev *Evaluator) prepareGlobals(ctx context.Context, b *bridge) (starlarkLib.StringDict, error) {
	globals := standardModules()

	host, err := b.globals()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	maps.Copy(globals, host)

	inputData := make(map[string]any)
	if ev.provider != nil {
		if inputData, err = ev.provider.GetData(ctx); err != nil {
			return nil, fmt.Errorf("failed to get input data from provider: %w", err)
		}
	}
	ctxDict, err := convertInputData(inputData)
	if err != nil {
		return nil, fmt.Errorf("%w: input data: %w", ErrConversion, err)
	}
	globals[data.Global] = ctxDict
	return globals, nil
}

// execForm runs one statement. Expression statements yield their value;
// other statements only update globals.
func execForm(
	thread *starlarkLib.Thread,
	f *syntax.File,
	stmt syntax.Stmt,
	globals starlarkLib.StringDict,
	b *bridge,
) (value.Value, error) {
	if expr, ok := stmt.(*syntax.ExprStmt); ok {
		out, err := starlarkLib.EvalExprOptions(f.Options, thread, expr.X, globals)
		if err != nil {
			return value.Value{}, err
		}
		return b.fromStarlark(out)
	}

	chunk := &syntax.File{Path: f.Path, Stmts: []syntax.Stmt{stmt}, Options: f.Options}
	return value.Value{}, starlarkLib.ExecREPLChunk(chunk, thread, globals)
}

// sourceOf returns the source lines a statement spans.
func sourceOf(lines []string, stmt syntax.Stmt) string {
	start, end := stmt.Span()
	from, to := int(start.Line)-1, int(end.Line)
	if from < 0 || from >= len(lines) {
		return ""
	}
	to = min(max(to, from+1), len(lines))
	return strings.TrimSpace(strings.Join(lines[from:to], "\n"))
}
