// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/vecxify/bigint"
	"github.com/katalvlaran/vecxify/internal/cli"
	"github.com/katalvlaran/vecxify/internal/selfcheck"
	"github.com/katalvlaran/vecxify/sheet"
)

// main is the entrypoint for the vecxify binary.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:], nil); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args (layered over environ, nil meaning the process
// environment) and dispatches the command. Results and logs go to outW.
func run(ctx context.Context, outW io.Writer, args []string, environ map[string]string) error {
	cfg, shouldExit, err := cli.Parse(args, outW, environ)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := cli.NewLogger(cfg, outW)
	logger.Debug("Configuration resolved.", "command", cfg.Command, "seed", cfg.Seed)

	switch cfg.Command {
	case cli.CommandSelfCheck:
		return runSelfCheck(ctx, outW, logger, cfg.Seed)
	case cli.CommandEval:
		return runEval(ctx, outW, logger, cfg.Args[0])
	default:
		return runCalc(outW, cfg.Args[0], cfg.Args[1], cfg.Args[2])
	}
}

func runSelfCheck(ctx context.Context, outW io.Writer, logger *slog.Logger, seed int64) error {
	rep, err := selfcheck.Run(ctx, logger, seed, selfcheck.Checks())
	for _, o := range rep.Outcomes {
		if o.Passed() {
			fmt.Fprintf(outW, "PASS %s\n", o.Name)
		} else {
			fmt.Fprintf(outW, "FAIL %s: %v\n", o.Name, o.Err)
		}
	}
	if err != nil {
		return err
	}
	if !rep.OK() {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d checks failed", rep.Failed(), len(rep.Outcomes))}
	}

	return nil
}

func runEval(ctx context.Context, outW io.Writer, logger *slog.Logger, path string) error {
	s, err := sheet.Load(path)
	if err != nil {
		return err
	}
	logger.Info("Worksheet loaded.", "path", path, "values", len(s.Names()), "steps", len(s.Steps()))

	results, err := s.Eval(ctx)
	for _, r := range results {
		printResult(outW, r.Name, r.Value)
	}

	return err
}

func runCalc(outW io.Writer, lhs, op, rhs string) error {
	a, err := bigint.Parse(lhs)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("calc: left operand: %v", err)}
	}
	b, err := bigint.Parse(rhs)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("calc: right operand: %v", err)}
	}
	v, err := sheet.Apply(op, sheet.IntValue(a), sheet.IntValue(b))
	if err != nil {
		return err
	}
	fmt.Fprintln(outW, v)

	return nil
}

// printResult writes "name = value"; multi-line values start on their own line.
func printResult(outW io.Writer, name string, v sheet.Value) {
	s := v.String()
	if strings.Contains(s, "\n") {
		fmt.Fprintf(outW, "%s =\n%s\n", name, s)
		return
	}
	fmt.Fprintf(outW, "%s = %s\n", name, s)
}
