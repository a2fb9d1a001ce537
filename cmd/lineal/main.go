// Command lineal evaluates geometry scripts and prints the resulting scenes
// as JSON, one result per script in argument order.
//
// Usage:
//
//	lineal [-config file] [-polylines] script...
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chazu/lineal/pkg/config"
	"github.com/chazu/lineal/pkg/engine"
	"github.com/chazu/lineal/pkg/logging"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lineal", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "YAML (.yaml, .yml) or INI (.ini, .gcfg, .conf) settings file")
	polylines := flags.Bool("polylines", false, "include tessellated polylines for line-like shapes")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: lineal [-config file] [-polylines] script...")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(stderr, "lineal:", err)
			return exitUsage
		}
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		fmt.Fprintln(stderr, "lineal:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	app := NewApp(cfg, *polylines, log)
	results := evaluateAll(ctx, app, flags.Args(), log)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Error("writing results", zap.Error(err))
		return exitFailed
	}

	for _, r := range results {
		if r.Failed() {
			return exitFailed
		}
	}
	return exitOK
}

// evaluateAll runs the scripts concurrently and returns their results in
// argument order. A script that cannot be read fails on its own.
func evaluateAll(ctx context.Context, app *App, paths []string, log *zap.Logger) []*Result {
	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				log.Error("reading script", zap.String("script", path), zap.Error(err))
				results[i] = &Result{
					Script:   path,
					Entities: []EntityData{},
					Errors:   []engine.EvalError{{Message: err.Error()}},
				}
				return nil
			}
			results[i] = app.Evaluate(ctx, path, string(source))
			return nil
		})
	}
	_ = g.Wait()
	return results
}
