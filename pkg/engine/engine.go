// Package engine evaluates geometry scripts. It wraps zygomys in a sandboxed
// environment, installs the geometry builtins and produces a scene.Scene
// from user source code.
package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chazu/lineal/pkg/scene"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Message string `json:"message"`
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Options tune evaluation.
type Options struct {
	Timeout    time.Duration
	MaxSamples int     // upper bound on points returned by sample
	Precision  float64 // default sampling step
}

// DefaultOptions returns the options used by NewEngine.
func DefaultOptions() Options {
	return Options{
		Timeout:    DefaultTimeout,
		MaxSamples: 1000,
		Precision:  1.0,
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithOptions replaces the evaluation options.
func WithOptions(o Options) Option {
	return func(e *Engine) { e.opts = o }
}

// WithLogger sets the logger used for evaluation tracing.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use, but a
// newer call to Evaluate supersedes older ones still in flight; use one
// Engine per independent stream of evaluations.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	opts       Options
	log        *zap.Logger
}

// NewEngine creates a new Engine instance.
func NewEngine(options ...Option) *Engine {
	e := &Engine{opts: DefaultOptions(), log: zap.NewNop()}
	for _, o := range options {
		o(e)
	}
	return e
}

// Evaluate runs source and returns the resulting scene.
//
// Return semantics:
//   - On success: returns scene + nil errors + nil error
//   - On parse/eval failure: returns nil scene + eval errors + nil error
//   - On fatal failure (timeout, panic, cancellation): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*scene.Scene, []EvalError, error) {
	return e.EvaluateContext(context.Background(), source)
}

// EvaluateContext is Evaluate with cancellation. Cancelling ctx abandons the
// evaluation the same way a timeout does.
func (e *Engine) EvaluateContext(ctx context.Context, source string) (*scene.Scene, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	log := e.log.With(zap.String("eval_id", uuid.NewString()), zap.Uint64("generation", gen))
	log.Debug("evaluation started", zap.Int("bytes", len(source)))
	start := time.Now()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		sc, evalErrs, err := e.evaluate(source)
		ch <- evalResult{scene: sc, errors: evalErrs, err: err}
	}()

	sc, evalErrs, err := waitWithTimeout(ctx, ch, e.opts.Timeout, gen, &e.mu, &e.generation)
	switch {
	case err != nil:
		log.Debug("evaluation failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
	case len(evalErrs) > 0:
		log.Debug("evaluation reported errors", zap.Int("errors", len(evalErrs)), zap.Duration("elapsed", time.Since(start)))
	default:
		log.Debug("evaluation finished", zap.Int("entities", sc.Len()), zap.Duration("elapsed", time.Since(start)))
	}
	return sc, evalErrs, err
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*scene.Scene, []EvalError, error) {
	sc := scene.New()
	if strings.TrimSpace(source) == "" {
		return sc, nil, nil
	}

	// Sandbox mode keeps user code away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, sc, e.opts)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}

	result, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	value, err := fromSexp(result)
	if err != nil {
		return nil, []EvalError{{Message: fmt.Sprintf("converting result: %v", err)}}, nil
	}
	sc.Value = value
	return sc, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into EvalError values, pulling
// the line number out of the message when there is one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
