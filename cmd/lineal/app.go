package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chazu/lineal/pkg/config"
	"github.com/chazu/lineal/pkg/engine"
	"github.com/chazu/lineal/pkg/scene"
	"github.com/chazu/lineal/pkg/tessellate"
)

// colorPalette assigns distinct plot colors to polylines.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App evaluates scripts and turns their scenes into JSON-ready results.
type App struct {
	engineOpts engine.Options
	tessOpts   tessellate.Options
	polylines  bool
	log        *zap.Logger
}

// NewApp maps the configuration onto engine and tessellation options.
func NewApp(c *config.Config, polylines bool, log *zap.Logger) *App {
	return &App{
		engineOpts: engine.Options{
			Timeout:    c.Eval.Timeout.Std(),
			MaxSamples: c.Eval.MaxSamples,
			Precision:  c.Eval.Precision,
		},
		tessOpts: tessellate.Options{
			Precision:  c.Eval.Precision,
			Extent:     c.Render.Extent,
			MaxSamples: c.Eval.MaxSamples,
		},
		polylines: polylines,
		log:       log,
	}
}

// EntityData is the JSON form of a scene entity.
type EntityData struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Kind  scene.EntityKind `json:"kind"`
	Dim   int              `json:"dim"`
	Shape string           `json:"shape"`
}

// PolylineData is a tessellated entity with its plot color.
type PolylineData struct {
	*tessellate.Polyline
	Color string `json:"color"`
}

// Result is the outcome of one script.
type Result struct {
	Script    string             `json:"script"`
	Entities  []EntityData       `json:"entities"`
	Value     any                `json:"value"`
	Polylines []PolylineData     `json:"polylines,omitempty"`
	Errors    []engine.EvalError `json:"errors,omitempty"`
}

// Failed reports whether the script produced any error.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// Evaluate runs one script. Each call uses its own engine so concurrent
// scripts never supersede each other.
func (a *App) Evaluate(ctx context.Context, script, source string) *Result {
	result := &Result{Script: script, Entities: []EntityData{}}
	log := a.log.With(zap.String("script", script))

	eng := engine.NewEngine(engine.WithOptions(a.engineOpts), engine.WithLogger(log))
	sc, evalErrs, err := eng.EvaluateContext(ctx, source)
	if err != nil {
		log.Error("evaluation failed", zap.Error(err))
		result.Errors = append(result.Errors, engine.EvalError{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Error("script error", zap.Int("line", e.Line), zap.String("message", e.Message))
		}
		result.Errors = evalErrs
		return result
	}

	for _, e := range sc.Entities {
		result.Entities = append(result.Entities, EntityData{
			ID:    e.ID.Short(),
			Name:  e.Name,
			Kind:  e.Kind,
			Dim:   e.Dim,
			Shape: fmt.Sprint(e.Shape),
		})
	}
	result.Value = jsonValue(sc.Value)

	if !a.polylines {
		return result
	}
	lines, err := tessellate.Tessellate(sc, a.tessOpts)
	if err != nil {
		log.Error("tessellation failed", zap.Error(err))
		result.Errors = append(result.Errors, engine.EvalError{Message: "tessellation failed: " + err.Error()})
		return result
	}
	for i, pl := range lines {
		result.Polylines = append(result.Polylines, PolylineData{
			Polyline: pl,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}
	return result
}

// jsonValue renders geometry through its String method; plain values pass
// through. Lists are converted element by element.
func jsonValue(v any) any {
	switch v := v.(type) {
	case nil, bool, float64, string:
		return v
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = jsonValue(item)
		}
		return out
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
