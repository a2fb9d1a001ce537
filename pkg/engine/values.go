package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/lineal/pkg/scene"
)

// sexpGeom carries a geometry value (a vec point or vector, or a geom
// line-like object) through the zygomys environment.
type sexpGeom struct {
	value any
}

func (g *sexpGeom) SexpString(ps *zygo.PrintState) string {
	kind, _, err := scene.Classify(g.value)
	if err != nil {
		return fmt.Sprintf("#<%v>", g.value)
	}
	return fmt.Sprintf("#<%s %v>", kind, g.value)
}
func (g *sexpGeom) Type() *zygo.RegisteredType { return nil }

func wrap(v any) zygo.Sexp {
	return &sexpGeom{value: v}
}

func sexpBool(b bool) zygo.Sexp {
	return &zygo.SexpBool{Val: b}
}

func sexpFloat(f float64) zygo.Sexp {
	return &zygo.SexpFloat{Val: f}
}

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs splits args into keyword and positional arguments. A trailing
// keyword with no value is recorded as a flag bound to SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	pa := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			pa.positional = append(pa.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			pa.kw[name] = args[i+1]
			i++
		} else {
			pa.kw[name] = zygo.SexpNull
		}
	}
	return pa
}

func describe(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %s", describe(s))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", describe(s))
}

// toGeom unwraps a geometry value produced by another builtin.
func toGeom(s zygo.Sexp) (any, error) {
	if g, ok := s.(*sexpGeom); ok {
		return g.value, nil
	}
	return nil, fmt.Errorf("expected geometry, got %s", describe(s))
}

// fromSexp converts the final value of a script into plain Go values:
// geometry stays as is, numbers become float64, lists become []any and
// null becomes nil.
func fromSexp(s zygo.Sexp) (any, error) {
	switch v := s.(type) {
	case nil:
		return nil, nil
	case *sexpGeom:
		return v.value, nil
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpStr:
		return v.S, nil
	case *zygo.SexpPair:
		items, err := zygo.ListToArray(v)
		if err != nil {
			return nil, err
		}
		return fromSexpSlice(items)
	case *zygo.SexpArray:
		return fromSexpSlice(v.Val)
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return s.SexpString(nil), nil
}

func fromSexpSlice(items []zygo.Sexp) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		v, err := fromSexp(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
