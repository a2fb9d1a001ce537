package engine

import (
	"fmt"
	"math"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/lineal/pkg/geom"
	"github.com/chazu/lineal/pkg/scene"
	"github.com/chazu/lineal/pkg/vec"
)

// builtinFunc is the signature zygomys expects for user functions.
type builtinFunc = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// registerBuiltins installs the geometry builtins into env. Shapes named with
// defshape are recorded in sc.
//
// Source must go through preprocessSource first so that :keyword tokens
// reach the builtins as recognizable strings.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene, opts Options) {
	b := &builtins{scene: sc, opts: opts}
	for name, fn := range map[string]builtinFunc{
		"point":         b.point,
		"vec":           b.vector,
		"line":          b.line,
		"ray":           b.ray,
		"segment":       b.segment,
		"defshape":      b.defshape,
		"shape":         b.shape,
		"contains":      b.contains,
		"parallel":      b.parallel,
		"perpendicular": b.perpendicular,
		"angle":         b.angle,
		"distance":      b.distance,
		"intersect":     b.intersect,
		"sample":        b.sample,
		"length":        b.length,
		"equal":         b.equal,
	} {
		env.AddFunction(name, fn)
	}
}

type builtins struct {
	scene *scene.Scene
	opts  Options
}

// floats converts every argument to a number.
func floats(args []zygo.Sexp) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// geoms unwraps exactly n geometry arguments.
func geoms(name string, args []zygo.Sexp, n int) ([]any, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: want %d arguments, got %d: %w", name, n, len(args), vec.ErrArity)
	}
	out := make([]any, n)
	for i, a := range args {
		g, err := toGeom(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		out[i] = g
	}
	return out, nil
}

func mismatch(name string, a, b any) error {
	return fmt.Errorf("%s: unsupported operands %T and %T", name, a, b)
}

// (point x y [z])
func (b *builtins) point(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	xs, err := floats(args)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("point: %w", err)
	}
	if len(xs) == 3 {
		p, err := vec.NewPoint3FromSlice(xs)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: %w", err)
		}
		return wrap(p), nil
	}
	p, err := vec.NewPoint2FromSlice(xs)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("point: %w", err)
	}
	return wrap(p), nil
}

// (vec x y [z])
func (b *builtins) vector(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	xs, err := floats(args)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec: %w", err)
	}
	if len(xs) == 3 {
		v, err := vec.NewVector3FromSlice(xs)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec: %w", err)
		}
		return wrap(v), nil
	}
	v, err := vec.NewVector2FromSlice(xs)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec: %w", err)
	}
	return wrap(v), nil
}

// axialArgs reads either (p v) or (:through a b) and reports which form was
// used.
func axialArgs(name string, args []zygo.Sexp) (a, b any, through bool, err error) {
	pa := parseArgs(args)
	var raw []zygo.Sexp
	if first, ok := pa.kw["through"]; ok {
		through = true
		raw = append([]zygo.Sexp{first}, pa.positional...)
	} else {
		raw = pa.positional
	}
	gs, err := geoms(name, raw, 2)
	if err != nil {
		return nil, nil, false, err
	}
	return gs[0], gs[1], through, nil
}

// (line p v) or (line :through a b)
func (b *builtins) line(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	p, q, through, err := axialArgs("line", args)
	if err != nil {
		return zygo.SexpNull, err
	}
	var l any
	switch p := p.(type) {
	case vec.Point2:
		switch q := q.(type) {
		case vec.Vector2:
			if !through {
				l, err = geom.NewLine2(p, q)
			}
		case vec.Point2:
			if through {
				l, err = geom.NewLineThrough2(p, q)
			}
		}
	case vec.Point3:
		switch q := q.(type) {
		case vec.Vector3:
			if !through {
				l, err = geom.NewLine3(p, q)
			}
		case vec.Point3:
			if through {
				l, err = geom.NewLineThrough3(p, q)
			}
		}
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("line: %w", err)
	}
	if l == nil {
		return zygo.SexpNull, mismatch("line", p, q)
	}
	return wrap(l), nil
}

// (ray p v) or (ray :through a b)
func (b *builtins) ray(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	p, q, through, err := axialArgs("ray", args)
	if err != nil {
		return zygo.SexpNull, err
	}
	var h any
	switch p := p.(type) {
	case vec.Point2:
		switch q := q.(type) {
		case vec.Vector2:
			if !through {
				h, err = geom.NewHalfLine2(p, q)
			}
		case vec.Point2:
			if through {
				h, err = geom.NewHalfLineThrough2(p, q)
			}
		}
	case vec.Point3:
		switch q := q.(type) {
		case vec.Vector3:
			if !through {
				h, err = geom.NewHalfLine3(p, q)
			}
		case vec.Point3:
			if through {
				h, err = geom.NewHalfLineThrough3(p, q)
			}
		}
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("ray: %w", err)
	}
	if h == nil {
		return zygo.SexpNull, mismatch("ray", p, q)
	}
	return wrap(h), nil
}

// (segment a b)
func (b *builtins) segment(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("segment", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	var s any
	switch p := gs[0].(type) {
	case vec.Point2:
		if q, ok := gs[1].(vec.Point2); ok {
			s, err = geom.NewSegment2(p, q)
		}
	case vec.Point3:
		if q, ok := gs[1].(vec.Point3); ok {
			s, err = geom.NewSegment3(p, q)
		}
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("segment: %w", err)
	}
	if s == nil {
		return zygo.SexpNull, mismatch("segment", gs[0], gs[1])
	}
	return wrap(s), nil
}

// (defshape "name" expr)
func (b *builtins) defshape(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("defshape requires a name and a body expression")
	}
	shapeName, err := toString(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("defshape: name: %w", err)
	}
	value, err := toGeom(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
	}
	e, err := scene.NewEntity(shapeName, value)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
	}
	if err := b.scene.Add(e); err != nil {
		return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
	}
	return args[1], nil
}

// (shape "name")
func (b *builtins) shape(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("shape requires a name argument")
	}
	shapeName, err := toString(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("shape: %w", err)
	}
	e := b.scene.Lookup(shapeName)
	if e == nil {
		return zygo.SexpNull, fmt.Errorf("shape: no shape named %q", shapeName)
	}
	return wrap(e.Shape), nil
}

// (contains obj p)
func (b *builtins) contains(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("contains", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	switch l := gs[0].(type) {
	case geom.LineLike2:
		if p, ok := gs[1].(vec.Point2); ok {
			return sexpBool(l.Contains(p)), nil
		}
	case geom.LineLike3:
		if p, ok := gs[1].(vec.Point3); ok {
			return sexpBool(l.Contains(p)), nil
		}
	}
	return zygo.SexpNull, mismatch("contains", gs[0], gs[1])
}

// (parallel a b) on two vectors or two line-like objects
func (b *builtins) parallel(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("parallel", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	switch x := gs[0].(type) {
	case vec.Vector2:
		if y, ok := gs[1].(vec.Vector2); ok {
			return sexpBool(geom.AreParallel(x, y)), nil
		}
	case vec.Vector3:
		if y, ok := gs[1].(vec.Vector3); ok {
			return sexpBool(geom.AreParallel(x, y)), nil
		}
	case geom.LineLike2:
		if y, ok := gs[1].(geom.LineLike2); ok {
			return sexpBool(geom.LinesParallel[vec.Point2, vec.Vector2](x, y)), nil
		}
	case geom.LineLike3:
		if y, ok := gs[1].(geom.LineLike3); ok {
			return sexpBool(geom.LinesParallel[vec.Point3, vec.Vector3](x, y)), nil
		}
	}
	return zygo.SexpNull, mismatch("parallel", gs[0], gs[1])
}

// (perpendicular a b) on two vectors or two line-like objects
func (b *builtins) perpendicular(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("perpendicular", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	switch x := gs[0].(type) {
	case vec.Vector2:
		if y, ok := gs[1].(vec.Vector2); ok {
			return sexpBool(geom.ArePerpendicular(x, y)), nil
		}
	case vec.Vector3:
		if y, ok := gs[1].(vec.Vector3); ok {
			return sexpBool(geom.ArePerpendicular(x, y)), nil
		}
	case geom.LineLike2:
		if y, ok := gs[1].(geom.LineLike2); ok {
			return sexpBool(geom.LinesPerpendicular[vec.Point2, vec.Vector2](x, y)), nil
		}
	case geom.LineLike3:
		if y, ok := gs[1].(geom.LineLike3); ok {
			return sexpBool(geom.LinesPerpendicular[vec.Point3, vec.Vector3](x, y)), nil
		}
	}
	return zygo.SexpNull, mismatch("perpendicular", gs[0], gs[1])
}

// (angle a b) returns radians; vectors give the included angle in [0, pi],
// lines the acute angle between their directions.
func (b *builtins) angle(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("angle", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	switch x := gs[0].(type) {
	case vec.Vector2:
		if y, ok := gs[1].(vec.Vector2); ok {
			return sexpFloat(geom.IncludedAngle(x, y)), nil
		}
	case vec.Vector3:
		if y, ok := gs[1].(vec.Vector3); ok {
			return sexpFloat(geom.IncludedAngle(x, y)), nil
		}
	case geom.LineLike2:
		if y, ok := gs[1].(geom.LineLike2); ok {
			return sexpFloat(geom.LineAngle[vec.Point2, vec.Vector2](x, y)), nil
		}
	case geom.LineLike3:
		if y, ok := gs[1].(geom.LineLike3); ok {
			return sexpFloat(geom.LineAngle[vec.Point3, vec.Vector3](x, y)), nil
		}
	}
	return zygo.SexpNull, mismatch("angle", gs[0], gs[1])
}

// (distance a b) between two points, a line-like object and a point (in
// either order), or two parallel line-like objects.
func (b *builtins) distance(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("distance", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	x, y := gs[0], gs[1]
	if _, isPoint := x.(vec.Point2); isPoint {
		x, y = y, x
	} else if _, isPoint := x.(vec.Point3); isPoint {
		x, y = y, x
	}
	switch x := x.(type) {
	case vec.Point2:
		if q, ok := y.(vec.Point2); ok {
			return sexpFloat(x.DistanceTo(q)), nil
		}
	case vec.Point3:
		if q, ok := y.(vec.Point3); ok {
			return sexpFloat(x.DistanceTo(q)), nil
		}
	case geom.LineLike2:
		switch y := y.(type) {
		case vec.Point2:
			return sexpFloat(x.DistanceTo(y)), nil
		case geom.LineLike2:
			d, err := geom.DistanceBetween[vec.Point2, vec.Vector2](x, y)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("distance: %w", err)
			}
			return sexpFloat(d), nil
		}
	case geom.LineLike3:
		switch y := y.(type) {
		case vec.Point3:
			return sexpFloat(x.DistanceTo(y)), nil
		case geom.LineLike3:
			d, err := geom.DistanceBetween[vec.Point3, vec.Vector3](x, y)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("distance: %w", err)
			}
			return sexpFloat(d), nil
		}
	}
	return zygo.SexpNull, mismatch("distance", gs[0], gs[1])
}

// (intersect a b) returns the intersection point, or nil when there is none.
func (b *builtins) intersect(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("intersect", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	switch x := gs[0].(type) {
	case geom.LineLike2:
		if y, ok := gs[1].(geom.LineLike2); ok {
			if p, ok := x.IntersectionWith(y); ok {
				return wrap(p), nil
			}
			return zygo.SexpNull, nil
		}
	case geom.LineLike3:
		if y, ok := gs[1].(geom.LineLike3); ok {
			if p, ok := x.IntersectionWith(y); ok {
				return wrap(p), nil
			}
			return zygo.SexpNull, nil
		}
	}
	return zygo.SexpNull, mismatch("intersect", gs[0], gs[1])
}

// (sample obj [precision] :limit n)
func (b *builtins) sample(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if len(pa.positional) < 1 || len(pa.positional) > 2 {
		return zygo.SexpNull, fmt.Errorf("sample: want an object and an optional precision: %w", vec.ErrArity)
	}
	obj, err := toGeom(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("sample: %w", err)
	}
	precision := b.opts.Precision
	if len(pa.positional) == 2 {
		if precision, err = toFloat64(pa.positional[1]); err != nil {
			return zygo.SexpNull, fmt.Errorf("sample: precision: %w", err)
		}
	}
	limit := b.opts.MaxSamples
	if v, ok := pa.kw["limit"]; ok {
		n, err := toInt(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sample: limit: %w", err)
		}
		limit = min(n, b.opts.MaxSamples)
	}

	var points []zygo.Sexp
	switch l := obj.(type) {
	case geom.LineLike2:
		for _, p := range geom.Take(l.Sample(precision), limit) {
			points = append(points, wrap(p))
		}
	case geom.LineLike3:
		for _, p := range geom.Take(l.Sample(precision), limit) {
			points = append(points, wrap(p))
		}
	default:
		return zygo.SexpNull, fmt.Errorf("sample: expected line-like object, got %T", obj)
	}
	return zygo.MakeList(points), nil
}

// (length x) of a segment or a vector; unbounded objects are +Inf.
func (b *builtins) length(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("length", args, 1)
	if err != nil {
		return zygo.SexpNull, err
	}
	switch x := gs[0].(type) {
	case vec.Vector2:
		return sexpFloat(x.Length()), nil
	case vec.Vector3:
		return sexpFloat(x.Length()), nil
	case geom.Segment2:
		return sexpFloat(x.Length()), nil
	case geom.Segment3:
		return sexpFloat(x.Length()), nil
	case geom.LineLike2, geom.LineLike3:
		return sexpFloat(math.Inf(1)), nil
	}
	return zygo.SexpNull, fmt.Errorf("length: unsupported operand %T", gs[0])
}

// (equal a b) compares within tolerance; values of different kinds or
// dimensions are never equal.
func (b *builtins) equal(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	gs, err := geoms("equal", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	eq := false
	switch x := gs[0].(type) {
	case vec.Point2:
		y, ok := gs[1].(vec.Point2)
		eq = ok && x.ApproxEqual(y)
	case vec.Point3:
		y, ok := gs[1].(vec.Point3)
		eq = ok && x.ApproxEqual(y)
	case vec.Vector2:
		y, ok := gs[1].(vec.Vector2)
		eq = ok && x.ApproxEqual(y)
	case vec.Vector3:
		y, ok := gs[1].(vec.Vector3)
		eq = ok && x.ApproxEqual(y)
	case geom.LineLike2:
		y, ok := gs[1].(geom.LineLike2)
		eq = ok && geom.Equal[vec.Point2, vec.Vector2](x, y)
	case geom.LineLike3:
		y, ok := gs[1].(geom.LineLike3)
		eq = ok && geom.Equal[vec.Point3, vec.Vector3](x, y)
	}
	return sexpBool(eq), nil
}
