package scene

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/chazu/lineal/pkg/geom"
	"github.com/chazu/lineal/pkg/vec"
)

// EntityID is a content-addressed identifier derived from an entity's path.
type EntityID string

// ZeroID is the empty identifier.
const ZeroID EntityID = ""

// NewEntityID hashes path into an identifier. The same path always yields
// the same ID.
func NewEntityID(path string) EntityID {
	sum := sha256.Sum256([]byte(path))
	return EntityID(hex.EncodeToString(sum[:]))
}

// Short returns the first 8 characters of the ID for use in messages.
func (id EntityID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[:8])
}

func (id EntityID) String() string { return string(id) }

// EntityKind enumerates the kinds of geometry a scene can hold.
type EntityKind int

const (
	EntityPoint EntityKind = iota
	EntityVector
	EntityLine
	EntityHalfLine
	EntitySegment
)

func (k EntityKind) String() string {
	switch k {
	case EntityPoint:
		return "point"
	case EntityVector:
		return "vector"
	case EntityLine:
		return "line"
	case EntityHalfLine:
		return "half-line"
	case EntitySegment:
		return "segment"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k EntityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsLineLike reports whether the kind is one of the line family.
func (k EntityKind) IsLineLike() bool {
	return k == EntityLine || k == EntityHalfLine || k == EntitySegment
}

// Entity is one named piece of geometry.
type Entity struct {
	ID    EntityID   `json:"id"`
	Name  string     `json:"name"`
	Kind  EntityKind `json:"kind"`
	Dim   int        `json:"dim"`
	Shape any        `json:"-"` // vec or geom value, see Classify
}

// NewEntity classifies shape and wraps it under name.
func NewEntity(name string, shape any) (*Entity, error) {
	kind, dim, err := Classify(shape)
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", name, err)
	}
	return &Entity{
		ID:    NewEntityID(kind.String() + "/" + name),
		Name:  name,
		Kind:  kind,
		Dim:   dim,
		Shape: shape,
	}, nil
}

// Classify returns the kind and dimension of a geometry value. Only the
// vec point/vector types and the geom line family are accepted.
func Classify(shape any) (EntityKind, int, error) {
	switch shape.(type) {
	case vec.Point2:
		return EntityPoint, 2, nil
	case vec.Point3:
		return EntityPoint, 3, nil
	case vec.Vector2:
		return EntityVector, 2, nil
	case vec.Vector3:
		return EntityVector, 3, nil
	case geom.Line2:
		return EntityLine, 2, nil
	case geom.Line3:
		return EntityLine, 3, nil
	case geom.HalfLine2:
		return EntityHalfLine, 2, nil
	case geom.HalfLine3:
		return EntityHalfLine, 3, nil
	case geom.Segment2:
		return EntitySegment, 2, nil
	case geom.Segment3:
		return EntitySegment, 3, nil
	}
	return 0, 0, fmt.Errorf("unsupported shape type %T", shape)
}
