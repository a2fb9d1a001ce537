package scene

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when two entities share a name.
var ErrDuplicateName = errors.New("duplicate entity name")

// Scene is the ordered set of named entities produced by one evaluation,
// together with the value of the last expression of the script.
type Scene struct {
	Entities  []*Entity      `json:"entities"`
	NameIndex map[string]int `json:"-"`
	Value     any            `json:"-"`
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{NameIndex: make(map[string]int)}
}

// Add appends e. Names must be unique within a scene.
func (s *Scene) Add(e *Entity) error {
	if _, exists := s.NameIndex[e.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
	}
	s.NameIndex[e.Name] = len(s.Entities)
	s.Entities = append(s.Entities, e)
	return nil
}

// Lookup returns the entity with the given name, or nil.
func (s *Scene) Lookup(name string) *Entity {
	i, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Entities[i]
}

// MustLookup returns the entity with the given name, or panics.
func (s *Scene) MustLookup(name string) *Entity {
	e := s.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("scene: no entity named %q", name))
	}
	return e
}

// LineLikes returns the entities of the line family in insertion order.
func (s *Scene) LineLikes() []*Entity {
	var out []*Entity
	for _, e := range s.Entities {
		if e.Kind.IsLineLike() {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.Entities)
}
