package scene

import (
	"errors"
	"testing"

	"github.com/chazu/lineal/pkg/geom"
	"github.com/chazu/lineal/pkg/vec"
)

func TestNewScene(t *testing.T) {
	s := New()
	if s.NameIndex == nil {
		t.Fatal("NameIndex map should be initialized")
	}
	if s.Len() != 0 {
		t.Errorf("empty scene should have 0 entities, got %d", s.Len())
	}
}

func TestAddAndLookup(t *testing.T) {
	s := New()

	seg, err := geom.NewSegment2(vec.Point2{X: 0, Y: 0}, vec.Point2{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("NewSegment2: %v", err)
	}
	e, err := NewEntity("edge", seg)
	if err != nil {
		t.Fatalf("NewEntity: %v", err)
	}
	if err := s.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}

	p, err := NewEntity("corner", vec.Point3{X: 1, Y: 2, Z: 3})
	if err != nil {
		t.Fatalf("NewEntity: %v", err)
	}
	if err := s.Add(p); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if s.Len() != 2 {
		t.Errorf("entity count = %d, want 2", s.Len())
	}

	found := s.Lookup("edge")
	if found == nil {
		t.Fatal("Lookup('edge') returned nil")
	}
	if found.Kind != EntitySegment || found.Dim != 2 {
		t.Errorf("edge: kind=%v dim=%d, want segment/2", found.Kind, found.Dim)
	}
	if s.Lookup("missing") != nil {
		t.Error("Lookup of unknown name should return nil")
	}
	if got := s.MustLookup("corner"); got.Kind != EntityPoint || got.Dim != 3 {
		t.Errorf("corner: kind=%v dim=%d, want point/3", got.Kind, got.Dim)
	}

	lines := s.LineLikes()
	if len(lines) != 1 || lines[0].Name != "edge" {
		t.Errorf("LineLikes() = %v, want only edge", lines)
	}
}

func TestAddDuplicateName(t *testing.T) {
	s := New()
	a, _ := NewEntity("a", vec.Vector2{X: 1})
	b, _ := NewEntity("a", vec.Vector2{Y: 1})
	if err := s.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	err := s.Add(b)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup should panic for unknown names")
		}
	}()
	New().MustLookup("nope")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		shape any
		kind  EntityKind
		dim   int
	}{
		{"point2", vec.Point2{}, EntityPoint, 2},
		{"vector3", vec.UnitZ3, EntityVector, 3},
		{"line2", geom.XAxis2, EntityLine, 2},
		{"line3", geom.ZAxis3, EntityLine, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, dim, err := Classify(tt.shape)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if kind != tt.kind || dim != tt.dim {
				t.Errorf("Classify = %v/%d, want %v/%d", kind, dim, tt.kind, tt.dim)
			}
		})
	}

	if _, _, err := Classify("not geometry"); err == nil {
		t.Error("Classify should reject unsupported types")
	}
	if _, err := NewEntity("bad", 42); err == nil {
		t.Error("NewEntity should reject unsupported types")
	}
}

func TestEntityID(t *testing.T) {
	a := NewEntityID("segment/edge")
	b := NewEntityID("segment/edge")
	c := NewEntityID("segment/other")
	if a != b {
		t.Error("IDs for the same path should be equal")
	}
	if a == c {
		t.Error("IDs for different paths should differ")
	}
	if len(a.Short()) != 8 {
		t.Errorf("Short() = %q, want 8 characters", a.Short())
	}
	if ZeroID.Short() != "" {
		t.Errorf("ZeroID.Short() = %q, want empty", ZeroID.Short())
	}
}
