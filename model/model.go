package model

import "fmt"

// Model is the loaded shape graph. It is built once by the loader (or shape
// by shape in tests) and never mutated during generation.
type Model struct {
	shapes map[ShapeID]*Shape
	order  []ShapeID
}

// New returns an empty model.
func New() *Model {
	return &Model{shapes: make(map[ShapeID]*Shape)}
}

// Add inserts a shape, replacing any previous shape with the same id.
func (m *Model) Add(s *Shape) {
	if _, exists := m.shapes[s.ID]; !exists {
		m.order = append(m.order, s.ID)
	}
	m.shapes[s.ID] = s
}

// Shape returns the shape with the given id.
func (m *Model) Shape(id ShapeID) (*Shape, bool) {
	s, ok := m.shapes[id]
	return s, ok
}

// ExpectShape returns the shape with the given id or fails with a ModelError.
func (m *Model) ExpectShape(id ShapeID) (*Shape, error) {
	s, ok := m.shapes[id]
	if !ok {
		return nil, &ModelError{Shape: id, Reason: "shape not found in model"}
	}
	return s, nil
}

// ExpectStructure returns the structure shape with the given id.
func (m *Model) ExpectStructure(id ShapeID) (*Shape, error) {
	s, err := m.ExpectShape(id)
	if err != nil {
		return nil, err
	}
	if s.Type != TypeStructure {
		return nil, &ModelError{Shape: id, Reason: fmt.Sprintf("expected structure, found %s", s.Type)}
	}
	return s, nil
}

// ExpectService returns the service shape with the given id.
func (m *Model) ExpectService(id ShapeID) (*Shape, error) {
	s, err := m.ExpectShape(id)
	if err != nil {
		return nil, err
	}
	if s.Type != TypeService {
		return nil, &ModelError{Shape: id, Reason: fmt.Sprintf("expected service, found %s", s.Type)}
	}
	return s, nil
}

// Shapes returns all shape ids in load order.
func (m *Model) Shapes() []ShapeID {
	out := make([]ShapeID, len(m.order))
	copy(out, m.order)
	return out
}

// Services returns every service shape in load order.
func (m *Model) Services() []*Shape {
	var out []*Shape
	for _, id := range m.order {
		if s := m.shapes[id]; s.Type == TypeService {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of shapes in the model.
func (m *Model) Len() int { return len(m.shapes) }
