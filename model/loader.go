package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// astShape is the raw JSON form of one shape in the Smithy AST. Members are
// kept as a raw message so their declared order can be recovered; a plain map
// decode would lose it.
type astShape struct {
	Type       string             `json:"type"`
	Members    json.RawMessage    `json:"members"`
	Member     *astMember         `json:"member"`
	Key        *astMember         `json:"key"`
	Value      *astMember         `json:"value"`
	Input      *astTarget         `json:"input"`
	Output     *astTarget         `json:"output"`
	Errors     []astTarget        `json:"errors"`
	Operations []astTarget        `json:"operations"`
	Version    string             `json:"version"`
	Traits     map[string]any     `json:"traits"`
}

type astMember struct {
	Target string         `json:"target"`
	Traits map[string]any `json:"traits"`
}

type astTarget struct {
	Target string `json:"target"`
}

// LoadFile reads a Smithy JSON AST document from disk.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return Load(data)
}

// Load parses a Smithy JSON AST document ({"smithy": "...", "shapes": {...}})
// into a Model. Shape and member iteration order follows the document.
func Load(data []byte) (*Model, error) {
	var doc struct {
		Smithy string          `json:"smithy"`
		Shapes json.RawMessage `json:"shapes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model document: %w", err)
	}
	if doc.Shapes == nil {
		return nil, fmt.Errorf("parse model document: missing shapes object")
	}

	m := New()
	addPrelude(m)

	err := eachObjectField(doc.Shapes, func(name string, raw json.RawMessage) error {
		id, err := ParseShapeID(name)
		if err != nil {
			return err
		}
		var as astShape
		if err := json.Unmarshal(raw, &as); err != nil {
			return fmt.Errorf("parse shape %s: %w", name, err)
		}
		shape, err := buildShape(id, &as)
		if err != nil {
			return err
		}
		m.Add(shape)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func buildShape(id ShapeID, as *astShape) (*Shape, error) {
	s := &Shape{
		ID:      id,
		Type:    ShapeType(as.Type),
		Traits:  decodeTraits(as.Traits),
		Version: as.Version,
	}

	if as.Members != nil {
		err := eachObjectField(as.Members, func(name string, raw json.RawMessage) error {
			var am astMember
			if err := json.Unmarshal(raw, &am); err != nil {
				return fmt.Errorf("parse member %s of %s: %w", name, id, err)
			}
			s.Members = append(s.Members, Member{
				Name:   name,
				Target: ShapeID(am.Target),
				Traits: decodeTraits(am.Traits),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if as.Member != nil {
		s.ListMember = &Member{Name: "member", Target: ShapeID(as.Member.Target), Traits: decodeTraits(as.Member.Traits)}
	}
	if as.Key != nil {
		s.MapKey = &Member{Name: "key", Target: ShapeID(as.Key.Target), Traits: decodeTraits(as.Key.Traits)}
	}
	if as.Value != nil {
		s.MapValue = &Member{Name: "value", Target: ShapeID(as.Value.Target), Traits: decodeTraits(as.Value.Traits)}
	}
	if as.Input != nil {
		s.Input = ShapeID(as.Input.Target)
	}
	if as.Output != nil {
		s.Output = ShapeID(as.Output.Target)
	}
	for _, e := range as.Errors {
		s.Errors = append(s.Errors, ShapeID(e.Target))
	}
	for _, op := range as.Operations {
		s.Operations = append(s.Operations, ShapeID(op.Target))
	}

	fillEnumValues(s)
	return s, nil
}

// fillEnumValues normalizes both enum encodings into Shape.EnumValues: the
// Smithy 2.0 enum/intEnum member form and the 1.0 string-with-@enum form.
func fillEnumValues(s *Shape) {
	switch {
	case s.Type == TypeEnum || s.Type == TypeIntEnum:
		for _, member := range s.Members {
			ev := EnumValue{Name: member.Name, Value: member.Name}
			if v, ok := member.Traits.Get(TraitEnumValue); ok {
				switch tv := v.(type) {
				case string:
					ev.Value = tv
				case float64:
					ev.IntValue = int64(tv)
				}
			}
			s.EnumValues = append(s.EnumValues, ev)
		}
	case s.Type == TypeString && s.Traits.Has(TraitEnum):
		entries, _ := s.Traits.Get(TraitEnum)
		list, ok := entries.([]any)
		if !ok {
			return
		}
		for _, entry := range list {
			node, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			ev := EnumValue{}
			if v, ok := node["value"].(string); ok {
				ev.Value = v
			}
			if n, ok := node["name"].(string); ok {
				ev.Name = n
			} else {
				ev.Name = ev.Value
			}
			s.EnumValues = append(s.EnumValues, ev)
		}
	}
}

func decodeTraits(raw map[string]any) Traits {
	if len(raw) == 0 {
		return Traits{}
	}
	t := make(Traits, len(raw))
	for k, v := range raw {
		t[ShapeID(k)] = v
	}
	return t
}

// eachObjectField walks the fields of a JSON object in document order.
// encoding/json maps do not preserve key order, so this re-reads the raw
// object token by token.
func eachObjectField(raw json.RawMessage, fn func(name string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, found %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, found %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// addPrelude registers the smithy.api simple shapes that AST documents
// reference without declaring.
func addPrelude(m *Model) {
	prelude := []struct {
		name string
		typ  ShapeType
	}{
		{"String", TypeString},
		{"Blob", TypeBlob},
		{"Boolean", TypeBoolean},
		{"Byte", TypeByte},
		{"Short", TypeShort},
		{"Integer", TypeInteger},
		{"Long", TypeLong},
		{"BigInteger", TypeBigInteger},
		{"Float", TypeFloat},
		{"Double", TypeDouble},
		{"BigDecimal", TypeBigDecimal},
		{"Timestamp", TypeTimestamp},
		{"Document", TypeDocument},
		{"Unit", TypeStructure},
	}
	for _, p := range prelude {
		m.Add(&Shape{ID: ShapeID("smithy.api#" + p.name), Type: p.typ, Traits: Traits{}})
	}
}
