package model

import (
	"errors"
	"testing"
)

const itemServiceAST = `{
  "smithy": "2.0",
  "shapes": {
    "com.example#ItemService": {
      "type": "service",
      "version": "2024-01-01",
      "operations": [{"target": "com.example#GetItem"}, {"target": "com.example#ListItems"}],
      "traits": {"aws.protocols#restXml": {}}
    },
    "com.example#GetItem": {
      "type": "operation",
      "input": {"target": "com.example#GetItemInput"},
      "output": {"target": "com.example#GetItemOutput"},
      "errors": [{"target": "com.example#NoSuchItem"}],
      "traits": {"smithy.api#http": {"method": "GET", "uri": "/items/{id}", "code": 200}}
    },
    "com.example#ListItems": {
      "type": "operation",
      "traits": {"smithy.api#http": {"method": "GET", "uri": "/items"}}
    },
    "com.example#GetItemInput": {
      "type": "structure",
      "members": {
        "id": {"target": "smithy.api#String", "traits": {"smithy.api#httpLabel": {}, "smithy.api#required": {}}},
        "verbose": {"target": "smithy.api#Boolean", "traits": {"smithy.api#httpQuery": "verbose"}}
      }
    },
    "com.example#GetItemOutput": {
      "type": "structure",
      "members": {
        "etag": {"target": "smithy.api#String", "traits": {"smithy.api#httpHeader": "ETag"}},
        "body": {"target": "smithy.api#Blob", "traits": {"smithy.api#httpPayload": {}}}
      }
    },
    "com.example#NoSuchItem": {
      "type": "structure",
      "members": {
        "message": {"target": "smithy.api#String"}
      },
      "traits": {"smithy.api#error": "client"}
    },
    "com.example#ItemStatus": {
      "type": "string",
      "traits": {"smithy.api#enum": [
        {"value": "ACTIVE", "name": "Active"},
        {"value": "ARCHIVED", "name": "Archived"}
      ]}
    },
    "com.example#Tags": {
      "type": "list",
      "member": {"target": "smithy.api#String"}
    }
  }
}`

func TestLoadShapes(t *testing.T) {
	m, err := Load([]byte(itemServiceAST))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	svc, err := m.ExpectService("com.example#ItemService")
	if err != nil {
		t.Fatalf("ExpectService: %v", err)
	}
	if svc.Version != "2024-01-01" {
		t.Errorf("service version = %q, want %q", svc.Version, "2024-01-01")
	}
	if len(svc.Operations) != 2 || svc.Operations[0] != "com.example#GetItem" {
		t.Errorf("service operations = %v, want GetItem first", svc.Operations)
	}

	op, err := m.ExpectShape("com.example#GetItem")
	if err != nil {
		t.Fatalf("ExpectShape: %v", err)
	}
	ht, ok := op.HTTPTrait()
	if !ok {
		t.Fatal("GetItem has no @http trait")
	}
	if ht.Method != "GET" || ht.URI != "/items/{id}" || ht.Code != 200 {
		t.Errorf("http trait = %+v", ht)
	}
	if op.Input != "com.example#GetItemInput" || op.Output != "com.example#GetItemOutput" {
		t.Errorf("operation bindings = %q / %q", op.Input, op.Output)
	}
	if len(op.Errors) != 1 || op.Errors[0] != "com.example#NoSuchItem" {
		t.Errorf("operation errors = %v", op.Errors)
	}
}

func TestLoadMemberOrder(t *testing.T) {
	m, err := Load([]byte(itemServiceAST))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	input, err := m.ExpectStructure("com.example#GetItemInput")
	if err != nil {
		t.Fatalf("ExpectStructure: %v", err)
	}
	var names []string
	for _, member := range input.Members {
		names = append(names, member.Name)
	}
	if len(names) != 2 || names[0] != "id" || names[1] != "verbose" {
		t.Errorf("member order = %v, want [id verbose]", names)
	}
	if !input.Members[0].Traits.Has(TraitHTTPLabel) {
		t.Error("id member lost its httpLabel trait")
	}
	if got := input.Members[1].Traits.String(TraitHTTPQuery); got != "verbose" {
		t.Errorf("verbose query name = %q", got)
	}
}

func TestLoadEnum(t *testing.T) {
	m, err := Load([]byte(itemServiceAST))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	status, err := m.ExpectShape("com.example#ItemStatus")
	if err != nil {
		t.Fatalf("ExpectShape: %v", err)
	}
	if !status.IsEnum() {
		t.Fatal("ItemStatus should be an enum")
	}
	if len(status.EnumValues) != 2 {
		t.Fatalf("enum values = %v", status.EnumValues)
	}
	if status.EnumValues[0].Name != "Active" || status.EnumValues[0].Value != "ACTIVE" {
		t.Errorf("first enum value = %+v", status.EnumValues[0])
	}
}

func TestLoadPrelude(t *testing.T) {
	m, err := Load([]byte(`{"smithy": "2.0", "shapes": {}}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, ok := m.Shape("smithy.api#String")
	if !ok || s.Type != TypeString {
		t.Errorf("prelude String missing or wrong type: %v", s)
	}
}

func TestExpectShapeMissing(t *testing.T) {
	m := New()
	_, err := m.ExpectShape("com.example#Nope")
	var me *ModelError
	if !errors.As(err, &me) {
		t.Fatalf("expected ModelError, got %v", err)
	}
	if me.Shape != "com.example#Nope" {
		t.Errorf("error shape = %q", me.Shape)
	}
}

func TestShapeIDParts(t *testing.T) {
	tests := []struct {
		id        ShapeID
		namespace string
		name      string
		member    string
	}{
		{"com.example#Foo", "com.example", "Foo", ""},
		{"com.example#Foo$bar", "com.example", "Foo", "bar"},
		{"smithy.api#String", "smithy.api", "String", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := tt.id.Namespace(); got != tt.namespace {
				t.Errorf("Namespace() = %q, want %q", got, tt.namespace)
			}
			if got := tt.id.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := tt.id.MemberName(); got != tt.member {
				t.Errorf("MemberName() = %q, want %q", got, tt.member)
			}
		})
	}
}
