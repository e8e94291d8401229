package symbol

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unison-codegen/smithygen/model"
)

func testModel() *model.Model {
	m := model.New()
	m.Add(&model.Shape{ID: "smithy.api#String", Type: model.TypeString, Traits: model.Traits{}})
	m.Add(&model.Shape{ID: "smithy.api#Integer", Type: model.TypeInteger, Traits: model.Traits{}})
	m.Add(&model.Shape{ID: "com.example#Bucket", Type: model.TypeStructure, Traits: model.Traits{},
		Members: []model.Member{{Name: "name", Target: "smithy.api#String", Traits: model.Traits{}}}})
	m.Add(&model.Shape{ID: "com.example#BucketList", Type: model.TypeList, Traits: model.Traits{},
		ListMember: &model.Member{Name: "member", Target: "com.example#Bucket", Traits: model.Traits{}}})
	m.Add(&model.Shape{ID: "com.example#Metadata", Type: model.TypeMap, Traits: model.Traits{},
		MapKey:   &model.Member{Name: "key", Target: "smithy.api#String", Traits: model.Traits{}},
		MapValue: &model.Member{Name: "value", Target: "smithy.api#Integer", Traits: model.Traits{}}})
	m.Add(&model.Shape{ID: "com.example#LastModified", Type: model.TypeTimestamp, Traits: model.Traits{}})
	m.Add(&model.Shape{ID: "com.example#StorageClass", Type: model.TypeEnum, Traits: model.Traits{},
		Members: []model.Member{
			{Name: "Standard", Target: "smithy.api#Unit", Traits: model.Traits{model.TraitEnumValue: "STANDARD"}},
			{Name: "Glacier", Target: "smithy.api#Unit", Traits: model.Traits{model.TraitEnumValue: "GLACIER"}},
		}})
	m.Add(&model.Shape{ID: "com.example#Event", Type: model.TypeUnion, Traits: model.Traits{}})
	m.Add(&model.Shape{ID: "com.example#GetObject", Type: model.TypeOperation, Traits: model.Traits{}})
	m.Add(&model.Shape{ID: "com.example#Store", Type: model.TypeService, Traits: model.Traits{}})
	return m
}

func TestResolveMappings(t *testing.T) {
	m := testModel()
	p := NewProvider(m, "aws.s3")

	tests := []struct {
		id       model.ShapeID
		typeExpr string
		file     string
		check    func(Symbol) bool
	}{
		{"smithy.api#String", "Text", "aws_s3_types.u", nil},
		{"smithy.api#Integer", "Int", "aws_s3_types.u", nil},
		{"com.example#Bucket", "Bucket", "aws_s3_types.u", func(s Symbol) bool { return s.IsStructure }},
		{"com.example#BucketList", "[Bucket]", "aws_s3_types.u", func(s Symbol) bool { return s.IsList }},
		{"com.example#Metadata", "Map Text Int", "aws_s3_types.u", func(s Symbol) bool { return s.IsMap }},
		{"com.example#LastModified", "Text", "aws_s3_types.u", func(s Symbol) bool { return s.IsTimestamp }},
		{"com.example#StorageClass", "StorageClass", "aws_s3_types.u", func(s Symbol) bool { return s.IsEnum }},
		{"com.example#Event", "Event", "aws_s3_types.u", func(s Symbol) bool { return s.IsUnion }},
		{"com.example#Store", "a", "aws_s3_client.u", func(s Symbol) bool { return s.IsService }},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			shape, ok := m.Shape(tt.id)
			if !ok {
				t.Fatalf("shape %s missing from test model", tt.id)
			}
			sym := p.Resolve(shape)
			if sym.TypeExpr != tt.typeExpr {
				t.Errorf("TypeExpr = %q, want %q", sym.TypeExpr, tt.typeExpr)
			}
			if sym.DefinitionFile != tt.file {
				t.Errorf("DefinitionFile = %q, want %q", sym.DefinitionFile, tt.file)
			}
			if tt.check != nil && !tt.check(sym) {
				t.Errorf("category flags wrong: %+v", sym)
			}
		})
	}
}

func TestResolveOperationName(t *testing.T) {
	m := testModel()
	p := NewProvider(m, "aws.s3")
	shape, _ := m.Shape("com.example#GetObject")
	sym := p.Resolve(shape)
	if sym.Name != "getObject" {
		t.Errorf("operation name = %q, want %q", sym.Name, "getObject")
	}
	if !sym.IsOperation {
		t.Error("IsOperation flag not set")
	}
}

func TestResolveDeterministic(t *testing.T) {
	m := testModel()
	shape, _ := m.Shape("com.example#Bucket")

	first := NewProvider(m, "aws.s3").Resolve(shape)
	// Cached and fresh resolutions must be identical.
	p := NewProvider(m, "aws.s3")
	a := p.Resolve(shape)
	b := p.Resolve(shape)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("cached resolve differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first, a); diff != "" {
		t.Errorf("resolve not deterministic across providers:\n%s", diff)
	}
}

func TestCaseTransforms(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"type preserves case", ToTypeName, "GetObjectInput", "GetObjectInput"},
		{"type empty", ToTypeName, "", ""},
		{"function lowers first", ToFunctionName, "GetObject", "getObject"},
		{"function already lower", ToFunctionName, "getObject", "getObject"},
		{"function empty", ToFunctionName, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	variantTests := []struct{ in, want string }{
		{"af-south-1", "AfSouth1"},
		{"STANDARD", "Standard"},
		{"us-east-1", "UsEast1"},
		{"deep_archive", "DeepArchive"},
	}
	for _, tt := range variantTests {
		if got := ToVariantName(tt.in); got != tt.want {
			t.Errorf("ToVariantName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := ToEnumVariant("BucketLocation", "UsEast1"); got != "BucketLocation'UsEast1" {
		t.Errorf("ToEnumVariant = %q", got)
	}
	if got := ToNamespacedFunctionName("CreateBucket", "Aws.S3"); got != "Aws.S3.createBucket" {
		t.Errorf("ToNamespacedFunctionName = %q", got)
	}
	if got := FileBaseName("aws.s3"); got != "aws_s3" {
		t.Errorf("FileBaseName = %q", got)
	}
}

func TestEscapeReserved(t *testing.T) {
	if got := EscapeReserved("type"); got != "type_" {
		t.Errorf("EscapeReserved(type) = %q", got)
	}
	if got := EscapeReserved("bucket"); got != "bucket" {
		t.Errorf("EscapeReserved(bucket) = %q", got)
	}
}
