package types

import "testing"

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(
		[]string{"status"},
		[]string{"user", "status_model"},
		[]string{"pet"},
	)

	tests := []struct {
		name      string
		label     string
		wantShape Shape
		wantKind  Kind
		wantName  string
		wantOK    bool
	}{
		{
			name:      "primitive scalar",
			label:     "string",
			wantShape: ShapeScalar,
			wantKind:  KindPrimitive,
			wantName:  "string",
			wantOK:    true,
		},
		{
			name:      "declared enum",
			label:     "status",
			wantShape: ShapeScalar,
			wantKind:  KindEnum,
			wantName:  "status",
			wantOK:    true,
		},
		{
			name:      "declared model",
			label:     "user",
			wantShape: ShapeScalar,
			wantKind:  KindModel,
			wantName:  "user",
			wantOK:    true,
		},
		{
			name:      "declared union",
			label:     "pet",
			wantShape: ShapeScalar,
			wantKind:  KindUnion,
			wantName:  "pet",
			wantOK:    true,
		},
		{
			name:      "list of primitive",
			label:     "[long]",
			wantShape: ShapeList,
			wantKind:  KindPrimitive,
			wantName:  "long",
			wantOK:    true,
		},
		{
			name:      "list of model",
			label:     "[user]",
			wantShape: ShapeList,
			wantKind:  KindModel,
			wantName:  "user",
			wantOK:    true,
		},
		{
			name:      "map of primitive",
			label:     "map[integer]",
			wantShape: ShapeMap,
			wantKind:  KindPrimitive,
			wantName:  "integer",
			wantOK:    true,
		},
		{
			name:      "bare map defaults to string values",
			label:     "map",
			wantShape: ShapeMap,
			wantKind:  KindPrimitive,
			wantName:  "string",
			wantOK:    true,
		},
		{
			name:      "whitespace is trimmed",
			label:     "  uuid  ",
			wantShape: ShapeScalar,
			wantKind:  KindPrimitive,
			wantName:  "uuid",
			wantOK:    true,
		},
		{
			name:      "unknown scalar",
			label:     "account",
			wantShape: ShapeScalar,
			wantName:  "account",
			wantOK:    false,
		},
		{
			name:      "list of unknown",
			label:     "[account]",
			wantShape: ShapeList,
			wantName:  "account",
			wantOK:    false,
		},
		{
			name:      "map of unknown",
			label:     "map[account]",
			wantShape: ShapeMap,
			wantName:  "account",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, ok := resolver.Resolve(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.label, ok, tt.wantOK)
			}
			if dt.Shape != tt.wantShape {
				t.Errorf("Resolve(%q) shape = %v, want %v", tt.label, dt.Shape, tt.wantShape)
			}
			if dt.Ref.Kind != tt.wantKind {
				t.Errorf("Resolve(%q) kind = %v, want %v", tt.label, dt.Ref.Kind, tt.wantKind)
			}
			if dt.Ref.Name != tt.wantName {
				t.Errorf("Resolve(%q) name = %v, want %v", tt.label, dt.Ref.Name, tt.wantName)
			}
		})
	}
}

// A declared name never shadows a primitive, and an enum shadows a model of
// the same name.
func TestResolver_Precedence(t *testing.T) {
	resolver := NewResolver(
		[]string{"string", "shared"},
		[]string{"string", "shared"},
		[]string{"shared"},
	)

	dt, ok := resolver.Resolve("string")
	if !ok {
		t.Fatal("Resolve(string) failed")
	}
	if dt.Ref.Kind != KindPrimitive {
		t.Errorf("primitive should win over declarations, got kind %v", dt.Ref.Kind)
	}

	dt, ok = resolver.Resolve("shared")
	if !ok {
		t.Fatal("Resolve(shared) failed")
	}
	if dt.Ref.Kind != KindEnum {
		t.Errorf("enum should win over model and union, got kind %v", dt.Ref.Kind)
	}
}

func TestDatatype_Label(t *testing.T) {
	ref := TypeRef{Kind: KindPrimitive, Name: "string"}

	if got := Scalar(ref).Label(); got != "string" {
		t.Errorf("Scalar label = %q, want %q", got, "string")
	}
	if got := List(ref).Label(); got != "[string]" {
		t.Errorf("List label = %q, want %q", got, "[string]")
	}
	if got := Map(ref).Label(); got != "map[string]" {
		t.Errorf("Map label = %q, want %q", got, "map[string]")
	}
}

func TestNewRawDatatype_DeprecatedMap(t *testing.T) {
	raw := NewRawDatatype("map")
	if len(raw.Warnings) != 1 {
		t.Fatalf("expected 1 warning for bare map, got %d", len(raw.Warnings))
	}
	want := "Specifying the type of a map is deprecated syntax. Use map[string] instead of map"
	if raw.Warnings[0] != want {
		t.Errorf("warning = %q, want %q", raw.Warnings[0], want)
	}

	if raw := NewRawDatatype("map[string]"); len(raw.Warnings) != 0 {
		t.Errorf("map[string] should not warn, got %v", raw.Warnings)
	}
}

func TestIsPathPrimitive(t *testing.T) {
	if IsPathPrimitive(PrimitiveUnit) {
		t.Error("unit must not be valid in path position")
	}
	for _, name := range []string{
		PrimitiveBoolean, PrimitiveDateISO8601, PrimitiveDateTimeISO8601,
		PrimitiveDecimal, PrimitiveDouble, PrimitiveInteger, PrimitiveLong,
		PrimitiveString, PrimitiveUUID,
	} {
		if !IsPathPrimitive(name) {
			t.Errorf("IsPathPrimitive(%s) = false, want true", name)
		}
	}
	if IsPathPrimitive("user") {
		t.Error("declared names are not path primitives")
	}
}
