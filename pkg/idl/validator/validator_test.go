package validator

import (
	"context"
	"reflect"
	"testing"

	"github.com/speclint/speclint/pkg/idl/idlerr"
)

func validate(t *testing.T, doc string) []string {
	t.Helper()
	svc, err := New(nil).Validate(context.Background(), []byte(doc))
	if err == nil {
		if svc == nil {
			t.Fatal("clean validation must return a service")
		}
		return nil
	}
	if svc != nil {
		t.Fatal("failed validation must not return a service")
	}
	el, ok := err.(*idlerr.ErrorList)
	if !ok {
		t.Fatalf("error is %T, want *idlerr.ErrorList", err)
	}
	return el.Messages()
}

func TestValidator_MinimalDocument(t *testing.T) {
	msgs := validate(t, `{"name": "svc"}`)
	if len(msgs) != 0 {
		t.Errorf("minimal document should be clean, got %v", msgs)
	}
}

func TestValidator_Gate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty input", "", "No Data"},
		{"missing name", `{}`, "Missing: name"},
		{"blank name", `{"name": "   "}`, "Missing: name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if len(msgs) != 1 {
				t.Fatalf("got %d diagnostics %v, want exactly 1", len(msgs), msgs)
			}
			if msgs[0] != tt.want {
				t.Errorf("diagnostic = %q, want %q", msgs[0], tt.want)
			}
		})
	}
}

// A gated document runs no other rule, even when the rest of the document
// is full of violations.
func TestValidator_GateShortCircuits(t *testing.T) {
	doc := `{
		"models": {"user": {"fields": [{"name": "id", "type": "nope"}]}},
		"resources": {"user": {"operations": [{"method": "TRACE", "path": "/x"}]}}
	}`
	msgs := validate(t, doc)
	if len(msgs) != 1 || msgs[0] != "Missing: name" {
		t.Errorf("got %v, want only the gate diagnostic", msgs)
	}
}

func TestValidator_URLKey(t *testing.T) {
	msgs := validate(t, `{"name": "My Service", "key": "wrong-key"}`)
	want := "Invalid url key. A valid key would be: my-service"
	if len(msgs) != 1 || msgs[0] != want {
		t.Errorf("got %v, want [%q]", msgs, want)
	}

	if msgs := validate(t, `{"name": "My Service", "key": "my-service"}`); len(msgs) != 0 {
		t.Errorf("matching key should be clean, got %v", msgs)
	}
}

func TestValidator_Imports(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing uri",
			doc:  `{"name": "svc", "imports": [{}]}`,
			want: "Import uri is required",
		},
		{
			name: "blank uri",
			doc:  `{"name": "svc", "imports": [{"uri": "  "}]}`,
			want: "Import uri is required",
		},
		{
			name: "unsupported scheme",
			doc:  `{"name": "svc", "imports": [{"uri": "ftp://example.com/svc.json"}]}`,
			want: "Import uri[ftp://example.com/svc.json] is not valid: must start with http:// or https://",
		},
		{
			name: "missing host",
			doc:  `{"name": "svc", "imports": [{"uri": "http://"}]}`,
			want: "Import uri[http://] is not valid: missing host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if len(msgs) != 1 || msgs[0] != tt.want {
				t.Errorf("got %v, want [%q]", msgs, tt.want)
			}
		})
	}
}

// With a nil importer, a well-formed URI is accepted without fetching.
func TestValidator_ImportsNotFetchedWithoutImporter(t *testing.T) {
	doc := `{"name": "svc", "imports": [{"uri": "https://example.com/svc.json"}]}`
	if msgs := validate(t, doc); len(msgs) != 0 {
		t.Errorf("got %v, want clean", msgs)
	}
}

type stubImporter struct {
	uris []string
	msgs []string
}

func (s *stubImporter) Import(_ context.Context, uri string) []string {
	s.uris = append(s.uris, uri)
	return s.msgs
}

func TestValidator_ImporterDiagnosticsIncludedVerbatim(t *testing.T) {
	importer := &stubImporter{msgs: []string{
		"Import[https://example.com/svc.json] Missing: name",
	}}
	doc := `{"name": "svc", "imports": [{"uri": "https://example.com/svc.json"}]}`

	svc, err := New(importer).Validate(context.Background(), []byte(doc))
	if err == nil {
		t.Fatal("want diagnostics from the importer")
	}
	if svc != nil {
		t.Fatal("service must be nil")
	}
	if !reflect.DeepEqual(importer.uris, []string{"https://example.com/svc.json"}) {
		t.Errorf("importer saw %v", importer.uris)
	}
	msgs := err.(*idlerr.ErrorList).Messages()
	if !reflect.DeepEqual(msgs, importer.msgs) {
		t.Errorf("got %v, want %v", msgs, importer.msgs)
	}
}

func TestValidator_Declarations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "enum value without name",
			doc:  `{"name": "svc", "enums": {"status": {"values": [{"name": "ok"}, {}]}}}`,
			want: []string{"Enum[status] all values must have a name"},
		},
		{
			name: "union member without type",
			doc:  `{"name": "svc", "unions": {"pet": {"types": [{}]}}}`,
			want: []string{"Union[pet] all types must have a name"},
		},
		{
			name: "header without name",
			doc:  `{"name": "svc", "headers": [{"type": "string"}]}`,
			want: []string{"All headers must have a name"},
		},
		{
			name: "header without type",
			doc:  `{"name": "svc", "headers": [{"name": "X-Api-Key"}]}`,
			want: []string{"All headers must have a type"},
		},
		{
			name: "header families reported once each",
			doc: `{"name": "svc", "headers": [
				{"type": "string"}, {"name": "a"}, {}, {"name": "b"}
			]}`,
			want: []string{
				"All headers must have a name",
				"All headers must have a type",
			},
		},
		{
			name: "field without name",
			doc:  `{"name": "svc", "models": {"user": {"fields": [{"type": "string"}]}}}`,
			want: []string{"Model[user] all fields must have a name"},
		},
		{
			name: "field without type",
			doc:  `{"name": "svc", "models": {"user": {"fields": [{"name": "id"}]}}}`,
			want: []string{"Model[user] field[id] must have a type"},
		},
		{
			name: "field with unknown type",
			doc:  `{"name": "svc", "models": {"user": {"fields": [{"name": "id", "type": "account"}]}}}`,
			want: []string{"Model[user] field[id] has invalid type[account]"},
		},
		{
			name: "deprecated map syntax",
			doc:  `{"name": "svc", "models": {"user": {"fields": [{"name": "tags", "type": "map"}]}}}`,
			want: []string{"Model[user] field[tags]: Specifying the type of a map is deprecated syntax. Use map[string] instead of map"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if !reflect.DeepEqual(msgs, tt.want) {
				t.Errorf("got %v, want %v", msgs, tt.want)
			}
		})
	}
}

// A model field can reference any declared type, including the model itself.
func TestValidator_CrossReferences(t *testing.T) {
	doc := `{
		"name": "svc",
		"enums": {"status": {"values": [{"name": "active"}]}},
		"unions": {"visitor": {"types": [{"type": "user"}, {"type": "guest"}]}},
		"models": {
			"guest": {"fields": [{"name": "id", "type": "uuid"}]},
			"user": {
				"fields": [
					{"name": "id", "type": "uuid"},
					{"name": "status", "type": "status"},
					{"name": "friends", "type": "[user]"},
					{"name": "labels", "type": "map[string]"}
				]
			}
		}
	}`
	if msgs := validate(t, doc); len(msgs) != 0 {
		t.Errorf("got %v, want clean", msgs)
	}
}

func TestValidator_Operations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "missing method",
			doc: `{"name": "svc", "resources": {"user": {"operations": [
				{"path": "/users"}
			]}}, "models": {"user": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: []string{"Resource[user] /users: Missing HTTP method. Must be one of: DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"},
		},
		{
			name: "invalid method",
			doc: `{"name": "svc", "resources": {"user": {"operations": [
				{"method": "TRACE", "path": "/users"}
			]}}, "models": {"user": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: []string{"Resource[user] TRACE /users: Invalid HTTP method[TRACE]. Must be one of: DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"},
		},
		{
			name: "lowercase method accepted",
			doc: `{"name": "svc", "resources": {"user": {"operations": [
				{"method": "get", "path": "/users"}
			]}}, "models": {"user": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: nil,
		},
		{
			name: "body with unknown type",
			doc: `{"name": "svc", "resources": {"user": {"operations": [
				{"method": "POST", "path": "/users", "body": {"type": "account"}}
			]}}, "models": {"user": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: []string{"Resource[user] POST /users: Body type[account] not found"},
		},
		{
			name: "body without type",
			doc: `{"name": "svc", "resources": {"user": {"operations": [
				{"method": "POST", "path": "/users", "body": {}}
			]}}, "models": {"user": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: []string{"Resource[user] POST /users: Body missing type"},
		},
		{
			name: "parameter without name",
			doc: `{"name": "svc", "resources": {"user": {"operations": [
				{"method": "GET", "path": "/users", "parameters": [{"type": "string"}]}
			]}}, "models": {"user": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: []string{"Resource[user] GET /users: All parameters must have a name"},
		},
		{
			name: "parameter without type",
			doc: `{"name": "svc", "resources": {"user": {"operations": [
				{"method": "GET", "path": "/users", "parameters": [{"name": "limit"}]}
			]}}, "models": {"user": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: []string{"Resource[user] GET /users: Parameter[limit] must have a type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if !reflect.DeepEqual(msgs, tt.want) {
				t.Errorf("got %v, want %v", msgs, tt.want)
			}
		})
	}
}

func TestValidator_QueryParameters(t *testing.T) {
	model := `"models": {
		"user": {"fields": [{"name": "id", "type": "string"}]},
		"filter": {"fields": [{"name": "q", "type": "string"}]}
	}, "unions": {"pet": {"types": [{"type": "user"}]}}`

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "map rejected on GET",
			doc: `{"name": "svc", ` + model + `, "resources": {"user": {"operations": [
				{"method": "GET", "path": "/users", "parameters": [{"name": "tags", "type": "map[string]"}]}
			]}}}`,
			want: []string{"Resource[user] GET /users: Parameter[tags] has an invalid type[map[string]]. Maps are not supported as query parameters"},
		},
		{
			name: "model rejected on GET",
			doc: `{"name": "svc", ` + model + `, "resources": {"user": {"operations": [
				{"method": "GET", "path": "/users", "parameters": [{"name": "filter", "type": "filter"}]}
			]}}}`,
			want: []string{"Resource[user] GET /users: Parameter[filter] has an invalid type[filter]. Models are not supported as query parameters"},
		},
		{
			name: "union rejected when body present",
			doc: `{"name": "svc", ` + model + `, "resources": {"user": {"operations": [
				{"method": "POST", "path": "/users", "body": {"type": "user"},
				 "parameters": [{"name": "as", "type": "pet"}]}
			]}}}`,
			want: []string{"Resource[user] POST /users: Parameter[as] has an invalid type[pet]. Unions are not supported as query parameters"},
		},
		{
			name: "model allowed outside query position",
			doc: `{"name": "svc", ` + model + `, "resources": {"user": {"operations": [
				{"method": "POST", "path": "/users", "parameters": [{"name": "filter", "type": "filter"}]}
			]}}}`,
			want: nil,
		},
		{
			name: "list of primitive allowed on GET",
			doc: `{"name": "svc", ` + model + `, "resources": {"user": {"operations": [
				{"method": "GET", "path": "/users", "parameters": [{"name": "ids", "type": "[string]"}]}
			]}}}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if !reflect.DeepEqual(msgs, tt.want) {
				t.Errorf("got %v, want %v", msgs, tt.want)
			}
		})
	}
}

func TestValidator_Responses(t *testing.T) {
	resource := func(responses string) string {
		return `{"name": "svc",
			"models": {"user": {"fields": [{"name": "id", "type": "string"}]}},
			"resources": {"user": {"operations": [
				{"method": "GET", "path": "/users", "responses": ` + responses + `}
			]}}}`
	}

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "missing type",
			doc:  resource(`{"200": {}}`),
			want: []string{"Resource[user] GET /users: Response code[200] missing type"},
		},
		{
			name: "unknown type",
			doc:  resource(`{"200": {"type": "account"}}`),
			want: []string{"Resource[user] GET /users: Response code[200] has invalid type[account]"},
		},
		{
			name: "reserved 404",
			doc:  resource(`{"404": {"type": "string"}}`),
			want: []string{"Resource[user] GET /users: Response code[404] cannot be explicitly specified"},
		},
		{
			name: "reserved 500",
			doc:  resource(`{"500": {"type": "string"}}`),
			want: []string{"Resource[user] GET /users: Response code[500] cannot be explicitly specified"},
		},
		{
			name: "204 must be unit",
			doc:  resource(`{"204": {"type": "string"}}`),
			want: []string{"Resource[user] GET /users: Response code[204] must return unit and not[string]"},
		},
		{
			name: "204 unit is fine",
			doc:  resource(`{"204": {"type": "unit"}}`),
			want: nil,
		},
		{
			name: "304 must be unit",
			doc:  resource(`{"304": {"type": "[string]"}}`),
			want: []string{"Resource[user] GET /users: Response code[304] must return unit and not[[string]]"},
		},
		{
			name: "2xx types must agree",
			doc:  resource(`{"200": {"type": "string"}, "201": {"type": "[string]"}}`),
			want: []string{"Resource[user] GET /users: Responses for 2xx codes must have the same type. Found: [string], string"},
		},
		{
			name: "identical 2xx types are fine",
			doc:  resource(`{"200": {"type": "user"}, "201": {"type": "user"}}`),
			want: nil,
		},
		{
			name: "non-2xx types may differ",
			doc:  resource(`{"200": {"type": "user"}, "409": {"type": "string"}}`),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if !reflect.DeepEqual(msgs, tt.want) {
				t.Errorf("got %v, want %v", msgs, tt.want)
			}
		})
	}
}

// One malformed response code anywhere in the document disables every
// code-dependent check, so a single mistake does not cascade.
func TestValidator_NonNumericCodeShortCircuit(t *testing.T) {
	doc := `{"name": "svc",
		"models": {"user": {"fields": [{"name": "id", "type": "string"}]}},
		"resources": {
			"user": {"operations": [
				{"method": "GET", "path": "/users", "responses": {"abc": {"type": "string"}}},
				{"method": "POST", "path": "/users", "responses": {"404": {"type": "nope"}}}
			]}
		}}`

	msgs := validate(t, doc)
	want := []string{"Resource[user] GET /users: Response code is not an integer[abc]"}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("got %v, want %v", msgs, want)
	}
}

func TestValidator_PathParameters(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "operation parameter wins",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "[string]"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:id",
					 "parameters": [{"name": "id", "type": "string"}]}
				]}}}`,
			want: nil,
		},
		{
			name: "model field backs the placeholder",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "uuid"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:id"}
				]}}}`,
			want: nil,
		},
		{
			name: "unbacked placeholder defaults to required string",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "string"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:slug"}
				]}}}`,
			want: nil,
		},
		{
			name: "list field rejected",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "[string]"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:id"}
				]}}}`,
			want: []string{"Resource[user] GET /users/:id: Path parameter[id] cannot be a list. Only primitives and enums are supported in path parameters"},
		},
		{
			name: "map parameter rejected",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "string"}]}},
				"resources": {"user": {"operations": [
					{"method": "POST", "path": "/users/:tags",
					 "parameters": [{"name": "tags", "type": "map[string]"}]}
				]}}}`,
			want: []string{"Resource[user] POST /users/:tags: Path parameter[tags] cannot be a map. Only primitives and enums are supported in path parameters"},
		},
		{
			name: "model field of model type rejected",
			doc: `{"name": "svc",
				"models": {
					"pet": {"fields": [{"name": "name", "type": "string"}]},
					"user": {"fields": [{"name": "pet", "type": "pet"}]}
				},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:pet"}
				]}}}`,
			want: []string{"Resource[user] GET /users/:pet: Path parameter[pet] has an invalid type[pet]. Only primitives and enums are supported in path parameters"},
		},
		{
			name: "unit primitive rejected",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "string"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:nothing",
					 "parameters": [{"name": "nothing", "type": "unit"}]}
				]}}}`,
			want: []string{"Resource[user] GET /users/:nothing: Path parameter[nothing] has an invalid type[unit]. Only primitives and enums are supported in path parameters"},
		},
		{
			name: "enum allowed in path",
			doc: `{"name": "svc",
				"enums": {"status": {"values": [{"name": "active"}]}},
				"models": {"user": {"fields": [{"name": "status", "type": "status"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:status"}
				]}}}`,
			want: nil,
		},
		{
			name: "optional operation parameter rejected",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "string"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:id",
					 "parameters": [{"name": "id", "type": "string", "required": false}]}
				]}}}`,
			want: []string{"Resource[user] GET /users/:id: Path parameter[id] is specified as optional. All path parameters are required"},
		},
		{
			name: "optional model field rejected",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "string", "required": false}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users/:id"}
				]}}}`,
			want: []string{"Resource[user] GET /users/:id: Path parameter[id] is specified as optional. All path parameters are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if !reflect.DeepEqual(msgs, tt.want) {
				t.Errorf("got %v, want %v", msgs, tt.want)
			}
		})
	}
}

func TestValidator_SpecLevelRules(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "bad service name characters",
			doc:  `{"name": "svc!"}`,
			want: []string{"Name can only contain a-z, A-Z, 0-9, spaces, - and _ characters"},
		},
		{
			name: "name shared across categories",
			doc: `{"name": "svc",
				"enums": {"thing": {"values": [{"name": "a"}]}},
				"models": {"thing": {"fields": [{"name": "id", "type": "string"}]}}}`,
			want: []string{"Type[thing] cannot be used for both enum and model declarations"},
		},
		{
			name: "resource without model",
			doc: `{"name": "svc",
				"resources": {"ghost": {"operations": [{"method": "GET", "path": "/ghosts"}]}}}`,
			want: []string{"Resource[ghost] model not found"},
		},
		{
			name: "duplicate operation",
			doc: `{"name": "svc",
				"models": {"user": {"fields": [{"name": "id", "type": "string"}]}},
				"resources": {"user": {"operations": [
					{"method": "GET", "path": "/users"},
					{"method": "get", "path": "/users"}
				]}}}`,
			want: []string{"Resource[user] operation GET /users appears more than once"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validate(t, tt.doc)
			if !reflect.DeepEqual(msgs, tt.want) {
				t.Errorf("got %v, want %v", msgs, tt.want)
			}
		})
	}
}

func TestValidator_Deterministic(t *testing.T) {
	doc := `{"name": "svc",
		"models": {
			"zebra": {"fields": [{"name": "id", "type": "nope"}]},
			"apple": {"fields": [{"name": "id", "type": "missing"}]}
		},
		"resources": {
			"zebra": {"operations": [{"method": "BAD", "path": "/z"}]},
			"apple": {"operations": [{"method": "WORSE", "path": "/a"}]}
		}}`

	first := validate(t, doc)
	if len(first) == 0 {
		t.Fatal("document must produce diagnostics")
	}
	for i := 0; i < 10; i++ {
		if got := validate(t, doc); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}

func TestValidator_CleanDocumentBuildsService(t *testing.T) {
	doc := `{"name": "Pet Store",
		"base_url": "https://api.example.com",
		"enums": {"status": {"values": [{"name": "available"}, {"name": "sold"}]}},
		"models": {"pet": {"fields": [
			{"name": "id", "type": "long"},
			{"name": "status", "type": "status"},
			{"name": "nickname", "type": "string", "required": false}
		]}},
		"resources": {"pet": {"operations": [
			{"method": "GET", "path": "/pets/:id", "responses": {"200": {"type": "pet"}}},
			{"method": "POST", "path": "/pets", "body": {"type": "pet"},
			 "responses": {"201": {"type": "pet"}}}
		]}}}`

	svc, err := New(nil).Validate(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if svc.Name != "Pet Store" {
		t.Errorf("name = %q", svc.Name)
	}
	if svc.Key != "pet-store" {
		t.Errorf("key = %q, want pet-store", svc.Key)
	}
	if svc.BaseURL != "https://api.example.com" {
		t.Errorf("base url = %q", svc.BaseURL)
	}
	if len(svc.Resources) != 1 || len(svc.Resources[0].Operations) != 2 {
		t.Fatalf("unexpected resource shape: %+v", svc.Resources)
	}
	get := svc.Resources[0].Operations[0]
	if get.Method != "GET" || get.Path != "/pets/:id" {
		t.Errorf("operation = %s %s", get.Method, get.Path)
	}
	if len(get.Responses) != 1 || get.Responses[0].Code != 200 || get.Responses[0].Label != "200 OK" {
		t.Errorf("responses = %+v", get.Responses)
	}
}
