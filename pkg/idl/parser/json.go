package parser

// Wire-level structures mirroring the JSON grammar of a specification
// document. Optional fields are pointers so that absence survives decoding
// and can be diagnosed later; nothing here is validated beyond JSON shape.

type jsonSpec struct {
	Name        *string                 `json:"name"`
	Key         *string                 `json:"key"`
	BaseURL     *string                 `json:"base_url"`
	Description *string                 `json:"description"`
	Imports     []jsonImport            `json:"imports"`
	Headers     []jsonHeader            `json:"headers"`
	Enums       map[string]jsonEnum     `json:"enums"`
	Unions      map[string]jsonUnion    `json:"unions"`
	Models      map[string]jsonModel    `json:"models"`
	Resources   map[string]jsonResource `json:"resources"`
}

type jsonImport struct {
	URI *string `json:"uri"`
}

type jsonHeader struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type jsonEnum struct {
	Values []jsonEnumValue `json:"values"`
}

type jsonEnumValue struct {
	Name *string `json:"name"`
}

type jsonUnion struct {
	Types []jsonUnionType `json:"types"`
}

type jsonUnionType struct {
	Type *string `json:"type"`
}

type jsonModel struct {
	Fields []jsonField `json:"fields"`
}

type jsonField struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Required *bool   `json:"required"`
}

type jsonResource struct {
	Operations []jsonOperation `json:"operations"`
}

type jsonOperation struct {
	Method     *string                 `json:"method"`
	Path       string                  `json:"path"`
	Parameters []jsonParameter         `json:"parameters"`
	Body       *jsonBody               `json:"body"`
	Responses  map[string]jsonResponse `json:"responses"`
}

type jsonParameter struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Required *bool   `json:"required"`
}

type jsonBody struct {
	Type *string `json:"type"`
}

type jsonResponse struct {
	Type *string `json:"type"`
}
