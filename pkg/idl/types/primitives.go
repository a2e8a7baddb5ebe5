package types

// Primitive type names built into the language.
const (
	PrimitiveBoolean         = "boolean"
	PrimitiveDateISO8601     = "date-iso8601"
	PrimitiveDateTimeISO8601 = "date-time-iso8601"
	PrimitiveDecimal         = "decimal"
	PrimitiveDouble          = "double"
	PrimitiveInteger         = "integer"
	PrimitiveLong            = "long"
	PrimitiveString          = "string"
	PrimitiveUnit            = "unit"
	PrimitiveUUID            = "uuid"
)

// primitives is the fixed table of built-in scalar type names.
var primitives = map[string]bool{
	PrimitiveBoolean:         true,
	PrimitiveDateISO8601:     true,
	PrimitiveDateTimeISO8601: true,
	PrimitiveDecimal:         true,
	PrimitiveDouble:          true,
	PrimitiveInteger:         true,
	PrimitiveLong:            true,
	PrimitiveString:          true,
	PrimitiveUnit:            true,
	PrimitiveUUID:            true,
}

// pathPrimitives is the subset of primitives that can serialize into a URL
// path segment. The unit type carries no value and is excluded.
var pathPrimitives = map[string]bool{
	PrimitiveBoolean:         true,
	PrimitiveDateISO8601:     true,
	PrimitiveDateTimeISO8601: true,
	PrimitiveDecimal:         true,
	PrimitiveDouble:          true,
	PrimitiveInteger:         true,
	PrimitiveLong:            true,
	PrimitiveString:          true,
	PrimitiveUUID:            true,
}

// IsPrimitive returns true if name is a built-in scalar type.
func IsPrimitive(name string) bool {
	return primitives[name]
}

// IsPathPrimitive returns true if name is a primitive valid in path position.
func IsPathPrimitive(name string) bool {
	return pathPrimitives[name]
}
