package model

// FieldType is the value type of a schema-builder field.
type FieldType string

const (
	FieldTypeString FieldType = "str"
	FieldTypeBool   FieldType = "bool"
	FieldTypeInt    FieldType = "int"
	FieldTypeFloat  FieldType = "float"
)

// AllFieldTypes returns the field types offered by the schema builder.
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeString,
		FieldTypeBool,
		FieldTypeInt,
		FieldTypeFloat,
	}
}

// Valid reports whether t is one of the defined field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeString, FieldTypeBool, FieldTypeInt, FieldTypeFloat:
		return true
	}
	return false
}

// JSONType maps the field type to its JSON-schema type name. Unknown
// types fall back to "string".
func (t FieldType) JSONType() string {
	switch t {
	case FieldTypeBool:
		return "boolean"
	case FieldTypeInt:
		return "integer"
	case FieldTypeFloat:
		return "number"
	default:
		return "string"
	}
}

// Field is one user-defined entry in the extract schema builder.
type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// MaxSchemaFields caps how many fields the schema builder accepts.
const MaxSchemaFields = 5
