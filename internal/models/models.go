package models

import "fmt"

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Document holds one parsed example JSON document. When the root of the
// document is an object, Keys records the order in which its top-level keys
// appear in the source text; Go maps do not preserve that order on their own.
type Document struct {
	Root JSONValue
	Keys []string
}

// Object returns the root as a JSONObject, if the root is an object.
func (d Document) Object() (JSONObject, bool) {
	obj, ok := d.Root.(JSONObject)
	return obj, ok
}

// TypeKind is the closed set of types the inferencer can assign to a field.
type TypeKind int

const (
	String TypeKind = iota
	Integer
	Float
	Boolean
	List
	Object
	Null
)

// String returns the kind name, mostly for error messages and debug logs.
func (k TypeKind) String() string {
	switch k {
	case String:
		return "String"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	case List:
		return "List"
	case Object:
		return "Object"
	case Null:
		return "Null"
	default:
		return fmt.Sprintf("TypeKind(%d)", int(k))
	}
}

// GoType returns the Go type the emitter uses for fields of this kind.
// Nested objects are kept as opaque maps rather than generating nested
// classes; the emitter targets a single flat class per document.
func (k TypeKind) GoType() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "int64"
	case Float:
		return "float64"
	case Boolean:
		return "bool"
	case List:
		return "[]interface{}"
	case Object:
		return "map[string]interface{}"
	case Null:
		return "interface{}"
	default:
		return "interface{}"
	}
}

// FieldSpec describes one top-level field of the example document.
// Immutable after inference.
type FieldSpec struct {
	// Name is the original JSON key.
	Name string
	// Ident is the sanitized Go identifier for the struct field.
	Ident string
	// Kind is the inferred type of the example value.
	Kind TypeKind
	// Optional is true when the example value was null, the only optionality
	// signal a single example document can give.
	Optional bool
}

// SchemaModel is the ordered field list inferred from one example document.
// Fields appear in the order their keys appear in the source document, and
// field names are unique within a model.
type SchemaModel struct {
	ClassName string
	Fields    []FieldSpec
}

// FieldByName looks a field up by its original JSON key.
func (m SchemaModel) FieldByName(name string) (FieldSpec, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
