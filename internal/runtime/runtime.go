// Package runtime executes the round-trip demonstration. Go cannot load
// source code the process just wrote, so instead of compiling the emitted
// file the demonstration interprets the SchemaModel directly: an Instance
// behaves like the generated class (construct, set fields, serialize in
// schema order).
package runtime

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/classgen/classgen/internal/models"
)

// Instance is a dynamic stand-in for one object of the generated class.
type Instance struct {
	model  models.SchemaModel
	values map[string]models.JSONValue
}

// New creates an Instance with zero values for every field in the model.
func New(model models.SchemaModel) *Instance {
	values := make(map[string]models.JSONValue, len(model.Fields))
	for _, f := range model.Fields {
		values[f.Name] = zeroValue(f.Kind)
	}
	return &Instance{model: model, values: values}
}

// FromDocument creates an Instance seeded with the example document's own
// values. Serializing it reproduces the input object field for field.
func FromDocument(model models.SchemaModel, doc models.Document) (*Instance, error) {
	obj, ok := doc.Object()
	if !ok {
		return nil, fmt.Errorf("document root is not an object")
	}

	inst := New(model)
	for _, f := range model.Fields {
		if err := inst.Set(f.Name, obj[f.Name]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Set assigns a value to the named field, checking it against the field's
// inferred kind. Nil is accepted for any field.
func (in *Instance) Set(name string, value interface{}) error {
	field, ok := in.model.FieldByName(name)
	if !ok {
		return fmt.Errorf("no field '%s' in class %s", name, in.model.ClassName)
	}
	if value == nil {
		in.values[name] = nil
		return nil
	}
	if !matchesKind(field.Kind, value) {
		return fmt.Errorf("field '%s' expects a value of kind %s, got %T", name, field.Kind, value)
	}
	in.values[name] = value
	return nil
}

// Get returns the current value of the named field.
func (in *Instance) Get(name string) (interface{}, bool) {
	v, ok := in.values[name]
	return v, ok
}

// ToMap returns the instance as a plain map keyed by the original JSON names,
// mirroring the ToMap method of the emitted class.
func (in *Instance) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, len(in.values))
	for _, f := range in.model.Fields {
		out[f.Name] = in.values[f.Name]
	}
	return out
}

// MarshalJSON serializes the instance with fields in schema order. The
// encoder is hand-built because encoding/json sorts map keys.
func (in *Instance) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range in.model.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(in.values[f.Name])
		if err != nil {
			return nil, fmt.Errorf("failed to serialize field '%s': %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func zeroValue(kind models.TypeKind) models.JSONValue {
	switch kind {
	case models.String:
		return ""
	case models.Integer:
		return int64(0)
	case models.Float:
		return float64(0)
	case models.Boolean:
		return false
	case models.List:
		return models.JSONArray{}
	case models.Object:
		return models.JSONObject{}
	default:
		return nil
	}
}

// matchesKind reports whether a non-nil value is acceptable for a field of
// the given kind. Both native Go values and the parser's json.Number /
// JSONObject / JSONArray forms are accepted, so instances can be seeded from
// a parsed document or populated by hand.
func matchesKind(kind models.TypeKind, value interface{}) bool {
	switch kind {
	case models.String:
		_, ok := value.(string)
		return ok
	case models.Integer:
		switch n := value.(type) {
		case int, int32, int64:
			return true
		case json.Number:
			_, err := n.Int64()
			return err == nil
		}
		return false
	case models.Float:
		switch n := value.(type) {
		case float32, float64:
			return true
		case json.Number:
			_, err := n.Float64()
			return err == nil
		}
		return false
	case models.Boolean:
		_, ok := value.(bool)
		return ok
	case models.List:
		switch value.(type) {
		case models.JSONArray, []interface{}:
			return true
		}
		return false
	case models.Object:
		switch value.(type) {
		case models.JSONObject, map[string]interface{}:
			return true
		}
		return false
	case models.Null:
		// A Null field carries no type information; anything goes.
		return true
	default:
		return false
	}
}
