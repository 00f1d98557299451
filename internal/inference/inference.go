// Package inference derives a SchemaModel from one parsed example document.
package inference

import (
	"encoding/json"
	"fmt"

	"github.com/classgen/classgen/internal/config"
	"github.com/classgen/classgen/internal/errors"
	"github.com/classgen/classgen/internal/models"
)

// DefaultClassName is used when no class name is supplied.
const DefaultClassName = "GeneratedClass"

// Inferencer turns a parsed JSON document into a SchemaModel.
//
// Inference is deliberately flat: nested objects become opaque
// map[string]interface{} fields rather than nested classes. A single example
// document gives no reliable signal for merging or naming nested structures,
// and the emitter targets one class per document.
type Inferencer struct {
	config *config.Config
}

// NewInferencer creates a new Inferencer instance with default configuration.
func NewInferencer() *Inferencer {
	return &Inferencer{config: config.NewConfig()}
}

// NewInferencerWithConfig creates a new Inferencer with custom configuration.
func NewInferencerWithConfig(cfg *config.Config) *Inferencer {
	return &Inferencer{config: cfg}
}

// Infer produces a SchemaModel from the document's top-level keys, in the
// order they appear in the source text. It fails with a schema error when the
// root is not an object or the object is empty.
func (inf *Inferencer) Infer(doc models.Document, className string) (models.SchemaModel, error) {
	if className == "" {
		className = DefaultClassName
	}

	obj, ok := doc.Object()
	if !ok {
		return models.SchemaModel{}, errors.NewSchemaError(
			fmt.Sprintf("cannot infer a schema from a %s at the document root", rootKindName(doc.Root)),
			errors.ErrRootNotObject,
		)
	}
	if len(doc.Keys) == 0 {
		return models.SchemaModel{}, errors.NewSchemaError("the document is an empty object", errors.ErrNoFields)
	}

	model := models.SchemaModel{
		ClassName: className,
		Fields:    make([]models.FieldSpec, 0, len(doc.Keys)),
	}

	for _, key := range doc.Keys {
		kind, err := inferKind(obj[key])
		if err != nil {
			return models.SchemaModel{}, errors.NewSchemaError(
				fmt.Sprintf("failed to infer a type for field '%s'", key), err,
			)
		}
		model.Fields = append(model.Fields, models.FieldSpec{
			Name:     key,
			Ident:    inf.config.GetFieldName(key),
			Kind:     kind,
			Optional: kind == models.Null,
		})
	}

	return model, nil
}

// inferKind maps a JSON value's runtime kind onto the closed TypeKind set.
// Numbers are split lexically: a json.Number that parses as an int64 is an
// Integer, anything else (including "2.0") is a Float.
func inferKind(value models.JSONValue) (models.TypeKind, error) {
	switch v := value.(type) {
	case nil:
		return models.Null, nil
	case bool:
		return models.Boolean, nil
	case string:
		return models.String, nil
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return models.Integer, nil
		}
		return models.Float, nil
	case models.JSONObject:
		return models.Object, nil
	case models.JSONArray:
		return models.List, nil
	default:
		return models.Null, fmt.Errorf("unexpected JSON value type: %T", v)
	}
}

func rootKindName(root models.JSONValue) string {
	switch root.(type) {
	case models.JSONArray:
		return "JSON array"
	case nil:
		return "JSON null"
	default:
		return "JSON scalar"
	}
}
