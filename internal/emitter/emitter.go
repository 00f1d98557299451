// Package emitter renders a SchemaModel as Go source text: one struct, a
// constructor, and an ordered serialization method.
package emitter

import (
	"bytes"
	"fmt"
	"go/token"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/classgen/classgen/internal/errors"
	"github.com/classgen/classgen/internal/models"
)

// Emitted identifiers must be exported so the generated class is usable from
// other packages.
var identRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Emitter generates the class source for a SchemaModel.
type Emitter struct{}

// NewEmitter creates a new Emitter instance
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit produces the generated class source for the model. Output is
// deterministic: the same model and package name always yield byte-identical
// text. It fails with an emission error when the class name is not a valid
// exported identifier or when two fields collide after sanitization.
func (e *Emitter) Emit(model models.SchemaModel, packageName string) (string, error) {
	if err := validate(model); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by classgen. DO NOT EDIT.\n\n")
	buf.WriteString(fmt.Sprintf("package %s\n\n", packageName))

	writeStruct(&buf, model)
	buf.WriteString("\n")
	writeConstructor(&buf, model)
	buf.WriteString("\n")
	writeToMap(&buf, model)

	return buf.String(), nil
}

// validate checks the class name and field identifiers before anything is
// written, so a bad model produces no partial output.
func validate(model models.SchemaModel) error {
	if !identRegex.MatchString(model.ClassName) {
		return errors.NewEmissionError(
			fmt.Sprintf("class name '%s' is not a valid exported Go identifier", model.ClassName),
			errors.ErrBadClassName,
		)
	}

	seen := make(map[string]string, len(model.Fields))
	for _, f := range model.Fields {
		if !identRegex.MatchString(f.Ident) {
			return errors.NewEmissionError(
				fmt.Sprintf("field '%s' sanitizes to '%s', which is not a valid exported Go identifier", f.Name, f.Ident),
				errors.ErrBadClassName,
			)
		}
		if prev, dup := seen[f.Ident]; dup {
			return errors.NewEmissionError(
				fmt.Sprintf("fields '%s' and '%s' both sanitize to the identifier '%s'", prev, f.Name, f.Ident),
				errors.ErrIdentCollision,
			)
		}
		seen[f.Ident] = f.Name
	}
	return nil
}

// writeStruct emits the type declaration with one field per FieldSpec, in
// schema order, with gofmt-style column alignment.
func writeStruct(buf *bytes.Buffer, model models.SchemaModel) {
	buf.WriteString(fmt.Sprintf("type %s struct {\n", model.ClassName))

	maxNameWidth := 0
	maxTypeWidth := 0
	for _, f := range model.Fields {
		if len(f.Ident) > maxNameWidth {
			maxNameWidth = len(f.Ident)
		}
		if len(f.Kind.GoType()) > maxTypeWidth {
			maxTypeWidth = len(f.Kind.GoType())
		}
	}

	for _, f := range model.Fields {
		buf.WriteString(fmt.Sprintf("\t%-*s %-*s %s\n",
			maxNameWidth, f.Ident,
			maxTypeWidth, f.Kind.GoType(),
			jsonTag(f)))
	}

	buf.WriteString("}\n")
}

func writeConstructor(buf *bytes.Buffer, model models.SchemaModel) {
	params := make([]string, 0, len(model.Fields))
	for _, f := range model.Fields {
		params = append(params, fmt.Sprintf("%s %s", paramName(f.Ident), f.Kind.GoType()))
	}

	buf.WriteString(fmt.Sprintf("// New%s constructs a %s with one argument per field, in schema order.\n",
		model.ClassName, model.ClassName))
	buf.WriteString(fmt.Sprintf("func New%s(%s) *%s {\n",
		model.ClassName, strings.Join(params, ", "), model.ClassName))
	buf.WriteString(fmt.Sprintf("\treturn &%s{\n", model.ClassName))

	width := keyWidth(model, func(f models.FieldSpec) string { return f.Ident })
	for _, f := range model.Fields {
		buf.WriteString(fmt.Sprintf("\t\t%-*s %s,\n", width, f.Ident+":", paramName(f.Ident)))
	}

	buf.WriteString("\t}\n}\n")
}

func writeToMap(buf *bytes.Buffer, model models.SchemaModel) {
	recv := strings.ToLower(model.ClassName[:1])

	buf.WriteString(fmt.Sprintf("// ToMap returns the %s as a map keyed by the original JSON names,\n", model.ClassName))
	buf.WriteString("// suitable for direct JSON encoding.\n")
	buf.WriteString(fmt.Sprintf("func (%s *%s) ToMap() map[string]interface{} {\n", recv, model.ClassName))
	buf.WriteString("\treturn map[string]interface{}{\n")

	width := keyWidth(model, func(f models.FieldSpec) string { return fmt.Sprintf("%q", f.Name) })
	for _, f := range model.Fields {
		buf.WriteString(fmt.Sprintf("\t\t%-*s %s.%s,\n", width, fmt.Sprintf("%q", f.Name)+":", recv, f.Ident))
	}

	buf.WriteString("\t}\n}\n")
}

// keyWidth returns the column width gofmt would use for a run of composite
// literal keys: the longest key plus its trailing colon.
func keyWidth(model models.SchemaModel, key func(models.FieldSpec) string) int {
	width := 0
	for _, f := range model.Fields {
		if w := len(key(f)) + 1; w > width {
			width = w
		}
	}
	return width
}

// paramName converts a field identifier to a constructor parameter name,
// stepping around Go keywords (a field named "type" would otherwise produce
// an unusable parameter).
func paramName(ident string) string {
	name := strcase.ToLowerCamel(ident)
	if token.IsKeyword(name) {
		name += "Arg"
	}
	return name
}

func jsonTag(f models.FieldSpec) string {
	if f.Optional {
		return fmt.Sprintf("`json:\"%s,omitempty\"`", f.Name)
	}
	return fmt.Sprintf("`json:\"%s\"`", f.Name)
}
