package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/classgen/classgen/internal/errors"
	"github.com/classgen/classgen/internal/models"
)

// Parse converts JSON data from an io.Reader into a Document.
//
// The decoder walks tokens rather than unmarshalling into a map so that the
// order of the top-level keys survives; the schema model must list fields in
// the order they appear in the source document.
func Parse(reader io.Reader) (models.Document, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	root, keys, err := decodeValue(decoder)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Document{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.Document{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		return models.Document{}, errors.NewParsingError("failed to decode JSON", err)
	}

	// Anything beyond the first JSON value is an error; a valid example
	// document is exactly one value.
	if decoder.More() {
		return models.Document{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}
	if _, err := decoder.Token(); !stderrors.Is(err, io.EOF) {
		if err != nil {
			return models.Document{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
		}
		return models.Document{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}

	return models.Document{Root: root, Keys: keys}, nil
}

// decodeValue reads the next complete JSON value from the decoder. For
// objects it also returns the key order; nested callers discard it.
func decodeValue(decoder *json.Decoder) (models.JSONValue, []string, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			arr, err := decodeArray(decoder)
			return arr, nil, err
		default:
			return nil, nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool, or nil
		return t, nil, nil
	}
}

// decodeObject reads the members of an object whose opening brace has already
// been consumed. Duplicate keys keep their first position; the last value
// wins, matching encoding/json.
func decodeObject(decoder *json.Decoder) (models.JSONObject, []string, error) {
	obj := make(models.JSONObject)
	keys := make([]string, 0)

	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		val, _, err := decodeValue(decoder)
		if err != nil {
			return nil, nil, err
		}

		if _, seen := obj[key]; !seen {
			keys = append(keys, key)
		}
		obj[key] = val
	}

	// Consume the closing brace.
	if _, err := decoder.Token(); err != nil {
		return nil, nil, err
	}

	return obj, keys, nil
}

// decodeArray reads the elements of an array whose opening bracket has
// already been consumed.
func decodeArray(decoder *json.Decoder) (models.JSONArray, error) {
	arr := make(models.JSONArray, 0)

	for decoder.More() {
		val, _, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}

	// Consume the closing bracket.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Document, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Document{}, errors.NewParsingError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Document{}, errors.NewIOError("file path is empty", nil)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Document{}, errors.NewIOError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Document{}, errors.NewIOError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return models.Document{}, errors.NewIOError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Document{}, errors.NewIOError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
