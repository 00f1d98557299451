package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_BasicCode(t *testing.T) {
	unformatted := `package main

type Person struct {
Name string ` + "`json:\"name\"`" + `
Age int64 ` + "`json:\"age\"`" + `
}
`
	formatted, err := NewFormatter().Format(unformatted)
	require.NoError(t, err)

	expected := `package main

type Person struct {
	Name string ` + "`json:\"name\"`" + `
	Age  int64  ` + "`json:\"age\"`" + `
}
`
	assert.Equal(t, expected, formatted)
}

func TestFormat_AlreadyFormatted(t *testing.T) {
	code := `package main

type Item struct {
	ID int64 ` + "`json:\"id\"`" + `
}
`
	formatted, err := NewFormatter().Format(code)
	require.NoError(t, err)
	assert.Equal(t, code, formatted)
}

func TestFormat_EmptyInput(t *testing.T) {
	formatted, err := NewFormatter().Format("   \n ")
	require.NoError(t, err)
	assert.Equal(t, "", formatted)
}

func TestFormat_InvalidSyntax(t *testing.T) {
	_, err := NewFormatter().Format(`package main

type Broken struct {
	Name string json:"name"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Go code")
}
