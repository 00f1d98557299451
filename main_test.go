package main

import (
	"go/format"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classgen/classgen/internal/errors"
)

// withCLI resets the package-level CLI struct to defaults for a test and
// restores it afterwards; run() reads it directly.
func withCLI(t *testing.T) {
	t.Helper()
	old := CLI
	t.Cleanup(func() { CLI = old })

	CLI.Input = "default.json"
	CLI.Output = "generated_class.go"
	CLI.Package = "main"
	CLI.ClassName = ""
	CLI.Config = ""
	CLI.Format = true
	CLI.NoDemo = false
	CLI.Debug = false
	CLI.Version = false
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRun_EndToEnd(t *testing.T) {
	withCLI(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "flight.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"flightId": "AF1234",
		"altitude": 35000,
		"speed": 512.5,
		"status": "cruising",
		"waypoints": ["CDG", "JFK"],
		"crew": {"pilot": "A. Laurent"},
		"delayReason": null
	}`), 0644))
	output := filepath.Join(dir, "flight_gen.go")

	CLI.Input = input
	CLI.Output = output
	CLI.Package = "models"

	require.NoError(t, run(testLogger()))

	code, err := os.ReadFile(output)
	require.NoError(t, err)

	// Class name is derived from the input file name.
	assert.Contains(t, string(code), "type Flight struct {")
	assert.Contains(t, string(code), "func NewFlight(")
	assert.Contains(t, string(code), "func (f *Flight) ToMap() map[string]interface{} {")
	assert.Contains(t, string(code), "package models")
	assert.Contains(t, string(code), "`json:\"flightId\"`")
	assert.Contains(t, string(code), "`json:\"delayReason,omitempty\"`")

	// The written artifact must be valid, gofmt-clean Go.
	formatted, err := format.Source(code)
	require.NoError(t, err)
	assert.Equal(t, string(code), string(formatted))
}

func TestRun_ClassNameFlagWins(t *testing.T) {
	withCLI(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"id": 1}`), 0644))
	output := filepath.Join(dir, "out.go")

	CLI.Input = input
	CLI.Output = output
	CLI.ClassName = "Record"
	CLI.NoDemo = true

	require.NoError(t, run(testLogger()))

	code, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(code), "type Record struct {")
}

func TestRun_MissingInput(t *testing.T) {
	withCLI(t)
	dir := t.TempDir()

	CLI.Input = filepath.Join(dir, "missing.json")
	CLI.Output = filepath.Join(dir, "out.go")

	err := run(testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrFileNotFound)

	_, statErr := os.Stat(CLI.Output)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on failure")
}

func TestRun_RootArrayFails(t *testing.T) {
	withCLI(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "list.json")
	require.NoError(t, os.WriteFile(input, []byte(`[1, 2, 3]`), 0644))

	CLI.Input = input
	CLI.Output = filepath.Join(dir, "out.go")

	err := run(testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRootNotObject)

	_, statErr := os.Stat(CLI.Output)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on failure")
}

func TestRun_IdentifierCollisionFails(t *testing.T) {
	withCLI(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "collide.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"a-b": 1, "a_b": 2}`), 0644))

	CLI.Input = input
	CLI.Output = filepath.Join(dir, "out.go")

	err := run(testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrIdentCollision)

	_, statErr := os.Stat(CLI.Output)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on failure")
}

func TestRun_TestdataExample(t *testing.T) {
	withCLI(t)
	dir := t.TempDir()

	CLI.Input = filepath.Join("testdata", "default.json")
	CLI.Output = filepath.Join(dir, "default_gen.go")
	CLI.NoDemo = true

	require.NoError(t, run(testLogger()))

	code, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Contains(t, string(code), "type Default struct {")
	assert.Contains(t, string(code), "Address  map[string]interface{}")
	assert.Contains(t, string(code), "Hobbies  []interface{}")
}

func TestClassNameFromPath(t *testing.T) {
	tests := map[string]string{
		"default.json":          "Default",
		"/tmp/flight_data.json": "FlightData",
		"userProfile.json":      "UserProfile",
		"doc":                   "Doc",
	}
	for path, want := range tests {
		assert.Equal(t, want, classNameFromPath(path), "path %q", path)
	}
}
