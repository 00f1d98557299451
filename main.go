package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/iancoleman/strcase"

	"github.com/classgen/classgen/internal/config"
	"github.com/classgen/classgen/internal/emitter"
	"github.com/classgen/classgen/internal/errors"
	"github.com/classgen/classgen/internal/formatter"
	"github.com/classgen/classgen/internal/inference"
	"github.com/classgen/classgen/internal/models"
	"github.com/classgen/classgen/internal/parser"
	"github.com/classgen/classgen/internal/runtime"
)

// CLI defines the command-line interface. Every flag has a default, so a
// bare invocation reads default.json and writes generated_class.go.
var CLI struct {
	Input     string `help:"Path to the example JSON document." short:"i" default:"default.json"`
	Output    string `help:"Path for the generated Go source file." short:"o" default:"generated_class.go"`
	Package   string `help:"Package name for generated code." short:"p" default:"main"`
	ClassName string `help:"Name for the generated class. Defaults to the input file name in PascalCase." short:"r"`
	Config    string `help:"Path to a classgen config file." type:"path"`
	Format    bool   `help:"Format the output code according to Go standards." short:"f" default:"true" negatable:""`
	NoDemo    bool   `help:"Skip the round-trip demonstration."`
	Debug     bool   `help:"Enable debug logging." short:"d"`
	Version   bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kongParser := kong.Must(&CLI,
		kong.Name("classgen"),
		kong.Description("Infers a schema from one example JSON document and generates a Go class for it"),
		kong.UsageOnError(),
	)

	if _, err := kongParser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("classgen version %s\n", Version)
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "classgen"})
	if CLI.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: classgen --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic: parse the example document, infer its
// schema, emit and format the class source, write it out, then demonstrate
// the round trip on stdout.
func run(logger *log.Logger) error {
	cfg := loadConfig(logger)

	logger.Debug("parsing example document", "path", cfg.Input)
	doc, err := parser.ParseFile(cfg.Input)
	if err != nil {
		return err
	}

	className := cfg.ClassName
	if className == "" {
		className = classNameFromPath(cfg.Input)
	}

	logger.Debug("inferring schema", "class", className)
	inferencer := inference.NewInferencerWithConfig(cfg)
	model, err := inferencer.Infer(doc, className)
	if err != nil {
		return err
	}
	logger.Debug("schema inferred", "fields", len(model.Fields))

	code, err := emitter.NewEmitter().Emit(model, cfg.Package)
	if err != nil {
		return err
	}

	if cfg.Formatting.Enabled {
		code, err = formatter.NewFormatter().Format(code)
		if err != nil {
			return errors.NewEmissionError("emitted source failed to format", err)
		}
	}

	if err := os.WriteFile(cfg.Output, []byte(code), 0644); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to write to file '%s'", cfg.Output), err)
	}
	fmt.Fprintf(os.Stderr, "Generated class written to %s\n", cfg.Output)

	if !cfg.Demo.Enabled {
		return nil
	}
	return demonstrate(model, doc, cfg.Demo.Indent)
}

// demonstrate builds an instance carrying the example document's own values
// and prints its serialization, confirming the round trip.
func demonstrate(model models.SchemaModel, doc models.Document, indent bool) error {
	instance, err := runtime.FromDocument(model, doc)
	if err != nil {
		return errors.NewSchemaError("failed to build demonstration instance", err)
	}

	var out []byte
	if indent {
		out, err = json.MarshalIndent(instance, "", "  ")
	} else {
		out, err = json.Marshal(instance)
	}
	if err != nil {
		return errors.NewSchemaError("failed to serialize demonstration instance", err)
	}

	fmt.Println(string(out))
	return nil
}

// loadConfig resolves the effective configuration: defaults, then a config
// file if one is given or discovered, then CLI flags on top.
func loadConfig(logger *log.Logger) *config.Config {
	cfg := config.NewConfig()

	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			logger.Warn("ignoring unreadable config file", "path", path, "err", err)
		} else {
			logger.Debug("loaded config file", "path", path)
			cfg = loaded
		}
	}

	if CLI.Input != "default.json" || cfg.Input == "" {
		cfg.Input = CLI.Input
	}
	if CLI.Output != "generated_class.go" || cfg.Output == "" {
		cfg.Output = CLI.Output
	}
	if CLI.Package != "main" || cfg.Package == "" {
		cfg.Package = CLI.Package
	}
	if CLI.ClassName != "" {
		cfg.ClassName = CLI.ClassName
	}
	if !CLI.Format {
		cfg.Formatting.Enabled = false
	}
	if CLI.NoDemo {
		cfg.Demo.Enabled = false
	}

	return cfg
}

// classNameFromPath derives the class name from the input file name, so
// default.json generates a class named Default.
func classNameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := strcase.ToCamel(base)
	if name == "" {
		return inference.DefaultClassName
	}
	return name
}
