package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/methodql/methodql/internal/authz"
	"github.com/methodql/methodql/internal/methodmeta"
	"github.com/methodql/methodql/internal/objectmap"
	"github.com/methodql/methodql/internal/otel"
	"github.com/methodql/methodql/internal/provider"
	"github.com/methodql/methodql/internal/schema"
	"github.com/methodql/methodql/internal/typemap"
)

const rootUsage = `methodql — derive GraphQL schemas from annotated controller methods

USAGE:
  methodql <command> [flags]

COMMANDS:
  render           Derive and print the demo controller's schema as SDL
  help             Show help for any command
`

const renderUsage = `render FLAGS:
  -out <file>              Write rendered SDL to file (default: stdout)
  -validate <bool>         Validate the rendered SDL against the GraphQL
                           spec before emitting it (default: true)
  -otel.endpoint <addr>    OTLP collector endpoint
  -otel.service <name>     OpenTelemetry service name (default: methodql)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "render":
		return cmdRender(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "render":
		fmt.Print(renderUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdRender(args []string) error {
	outFile := ""
	validate := true
	otelEndpoint := ""
	otelService := "methodql"

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&outFile, "out", outFile, "Write rendered SDL to file")
	fs.BoolVar(&validate, "validate", validate, "Validate the rendered SDL")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, renderUsage)
		return err
	}

	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	reg := objectmap.NewRegistry()
	if _, err := reg.RegisterStruct(Product{}); err != nil {
		return fmt.Errorf("register types: %w", err)
	}

	ctrl := methodmeta.New(NewStoreController())
	gate := authz.NewGate(demoAuth{}, demoAuth{})
	p := provider.New(ctrl, gate, typemap.NewResolver(reg))

	s, err := provider.BuildSchema(context.Background(), p, reg)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	sdl := schema.Render(s)
	if validate {
		if err := schema.ValidateSDL(sdl); err != nil {
			return err
		}
	}
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}
