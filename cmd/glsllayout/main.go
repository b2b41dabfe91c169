package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/gpu-layout/layout"
	"github.com/wippyai/gpu-layout/schema"
)

func main() {
	var (
		schemaFile  = flag.String("schema", "", "Path to YAML struct schema")
		stdName     = flag.String("std", "both", "Layout standard: std140, std430 or both")
		structName  = flag.String("struct", "", "Only show this struct")
		normalize   = flag.Bool("normalize", false, "Print the resolved schema as YAML and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *schemaFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: glsllayout -schema <file.yaml> [-std std140|std430|both] [-struct Name]")
		fmt.Fprintln(os.Stderr, "       glsllayout -schema <file.yaml> -normalize")
		fmt.Fprintln(os.Stderr, "       glsllayout -schema <file.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = dev
		layout.SetLogger(log)
	}
	defer func() { _ = log.Sync() }()

	stds, err := parseStandards(*stdName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := schema.Load(*schemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Debug("loaded schema", zap.String("file", *schemaFile), zap.Int("structs", len(s.Structs())))

	if *normalize {
		out, err := s.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	if *interactive {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if err := runInteractive(*schemaFile, s, stds[0]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		log.Warn("stdout is not a terminal, printing tables instead")
	}

	if err := printTables(os.Stdout, s, *structName, stds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseStandards(name string) ([]layout.Standard, error) {
	if name == "both" || name == "" {
		return layout.Standards[:], nil
	}
	std, ok := layout.ParseStandard(name)
	if !ok {
		return nil, fmt.Errorf("unknown standard %q", name)
	}
	return []layout.Standard{std}, nil
}
