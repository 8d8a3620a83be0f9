// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reelmate/reelmate/internal/config"
)

func runConfigCLI(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printConfigUsage()
		return 0
	}

	switch args[0] {
	case "init":
		return runConfigInit(args[1:])
	case "validate":
		return runConfigValidate(args[1:])
	case "dump":
		return runConfigDump(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", args[0])
		printConfigUsage()
		return 2
	}
}

func printConfigUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  reelmate config init [--file|-f reelmate.yaml]")
	fmt.Fprintln(os.Stderr, "  reelmate config validate [--file|-f reelmate.yaml]")
	fmt.Fprintln(os.Stderr, "  reelmate config dump --effective [--file|-f reelmate.yaml] [--format=yaml|json]")
}

func fileFlag(fs *flag.FlagSet) *string {
	var file string
	fs.StringVar(&file, "file", "", "path to YAML configuration file")
	fs.StringVar(&file, "f", "", "path to YAML configuration file (shorthand)")
	return &file
}

func runConfigInit(args []string) int {
	fs := flag.NewFlagSet("reelmate config init", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := strings.TrimSpace(*file)
	if path == "" {
		path = "reelmate.yaml"
	}

	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("wrote %s\n", path)
	return 0
}

func runConfigValidate(args []string) int {
	fs := flag.NewFlagSet("reelmate config validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := strings.TrimSpace(*file)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		return 2
	}

	if _, err := config.NewLoader(path).Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n  %v\n", path, err)
		return 1
	}

	fmt.Printf("%s is valid\n", path)
	return 0
}

func runConfigDump(args []string) int {
	fs := flag.NewFlagSet("reelmate config dump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fileFlag(fs)
	var format string
	var effective bool
	fs.StringVar(&format, "format", "yaml", "output format: yaml or json")
	fs.BoolVar(&effective, "effective", false, "dump effective configuration (defaults + file + env)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !effective {
		fmt.Fprintln(os.Stderr, "Error: --effective is required")
		return 2
	}

	cfg, err := config.NewLoader(strings.TrimSpace(*file)).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error:\n  %v\n", err)
		return 1
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode YAML: %v\n", err)
			return 1
		}
		_ = enc.Close()
		return 0
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unsupported format: %s (use yaml or json)\n", format)
		return 2
	}
}
