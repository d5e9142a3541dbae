package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/agiangrant/boxaspect/cmd/boxaspect/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "layout":
		err = commands.Layout(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("boxaspect version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		err = fmt.Errorf("%s: %w", cmd, commands.ErrUnknownCommand)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, commands.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr)
			printUsage()
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`boxaspect - box layout with aspect-preserving children

Usage: boxaspect <command> [options]

Commands:
  layout    Lay out one or more scene files and print the geometry
  init      Write a sample scene.toml and theme.toml
  version   Print version information
  help      Show this help message

Examples:
  boxaspect init                        Create scene.toml and theme.toml here
  boxaspect layout scene.toml           Print a table of positions and sizes
  boxaspect layout -json a.toml b.toml  Print both scenes as JSON
  boxaspect layout -debug scene.toml    Trace every layout pass

Configuration:
  A scene names its theme file relative to itself ("theme = ...").
  Without one, the built-in theme is used (BoxContainer separation 4).`)
}
