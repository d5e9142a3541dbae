package commands

import "errors"

// ErrUnknownCommand is returned for a command name the CLI does not know.
var ErrUnknownCommand = errors.New("unknown command")

// errNoScenes is returned when layout is run without scene files.
var errNoScenes = errors.New("no scene files given")
