// Package config loads asm2ms build settings from a starlark file.
//
// A build file assigns any of the following globals:
//
//	input = "program.asm"   # source artifact
//	output = "program.ms"   # encoded artifact
//	format = ANNOTATED      # or PLAIN
//	sync = True             # flush output to stable storage
//	verbose = False         # log assembler actions
//
// Globals whose names begin with an underscore are private to the file.
package config

import (
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/asm2ms/assembler"
)

const (
	DEFAULT_INPUT  = "program.asm"
	DEFAULT_OUTPUT = "program.ms"
)

// Config holds the settings of a single assembler run.
type Config struct {
	Input   string           // Source artifact path.
	Output  string           // Encoded artifact path.
	Format  assembler.Format // Output record format.
	Sync    bool             // Flush output to stable storage.
	Verbose bool             // Log assembler actions.
}

// Default returns the settings used when no build file is given.
func Default() *Config {
	return &Config{
		Input:  DEFAULT_INPUT,
		Output: DEFAULT_OUTPUT,
		Format: assembler.FORMAT_ANNOTATED,
		Sync:   true,
	}
}

// predeclared are the names visible to a build file.
var predeclared = starlark.StringDict{
	"ANNOTATED": starlark.String(assembler.FORMAT_ANNOTATED.String()),
	"PLAIN":     starlark.String(assembler.FORMAT_PLAIN.String()),
}

// Load evaluates a build file and applies its globals to the config.
// If src is nil the file is read from filename.
func (cfg *Config) Load(filename string, src any) (err error) {
	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared)
	if err != nil {
		return
	}

	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}
		err = cfg.set(name, globals[name])
		if err != nil {
			err = &ErrSetting{Name: name, Err: err}
			return
		}
	}

	return
}

// set applies a single global.
func (cfg *Config) set(name string, value starlark.Value) (err error) {
	switch name {
	case "input":
		return setString(&cfg.Input, value)
	case "output":
		return setString(&cfg.Output, value)
	case "format":
		var str string
		err = setString(&str, value)
		if err != nil {
			return
		}
		cfg.Format, err = assembler.ParseFormat(str)
		return
	case "sync":
		return setBool(&cfg.Sync, value)
	case "verbose":
		return setBool(&cfg.Verbose, value)
	default:
		return ErrConfigUnknown
	}
}

func setString(dst *string, value starlark.Value) error {
	str, ok := starlark.AsString(value)
	if !ok {
		return ErrConfigType
	}
	*dst = str
	return nil
}

func setBool(dst *bool, value starlark.Value) error {
	b, ok := value.(starlark.Bool)
	if !ok {
		return ErrConfigType
	}
	*dst = bool(b)
	return nil
}
