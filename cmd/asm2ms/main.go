// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tebeka/atexit"

	"github.com/ezrec/asm2ms/artifact"
	"github.com/ezrec/asm2ms/assembler"
	"github.com/ezrec/asm2ms/config"
	"github.com/ezrec/asm2ms/translate"
)

var f = translate.From

func main() {
	var build string
	var input string
	var output string
	var format string
	var sync bool
	var verbose bool

	log.SetFlags(0)

	flag.StringVar(&build, "c", "", ".star build file to load")
	flag.StringVar(&input, "i", config.DEFAULT_INPUT, ".asm file to assemble")
	flag.StringVar(&output, "o", config.DEFAULT_OUTPUT, ".ms file to write")
	flag.StringVar(&format, "f", assembler.FORMAT_ANNOTATED.String(), "Record format (annotated, plain)")
	flag.BoolVar(&sync, "s", true, "Sync output to stable storage")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	atexit.Register(func() {
		fmt.Println(f("Done"))
	})

	if flag.NArg() != 0 {
		atexit.Fatalf("asm2ms: Unknown arguments: %v", flag.Args())
	}

	cfg := config.Default()
	if len(build) != 0 {
		err := cfg.Load(build, nil)
		if err != nil {
			atexit.Fatalf("%v: %v", build, err)
		}
	}

	// Explicit flags override the build file.
	var err error
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "i":
			cfg.Input = input
		case "o":
			cfg.Output = output
		case "f":
			cfg.Format, err = assembler.ParseFormat(format)
		case "s":
			cfg.Sync = sync
		case "v":
			cfg.Verbose = verbose
		}
	})
	if err != nil {
		atexit.Fatalf("-f %v: %v", format, err)
	}

	asm := &assembler.Assembler{Verbose: cfg.Verbose, Format: cfg.Format}
	disk := &artifact.Disk{Verbose: cfg.Verbose, Sync: cfg.Sync}

	listing, err := asm.Compile(disk, cfg.Input, disk, cfg.Output)
	if err != nil {
		atexit.Fatal(err)
	}

	for _, diag := range listing.Diagnostics {
		log.Print(diag)
	}

	atexit.Exit(0)
}
