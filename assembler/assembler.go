// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"io"
	"log"
	"strings"

	"github.com/ezrec/asm2ms/internal"
	"github.com/ezrec/asm2ms/isa"
)

// Assembler is a single pass, line at a time assembler. Lines never
// share state: each is either encoded into a record or rejected with a
// diagnostic.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Format  Format // Output record format.
}

// Tokenize splits a source line on single spaces and trims commas from
// both ends of each word.
func Tokenize(line string) (words []string) {
	words = strings.Split(line, " ")
	for n, word := range words {
		words[n] = strings.Trim(word, ",")
	}
	return
}

// Line assembles one source line.
func (asm *Assembler) Line(line string) (word string, err error) {
	words := Tokenize(line)

	ins := isa.NewInstruction(words[0])
	if !ins.Accepts(len(words) - 1) {
		if !ins.Command.Defined() {
			err = isa.ErrUndefinedCommand
		} else {
			err = &isa.ErrOperandCount{Command: ins.Command, Want: ins.Operands, Got: len(words) - 1}
		}
		return
	}

	err = ins.Fill(words)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%v %v => %v\n", ins.Command, words[1:], ins.Word)
	}

	word = ins.Word
	return
}

// Assemble assembles source text. Blank lines are skipped.
func (asm *Assembler) Assemble(text string) (listing *Listing) {
	listing = &Listing{}

	for lineno, line := range internal.Lines(text) {
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		word, err := asm.Line(line)
		if err != nil {
			listing.Diagnostics = append(listing.Diagnostics, &ErrSyntax{LineNo: lineno, Line: line, Err: err})
			continue
		}

		listing.Records = append(listing.Records, Record{LineNo: lineno, Line: line, Word: word})
	}

	return
}

// Parse reads all of input and assembles it.
func (asm *Assembler) Parse(input io.Reader) (listing *Listing, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	listing = asm.Assemble(string(text))
	return
}
