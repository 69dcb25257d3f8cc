package assembler

import (
	"errors"
	"strings"
	"testing"

	"github.com/ezrec/asm2ms/isa"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"mov", "R1", "R2"}, Tokenize("mov R1, R2"))
	assert.Equal([]string{"add", "R1", "R2", "R3"}, Tokenize("add ,R1, R2,, R3"))
	assert.Equal([]string{"nop"}, Tokenize("nop"))
	assert.Equal([]string{"mov", "", "R1", "R2"}, Tokenize("mov  R1 R2"))
	assert.Equal([]string{"mov", "R1,R2"}, Tokenize("mov R1,R2"))
}

func recordsEqual(t *testing.T, expected, records []Record) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(records))
	if len(expected) == len(records) {
		for n := range len(expected) {
			assert.Equal(expected[n], records[n])
		}
	}
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	listing, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(listing.Records)
	assert.Empty(listing.Diagnostics)
	assert.Empty(listing.Marshal(FORMAT_ANNOTATED))
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"movi R1, 10",
		"movi R2, 1",
		"add R3, R1, R2",
		"",
		"load R2, R1",
		"loadi r0, 255",
		"jnz R3, 0",
		"nop",
	}

	listing, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Empty(listing.Diagnostics)

	expected := []Record{
		{1, "movi R1, 10", "0x0016810a"},
		{2, "movi R2, 1", "0x00168201"},
		{3, "add R3, R1, R2", "0x00112300"},
		{5, "load R2, R1", "0x00116500"},
		{6, "loadi r0, 255", "0x0016e1ff"},
		{7, "jnz R3, 0", "0x0333e600"},
		{8, "nop", "0x00166600"},
	}

	recordsEqual(t, expected, listing.Records)
}

func TestAssemblerRejected(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"mov R1, R2, R3",
		"xyz R1",
		"nop",
		"mov R1, R7",
		"movi R1, 256",
		"MOV R1, R2",
		"mov R1,R2",
		"jump R0",
	}

	listing := asm.Assemble(strings.Join(program, "\r\n"))

	recordsEqual(t, []Record{
		{3, "nop", "0x00166600"},
		{8, "jump R0", "0x01106600"},
	}, listing.Records)

	sentinels := []error{
		isa.ErrOperandCountMismatch,
		isa.ErrUndefinedCommand,
		isa.ErrUnsupportedRegister,
		isa.ErrMalformedImmediate,
		isa.ErrUndefinedCommand,
		isa.ErrOperandCountMismatch,
	}
	linenos := []int{1, 2, 4, 5, 6, 7}

	assert.Len(listing.Diagnostics, len(sentinels))
	for n, diag := range listing.Diagnostics {
		assert.ErrorIs(diag, sentinels[n])

		var syntax *ErrSyntax
		if assert.True(errors.As(diag, &syntax)) {
			assert.Equal(linenos[n], syntax.LineNo)
			assert.Equal(program[linenos[n]-1], syntax.Line)
		}
	}

	assert.Equal("0x00166600 ; nop\r\n0x01106600 ; jump R0\r\n", string(listing.Marshal(FORMAT_ANNOTATED)))
}

func TestAssemblerLine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	word, err := asm.Line("mov R1, R2")
	assert.NoError(err)
	assert.Equal("0x00126100", word)

	word, err = asm.Line("mov R1, R2, R3")
	assert.ErrorIs(err, isa.ErrOperandCountMismatch)
	assert.Empty(word)

	_, err = asm.Line("xyz")
	assert.ErrorIs(err, isa.ErrUndefinedCommand)

	// An unknown mnemonic is undefined whatever its operand count.
	_, err = asm.Line("xyz R1 R2 R3")
	assert.ErrorIs(err, isa.ErrUndefinedCommand)
}

func TestAssemblerVerbose(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Verbose: true}

	listing := asm.Assemble("nop\nxyz\n")
	assert.Len(listing.Records, 1)
	assert.Len(listing.Diagnostics, 1)
}

func TestAssemblerIdempotent(t *testing.T) {
	assert := assert.New(t)

	text := "mov R1, R2\nbad\nandi R1, R2, 3\n"

	asm := &Assembler{}
	first := asm.Assemble(text).Marshal(FORMAT_ANNOTATED)
	second := asm.Assemble(text).Marshal(FORMAT_ANNOTATED)
	assert.Equal(first, second)
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestAssemblerParse_ReadError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	listing, err := asm.Parse(failReader{})
	assert.EqualError(err, "boom")
	assert.Nil(listing)
}
