package isa

import (
	"errors"

	"github.com/ezrec/asm2ms/translate"
)

var f = translate.From

var (
	// Instruction errors
	ErrUndefinedCommand     = errors.New(f("undefined command"))
	ErrOperandCountMismatch = errors.New(f("wrong instruction arguments"))
	ErrUnsupportedRegister  = errors.New(f("unsupported register"))
	ErrMalformedImmediate   = errors.New(f("malformed immediate"))

	// Template errors
	ErrTemplateSyntax     = errors.New(f("template syntax"))
	ErrTemplateIncomplete = errors.New(f("template field unresolved"))
)

// ErrRegister reports a token that is not one of R0-R5.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a supported register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrUnsupportedRegister
}

// ErrImmediate reports a token that is not an 8-bit unsigned integer.
// Err carries the parser's own diagnostic.
type ErrImmediate struct {
	Token string
	Err   error
}

func (err *ErrImmediate) Error() string {
	return f("'%v' is not an 8-bit immediate: %v", err.Token, err.Err)
}

func (err *ErrImmediate) Is(target error) bool {
	return target == ErrMalformedImmediate
}

func (err *ErrImmediate) Unwrap() error {
	return err.Err
}

// ErrOperandCount reports an operand count that does not match the command.
type ErrOperandCount struct {
	Command Command
	Want    int
	Got     int
}

func (err *ErrOperandCount) Error() string {
	return f("%v takes %d operands, got %d", err.Command, err.Want, err.Got)
}

func (err *ErrOperandCount) Is(target error) bool {
	return target == ErrOperandCountMismatch
}

// ErrField reports a template field that was never given a value.
type ErrField Field

func (err ErrField) Error() string {
	return f("<%v> %v", Field(err), ErrTemplateIncomplete)
}

func (err ErrField) Is(target error) bool {
	return target == ErrTemplateIncomplete
}
