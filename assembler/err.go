package assembler

import (
	"errors"

	"github.com/ezrec/asm2ms/translate"
)

var f = translate.From

var (
	ErrFormatInvalid = errors.New(f("record format invalid"))
)

// ErrSyntax locates a rejected source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrIo is a fatal failure reading or writing an artifact.
type ErrIo struct {
	Op   string
	Path string
	Err  error
}

func (err *ErrIo) Error() string {
	return f("%v %v: %v", err.Op, err.Path, err.Err)
}

func (err *ErrIo) Unwrap() error {
	return err.Err
}
