package config

import (
	"errors"

	"github.com/ezrec/asm2ms/translate"
)

var f = translate.From

var (
	ErrConfigUnknown = errors.New(f("unknown setting"))
	ErrConfigType    = errors.New(f("setting has wrong type"))
)

// ErrSetting locates a bad setting in a build file.
type ErrSetting struct {
	Name string
	Err  error
}

func (err *ErrSetting) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrSetting) Unwrap() error {
	return err.Err
}
