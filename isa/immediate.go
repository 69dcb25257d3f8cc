package isa

import (
	"fmt"
	"strconv"
)

// ParseImmediate parses a decimal 8-bit unsigned immediate and returns
// its two digit lowercase hex field encoding.
func ParseImmediate(token string) (field string, err error) {
	value, err := strconv.ParseUint(token, 10, 8)
	if err != nil {
		err = &ErrImmediate{Token: token, Err: err}
		return
	}

	field = fmt.Sprintf("%02x", uint8(value))
	return
}
