package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a general purpose register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // R0
	REG_R1 = Register(1) // R1
	REG_R2 = Register(2) // R2
	REG_R3 = Register(3) // R3
	REG_R4 = Register(4) // R4
	REG_R5 = Register(5) // R5

	REG_COUNT = 6
)

// registerMap maps uppercase register names to registers.
var registerMap = func() map[string]Register {
	regs := make(map[string]Register, REG_COUNT)
	for n := range REG_COUNT {
		reg := Register(n)
		regs[reg.String()] = reg
	}
	return regs
}()

// LookupRegister returns the register named by token, ignoring case.
func LookupRegister(token string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToUpper(token)]
	return
}

// Digit returns the plain register field encoding.
func (reg Register) Digit() string {
	return strconv.Itoa(int(reg))
}

// Doubled returns the load destination field encoding: the register
// number shifted left one bit with the addressing-mode bit set.
func (reg Register) Doubled() string {
	return fmt.Sprintf("%x", (int(reg)<<1)+1)
}
