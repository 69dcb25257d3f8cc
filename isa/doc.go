// Package isa implements the instruction table and encoder for the
// asm2ms instruction set.
//
// Every instruction is a single 32-bit word written as ASCII hex text.
// Each mnemonic owns a word template whose placeholder fields (RD, RX,
// RY, RD*, IMM) are filled from the operands of a source line: registers
// R0-R5 encode as one digit, immediates as two hex digits, and the
// load/loadi destination (RD*) carries the register shifted left one bit
// with the low addressing-mode bit set.
package isa
