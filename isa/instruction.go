// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Instruction is a single source line being encoded.
type Instruction struct {
	Command  Command  // Resolved command.
	Template Template // Word template of the command.
	Operands int      // Required operand count, -1 if undefined.
	Word     string   // Encoded word, set once Fill succeeds.
}

// NewInstruction looks up the mnemonic and captures its template and
// operand count.
func NewInstruction(mnemonic string) (ins *Instruction) {
	cmd := LookupCommand(mnemonic)
	ins = &Instruction{
		Command:  cmd,
		Template: cmd.Template(),
		Operands: cmd.OperandCount(),
	}
	return
}

// Accepts is true if the instruction takes count operands.
func (ins *Instruction) Accepts(count int) bool {
	return ins.Command.Defined() && ins.Operands == count
}

// Fill resolves the operands of a tokenized line, where words[0] is the
// mnemonic, and renders the encoded word. On error the Word is left empty.
func (ins *Instruction) Fill(words []string) (err error) {
	ins.Word = ""

	if !ins.Command.Defined() {
		err = ErrUndefinedCommand
		return
	}

	args := words[min(1, len(words)):]
	if len(args) != ins.Operands {
		err = &ErrOperandCount{Command: ins.Command, Want: ins.Operands, Got: len(args)}
		return
	}

	values := make(map[Field]string, len(args))
	for n, fd := range ins.Command.Operands() {
		var value string
		value, err = resolve(fd, args[n])
		if err != nil {
			return
		}
		values[fd] = value
	}

	word, err := ins.Template.Render(values)
	if err != nil {
		return
	}

	ins.Word = word
	return
}

// resolve encodes one operand token for its field.
func resolve(fd Field, token string) (value string, err error) {
	if !fd.IsRegister() {
		return ParseImmediate(token)
	}

	reg, ok := LookupRegister(token)
	if !ok {
		err = ErrRegister(token)
		return
	}

	if fd == FIELD_RD_LOAD {
		value = reg.Doubled()
	} else {
		value = reg.Digit()
	}

	return
}

// Encode encodes a mnemonic and its operand tokens into a word.
func Encode(mnemonic string, operands ...string) (word string, err error) {
	ins := NewInstruction(mnemonic)
	err = ins.Fill(append([]string{mnemonic}, operands...))
	if err != nil {
		return
	}

	word = ins.Word
	return
}
