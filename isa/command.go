package isa

// Command is an instruction mnemonic.
type Command int

//go:generate go tool stringer -linecomment -type=Command
const (
	CMD_UNDEFINED = Command(0)  // undefined
	CMD_MOV       = Command(1)  // mov
	CMD_MOVI      = Command(2)  // movi
	CMD_NOP       = Command(3)  // nop
	CMD_JUMP      = Command(4)  // jump
	CMD_JUMPI     = Command(5)  // jumpi
	CMD_JZ        = Command(6)  // jz
	CMD_JNZ       = Command(7)  // jnz
	CMD_ADD       = Command(8)  // add
	CMD_ADDI      = Command(9)  // addi
	CMD_AND       = Command(10) // and
	CMD_ANDI      = Command(11) // andi
	CMD_LOAD      = Command(12) // load
	CMD_LOADI     = Command(13) // loadi

	CMD_COUNT = 14
)

// commandInfo is the static encoding data of a command.
type commandInfo struct {
	Pattern  string  // Word template.
	Operands []Field // Operand slots, in source order.
}

var commandInfoTable = [CMD_COUNT]commandInfo{
	CMD_MOV:   {"0x001<RX>6<RD>00", []Field{FIELD_RD, FIELD_RX}},
	CMD_MOVI:  {"0x00168<RD><IMM>", []Field{FIELD_RD, FIELD_IMM}},
	CMD_NOP:   {"0x00166600", nil},
	CMD_JUMP:  {"0x011<RX>6600", []Field{FIELD_RX}},
	CMD_JUMPI: {"0x0116e6<IMM>", []Field{FIELD_IMM}},
	CMD_JZ:    {"0x023<RX>e6<IMM>", []Field{FIELD_RX, FIELD_IMM}},
	CMD_JNZ:   {"0x033<RX>e6<IMM>", []Field{FIELD_RX, FIELD_IMM}},
	CMD_ADD:   {"0x001<RX><RY><RD>00", []Field{FIELD_RD, FIELD_RX, FIELD_RY}},
	CMD_ADDI:  {"0x001<RX>e<RD><IMM>", []Field{FIELD_RD, FIELD_RX, FIELD_IMM}},
	CMD_AND:   {"0x000<RX><RY><RD>00", []Field{FIELD_RD, FIELD_RX, FIELD_RY}},
	CMD_ANDI:  {"0x000<RX>e<RD><IMM>", []Field{FIELD_RD, FIELD_RX, FIELD_IMM}},
	CMD_LOAD:  {"0x001<RX>6<RD*>00", []Field{FIELD_RD_LOAD, FIELD_RX}},
	CMD_LOADI: {"0x0016e<RD*><IMM>", []Field{FIELD_RD_LOAD, FIELD_IMM}},
}

// templateTable holds the parsed template of every defined command.
var templateTable [CMD_COUNT]Template

// commandMap maps mnemonics to commands.
var commandMap = make(map[string]Command, CMD_COUNT)

func init() {
	for n := 1; n < CMD_COUNT; n++ {
		cmd := Command(n)
		info := commandInfoTable[cmd]
		tmpl := MustParseTemplate(info.Pattern)

		// Every operand slot must fill exactly one placeholder.
		placeholders := map[Field]bool{}
		for fd := range tmpl.Fields() {
			placeholders[fd] = true
		}
		if len(placeholders) != len(info.Operands) {
			panic(f("%v: template %v does not match operands %v", cmd, info.Pattern, info.Operands))
		}
		for _, fd := range info.Operands {
			if !placeholders[fd] {
				panic(f("%v: template %v has no <%v>", cmd, info.Pattern, fd))
			}
		}

		templateTable[cmd] = tmpl
		commandMap[cmd.String()] = cmd
	}
}

// LookupCommand returns the command for a mnemonic, or CMD_UNDEFINED.
// Mnemonics are lowercase and matched exactly.
func LookupCommand(mnemonic string) Command {
	return commandMap[mnemonic]
}

// Defined is false for CMD_UNDEFINED and out of range values.
func (cmd Command) Defined() bool {
	return cmd > CMD_UNDEFINED && cmd < CMD_COUNT
}

// Template returns the word template, or nil for an undefined command.
func (cmd Command) Template() Template {
	if !cmd.Defined() {
		return nil
	}
	return templateTable[cmd]
}

// Operands returns the operand slots in source order.
func (cmd Command) Operands() []Field {
	if !cmd.Defined() {
		return nil
	}
	return commandInfoTable[cmd].Operands
}

// OperandCount returns the number of operands, or -1 if the command is
// undefined and so accepts no operand count.
func (cmd Command) OperandCount() int {
	if !cmd.Defined() {
		return -1
	}
	return len(commandInfoTable[cmd].Operands)
}
