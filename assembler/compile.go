package assembler

//go:generate go tool mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_artifact_test.go github.com/ezrec/asm2ms/assembler Source,Sink

// Source reads the whole text of an input artifact.
type Source interface {
	ReadText(path string) (text string, err error)
}

// Sink writes the whole contents of an output artifact.
type Sink interface {
	WriteBytes(path string, data []byte) (err error)
}

// Compile assembles the input artifact and writes the records to the
// output artifact. Read and write failures are fatal and returned as
// *ErrIo; nothing is written if the input cannot be read. Per-line
// failures are left in the listing's Diagnostics.
func (asm *Assembler) Compile(src Source, input string, dst Sink, output string) (listing *Listing, err error) {
	text, err := src.ReadText(input)
	if err != nil {
		err = &ErrIo{Op: "read", Path: input, Err: err}
		return
	}

	listing = asm.Assemble(text)

	err = dst.WriteBytes(output, listing.Marshal(asm.Format))
	if err != nil {
		err = &ErrIo{Op: "write", Path: output, Err: err}
		return
	}

	return
}
