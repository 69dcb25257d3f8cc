package assembler

// Format selects how a record is written.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_ANNOTATED = Format(0) // annotated
	FORMAT_PLAIN     = Format(1) // plain

	FORMAT_COUNT = 2
)

const (
	annotatedSeparator = " ; "
	recordTerminator   = "\r\n"
)

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (format Format, err error) {
	for n := range FORMAT_COUNT {
		format = Format(n)
		if format.String() == name {
			return
		}
	}

	format = FORMAT_ANNOTATED
	err = ErrFormatInvalid
	return
}

// Separator is written between the encoded word and the source line.
func (format Format) Separator() string {
	if format == FORMAT_ANNOTATED {
		return annotatedSeparator
	}
	return ""
}
