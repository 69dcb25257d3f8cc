package assembler

import (
	"bytes"
	"io"
	"iter"
)

// Record is one encoded source line.
type Record struct {
	LineNo int    // Line number of the source line.
	Line   string // Source line, verbatim.
	Word   string // Encoded instruction word.
}

// Listing is the result of a single assembly pass.
type Listing struct {
	Records     []Record // Encoded lines, in source order.
	Diagnostics []error  // Rejected lines, each an *ErrSyntax.
}

// Words iterates over the encoded words.
func (listing *Listing) Words() iter.Seq[string] {
	return func(yield func(word string) bool) {
		for _, rec := range listing.Records {
			if !yield(rec.Word) {
				return
			}
		}
	}
}

// AppendRecord appends the text of a record to buf.
func AppendRecord(buf []byte, rec Record, format Format) []byte {
	buf = append(buf, rec.Word...)
	buf = append(buf, format.Separator()...)
	buf = append(buf, rec.Line...)
	buf = append(buf, recordTerminator...)
	return buf
}

// Marshal returns the listing as a single output buffer.
func (listing *Listing) Marshal(format Format) []byte {
	var buf []byte
	for _, rec := range listing.Records {
		buf = AppendRecord(buf, rec, format)
	}
	return buf
}

// WriteTo writes the annotated listing to w.
func (listing *Listing) WriteTo(w io.Writer) (n int64, err error) {
	return bytes.NewReader(listing.Marshal(FORMAT_ANNOTATED)).WriteTo(w)
}
