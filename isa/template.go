package isa

import (
	"iter"
	"strings"
)

// Field is a placeholder in an instruction word template.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_RD      = Field(0) // RD
	FIELD_RX      = Field(1) // RX
	FIELD_RY      = Field(2) // RY
	FIELD_RD_LOAD = Field(3) // RD*
	FIELD_IMM     = Field(4) // IMM

	FIELD_COUNT = 5
)

// IsRegister is true for fields resolved from a register token.
func (fd Field) IsRegister() bool {
	return fd != FIELD_IMM
}

// fieldMap maps placeholder names to fields.
var fieldMap = func() map[string]Field {
	fields := make(map[string]Field, FIELD_COUNT)
	for n := range FIELD_COUNT {
		fd := Field(n)
		fields[fd.String()] = fd
	}
	return fields
}()

// Segment is one piece of a template: literal text followed by an
// optional placeholder.
type Segment struct {
	Literal     string
	Field       Field
	Placeholder bool
}

// Template is a pre-parsed instruction word pattern.
type Template []Segment

// ParseTemplate splits a pattern such as "0x001<RX>6<RD>00" into segments.
// Each placeholder may appear at most once.
func ParseTemplate(pattern string) (tmpl Template, err error) {
	seen := map[Field]bool{}

	for len(pattern) > 0 {
		open := strings.IndexByte(pattern, '<')
		if open < 0 {
			if strings.IndexByte(pattern, '>') >= 0 {
				err = ErrTemplateSyntax
				return
			}
			tmpl = append(tmpl, Segment{Literal: pattern})
			break
		}

		size := strings.IndexByte(pattern[open:], '>')
		if size < 0 {
			err = ErrTemplateSyntax
			return
		}

		literal := pattern[:open]
		name := pattern[open+1 : open+size]
		pattern = pattern[open+size+1:]

		if strings.ContainsAny(literal, "<>") {
			err = ErrTemplateSyntax
			return
		}

		fd, ok := fieldMap[name]
		if !ok || seen[fd] {
			err = ErrTemplateSyntax
			return
		}
		seen[fd] = true

		tmpl = append(tmpl, Segment{Literal: literal, Field: fd, Placeholder: true})
	}

	return
}

// MustParseTemplate is ParseTemplate for static patterns.
func MustParseTemplate(pattern string) Template {
	tmpl, err := ParseTemplate(pattern)
	if err != nil {
		panic(f("template %q: %v", pattern, err))
	}
	return tmpl
}

// Fields iterates over the placeholders in template order.
func (tmpl Template) Fields() iter.Seq[Field] {
	return func(yield func(fd Field) bool) {
		for _, seg := range tmpl {
			if !seg.Placeholder {
				continue
			}
			if !yield(seg.Field) {
				return
			}
		}
	}
}

// Render interleaves the literals with the resolved field values.
// Every placeholder must have a value.
func (tmpl Template) Render(values map[Field]string) (word string, err error) {
	var sb strings.Builder

	for _, seg := range tmpl {
		sb.WriteString(seg.Literal)
		if !seg.Placeholder {
			continue
		}
		value, ok := values[seg.Field]
		if !ok {
			err = ErrField(seg.Field)
			return
		}
		sb.WriteString(value)
	}

	word = sb.String()
	return
}

// String returns the original pattern.
func (tmpl Template) String() string {
	var sb strings.Builder

	for _, seg := range tmpl {
		sb.WriteString(seg.Literal)
		if seg.Placeholder {
			sb.WriteString("<" + seg.Field.String() + ">")
		}
	}

	return sb.String()
}
