// Package writer accumulates generated Unison source text. Each output file
// is owned by exactly one Writer for the duration of a run; text is buffered
// in memory and flushed atomically, so a file is either fully written or not
// written at all.
package writer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/unison-codegen/smithygen/symbol"
)

const defaultIndent = "  "

// Writer builds the text of a single output file. It tracks indentation as
// explicit open scopes; every Indent must be balanced by a Dedent before the
// file can be finished.
type Writer struct {
	filename   string
	buf        bytes.Buffer
	indent     int
	indentText string
	unbalanced bool
}

// New returns a writer for the named output file.
func New(filename string) *Writer {
	return &Writer{filename: filename, indentText: defaultIndent}
}

// Filename returns the output file this writer owns.
func (w *Writer) Filename() string { return w.filename }

// Indent opens a scope.
func (w *Writer) Indent() *Writer {
	w.indent++
	return w
}

// Dedent closes a scope. Closing more scopes than were opened marks the
// writer defective; Finish reports it as a StructuralInvariantError.
func (w *Writer) Dedent() *Writer {
	w.indent--
	if w.indent < 0 {
		w.unbalanced = true
	}
	return w
}

// Write emits one line at the current indent level. The format string
// supports three placeholders, in the manner of the upstream symbol writers:
//
//	$L  literal value
//	$N  function-name case (first character lowered)
//	$T  type-name case (declared casing preserved)
//
// "$$" emits a literal dollar sign. Arguments are consumed left to right.
func (w *Writer) Write(format string, args ...any) *Writer {
	for i := 0; i < w.indent; i++ {
		w.buf.WriteString(w.indentText)
	}
	w.buf.WriteString(w.expand(format, args))
	w.buf.WriteByte('\n')
	return w
}

// WriteInline emits text without a trailing newline or indentation.
func (w *Writer) WriteInline(format string, args ...any) *Writer {
	w.buf.WriteString(w.expand(format, args))
	return w
}

func (w *Writer) expand(format string, args []any) string {
	var out strings.Builder
	next := 0
	arg := func() string {
		if next >= len(args) {
			return "%!(MISSING)"
		}
		v := args[next]
		next++
		return fmt.Sprintf("%v", v)
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '$' || i+1 >= len(format) {
			out.WriteByte(c)
			continue
		}
		i++
		switch format[i] {
		case 'L':
			out.WriteString(arg())
		case 'N':
			out.WriteString(symbol.ToFunctionName(arg()))
		case 'T':
			out.WriteString(symbol.ToTypeName(arg()))
		case '$':
			out.WriteByte('$')
		default:
			out.WriteByte('$')
			out.WriteByte(format[i])
		}
	}
	return out.String()
}

// WriteBlankLine emits a truly blank line, without indentation.
func (w *Writer) WriteBlankLine() *Writer {
	w.buf.WriteByte('\n')
	return w
}

// WriteComment emits a Unison single-line comment.
func (w *Writer) WriteComment(comment string) *Writer {
	return w.Write("-- $L", comment)
}

// WriteDocComment emits a Unison docstring. Single-line docs stay compact;
// multi-line docs open and close the double-brace block on their own lines.
func (w *Writer) WriteDocComment(doc string) *Writer {
	if doc == "" {
		return w.Write("{{}}")
	}
	lines := strings.Split(doc, "\n")
	if len(lines) == 1 {
		return w.Write("{{ $L }}", strings.TrimSpace(doc))
	}
	w.Write("{{")
	for _, line := range lines {
		w.Write("$L", line)
	}
	w.Write("}}")
	return w
}

// WriteSignature emits a type signature line: "name : signature".
func (w *Writer) WriteSignature(name, signature string) *Writer {
	return w.Write("$L : $L", name, signature)
}

// TypeField is one field of a record type.
type TypeField struct {
	Name string
	Type string
}

// WriteRecordType emits a Unison record type. Record type definitions use
// commas between fields; an empty field list degrades to a bare constructor
// because Unison has no empty-record syntax.
func (w *Writer) WriteRecordType(typeName string, fields []TypeField) *Writer {
	if len(fields) == 0 {
		w.Write("type $L = $L", typeName, typeName)
		w.WriteBlankLine()
		return w
	}
	w.Write("type $L = {", typeName)
	w.Indent()
	for i, f := range fields {
		comma := ","
		if i == len(fields)-1 {
			comma = ""
		}
		w.Write("$L : $L$L", f.Name, f.Type, comma)
	}
	w.Dedent()
	w.Write("}")
	w.WriteBlankLine()
	return w
}

// Variant is one alternative of a union type.
type Variant struct {
	Name    string
	Payload string
}

// WriteUnionType emits a Unison sum type.
func (w *Writer) WriteUnionType(typeName, typeParams string, variants []Variant) *Writer {
	if typeParams != "" {
		w.Write("type $L $L", typeName, typeParams)
	} else {
		w.Write("type $L", typeName)
	}
	w.Indent()
	for i, v := range variants {
		prefix := "| "
		if i == 0 {
			prefix = "= "
		}
		if v.Payload != "" {
			w.Write("$L$L $L", prefix, v.Name, v.Payload)
		} else {
			w.Write("$L$L", prefix, v.Name)
		}
	}
	w.Dedent()
	w.WriteBlankLine()
	return w
}

// String returns the accumulated text. It does not check scope balance; use
// Finish when flushing.
func (w *Writer) String() string { return w.buf.String() }

// Finish verifies scope balance and returns the file content with a single
// trailing newline. An unbalanced scope is a generator defect, never a model
// problem, and surfaces as a StructuralInvariantError.
func (w *Writer) Finish() (string, error) {
	if w.unbalanced || w.indent != 0 {
		return "", &StructuralInvariantError{File: w.filename, Depth: w.indent}
	}
	return strings.TrimRight(w.buf.String(), "\n") + "\n", nil
}
