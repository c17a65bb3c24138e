// Package reporter defines the error taxonomy shared by every stage of the
// parse/render pipeline: the format-spec engine, the block tokenizer, the
// field engine, and the parser driver all report through this package so
// that callers get one consistent shape regardless of which layer failed.
package reporter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the taxonomy of errors this package can carry. It is a
// closed set: every failure mode named in spec.md maps to exactly one Kind.
type Kind int

const (
	// InvalidBlockStructure means the top-level {1:...}{2:...}...{4:...}
	// envelope itself is malformed. Fatal for the whole message.
	InvalidBlockStructure Kind = iota
	// InvalidFieldFormat means a field's raw value did not conform to its
	// compiled format spec.
	InvalidFieldFormat
	// MissingRequiredField means a Mandatory slot had no matching occurrence.
	MissingRequiredField
	// UnknownTag means an occurrence's tag is not declared by the message
	// schema. Warning by default, promotable to an error.
	UnknownTag
	// Conditional means a cross-field rule (C1, C2, ...) failed.
	Conditional
	// DuplicateOccurrence means a non-repetitive tag appeared more than once.
	DuplicateOccurrence
	// RenderError means a typed value failed its constraints while being
	// rendered back to wire text.
	RenderError
)

func (k Kind) String() string {
	switch k {
	case InvalidBlockStructure:
		return "invalid_block_structure"
	case InvalidFieldFormat:
		return "invalid_field_format"
	case MissingRequiredField:
		return "missing_required_field"
	case UnknownTag:
		return "unknown_tag"
	case Conditional:
		return "conditional"
	case DuplicateOccurrence:
		return "duplicate_occurrence"
	case RenderError:
		return "render_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Severity distinguishes warnings (recorded but non-fatal to the parse) from
// errors (which either abort the parse in fail-fast mode or render the slot
// absent/invalid in collect mode).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Position packs a 1-based line number and a 1-based column into a single
// integer, per spec.md §7 ("encoded positions combine line number and
// intra-line position into a single integer when space-efficient
// representation is required; decoding is part of the public contract").
type Position int64

const colBits = 32

// NewPosition encodes a line/column pair. Both are 1-based; zero means
// "unknown."
func NewPosition(line, col int) Position {
	return Position(int64(line)<<colBits | int64(uint32(col)))
}

func (p Position) Line() int { return int(int64(p) >> colBits) }
func (p Position) Col() int  { return int(int32(uint32(int64(p) & 0xffffffff))) }

func (p Position) String() string {
	if p == 0 {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line(), p.Col())
}

// Error is the single error value produced by every layer of the pipeline.
// It carries a Kind discriminator plus a bag of key/value context, matching
// the "plain aggregated values carrying a kind discriminator and a bag of
// key-value context" design called for in spec.md §9.
type Error struct {
	Kind     Kind
	Severity Severity
	Pos      Position
	// Message is the human-readable narrative.
	Message string
	// Context carries the structured fields: tag, component, expected,
	// actual, message_type, rule code, etc. Keys are stable strings so
	// callers can depend on them programmatically.
	Context map[string]string
	// Line, when non-empty, is the original source line the error refers
	// to; used by Contextual to draw a cursor under the offending text.
	Line string
	// cause is the underlying error, if any, exposed via Unwrap.
	cause error
}

// New builds an Error. ctx is a flattened key/value list (k1, v1, k2, v2, ...).
func New(kind Kind, pos Position, msg string, ctx ...string) *Error {
	e := &Error{Kind: kind, Pos: pos, Message: msg, Context: map[string]string{}}
	for i := 0; i+1 < len(ctx); i += 2 {
		e.Context[ctx[i]] = ctx[i+1]
	}
	return e
}

// Warningf builds a warning-severity Error.
func Warningf(kind Kind, pos Position, format string, args ...any) *Error {
	e := New(kind, pos, fmt.Sprintf(format, args...))
	e.Severity = SeverityWarning
	return e
}

// Wrap attaches an underlying cause, exposed via errors.Unwrap.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) Error() string {
	return e.Brief()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Brief renders the single-line log form: "<pos> <kind>: <message> (k=v, ...)".
func (e *Error) Brief() string {
	var b strings.Builder
	if e.Pos != 0 {
		b.WriteString(e.Pos.String())
		b.WriteByte(' ')
	}
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Context) > 0 {
		b.WriteString(" (")
		first := true
		for _, k := range sortedKeys(e.Context) {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(strconv.Quote(e.Context[k]))
		}
		b.WriteString(")")
	}
	return b.String()
}

// Structured returns the kind code plus the key/value context, for
// programmatic handling (e.g. JSON serialization of an error list).
func (e *Error) Structured() (kind string, context map[string]string) {
	out := make(map[string]string, len(e.Context)+1)
	for k, v := range e.Context {
		out[k] = v
	}
	return e.Kind.String(), out
}

// Contextual renders the offending source line with a caret under the
// column the error occurred at, for interactive debugging. Mirrors the
// "contextual form that shows the offending line ... with a cursor" form
// required by spec.md §7.
func (e *Error) Contextual() string {
	if e.Line == "" {
		return e.Brief()
	}
	col := e.Pos.Col()
	if col < 1 {
		col = 1
	}
	if col > len(e.Line)+1 {
		col = len(e.Line) + 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return fmt.Sprintf("%s\n%s\n%s", e.Brief(), e.Line, caret)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// List aggregates multiple Errors, collected during non-fail-fast parsing.
// It implements error so a List can be returned anywhere a single error is
// expected, matching spec.md's MultipleErrors kind.
type List []*Error

func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Brief()
	}
	return strings.Join(lines, "; ")
}

// Errors returns only the SeverityError entries.
func (l List) Errors() List {
	out := make(List, 0, len(l))
	for _, e := range l {
		if e.Severity != SeverityWarning {
			out = append(out, e)
		}
	}
	return out
}

// Warnings returns only the SeverityWarning entries.
func (l List) Warnings() List {
	out := make(List, 0, len(l))
	for _, e := range l {
		if e.Severity == SeverityWarning {
			out = append(out, e)
		}
	}
	return out
}

// HasErrors reports whether the list contains anything above warning
// severity.
func (l List) HasErrors() bool {
	for _, e := range l {
		if e.Severity != SeverityWarning {
			return true
		}
	}
	return false
}

// ErrInvalidSource is the sentinel Parse returns for a failed parse that
// carries no reported error. When errors were reported, Parse returns the
// first of them (a *Error, which does not wrap this sentinel) instead.
var ErrInvalidSource = errors.New("swiftmt: invalid source message")
