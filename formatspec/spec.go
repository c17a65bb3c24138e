// Package formatspec compiles and evaluates the SWIFT field format
// mini-grammar: strings like "6!n3!a15d", "4!a2!a2!c[3!c]", or "4*35x" that
// describe the layout of a single field's wire value. A compiled Spec is
// immutable and process-global once built; callers compile their specs once
// at package init (mirroring how the teacher's lexer builds its keyword
// table once, in parser/lexer.go's "keywords" map) and reuse the result for
// every Parse/Render call.
package formatspec

// Class is a SWIFT character class, the single letter that follows a count
// in a format component.
type Class byte

const (
	ClassAlpha    Class = 'a' // uppercase letters only
	ClassNumeric  Class = 'n' // digits only
	ClassAlphaNum Class = 'c' // digits + uppercase letters
	ClassSwiftX   Class = 'x' // SWIFT printable character set
	ClassDecimal  Class = 'd' // digits with exactly one comma decimal mark
	ClassHex      Class = 'h' // uppercase hex
)

func (c Class) valid() bool {
	switch c {
	case ClassAlpha, ClassNumeric, ClassAlphaNum, ClassSwiftX, ClassDecimal, ClassHex:
		return true
	default:
		return false
	}
}

// Kind discriminates the shape of a compiled Component.
type Kind int

const (
	KindFixed      Kind = iota // N!c — exact length
	KindVariable               // Nc — up to N chars
	KindDecimal                // Nd — up to N significant digits, one comma
	KindLiteral                // a single fixed character, e.g. '/'
	KindGroup                  // [ ... ] — optional subsequence
	KindRepetitive             // N*Mc — up to N lines of at most M chars, newline separated
)

// Component is one element of a compiled format Spec. Fixed/Variable/Decimal
// components are leaves; Group wraps an optional subsequence; Repetitive
// wraps the per-line sub-spec of a repeated group.
type Component struct {
	Kind    Kind
	Class   Class  // meaningful for KindFixed, KindVariable, KindDecimal
	Len     int    // exact length (Fixed), max length (Variable), max significant digits (Decimal)
	Literal byte   // meaningful for KindLiteral
	Name    string // semantic name assigned by the field catalog, e.g. "currency"

	Children []Component // meaningful for KindGroup, and the per-line spec for KindRepetitive
	MinLines int         // KindRepetitive: minimum repeats (1 unless the whole group is optional)
	MaxLines int         // KindRepetitive: maximum repeats
}

// Spec is a compiled format string: an immutable, ordered sequence of
// components. The zero value is not usable; build one with Compile or
// MustCompile.
type Spec struct {
	Raw        string
	Components []Component
}

// leafCount returns the number of named leaf components in a component
// sequence (Literal components do not consume a name).
func leafCount(cs []Component) int {
	n := 0
	for _, c := range cs {
		switch c.Kind {
		case KindFixed, KindVariable, KindDecimal:
			n++
		case KindGroup:
			n += leafCount(c.Children)
		case KindRepetitive:
			n += leafCount(c.Children)
		}
	}
	return n
}

// NumComponents reports how many named leaf components this spec declares,
// for validating that a field catalog entry supplied the right number of
// component names.
func (s *Spec) NumComponents() int {
	return leafCount(s.Components)
}
