package formatspec

import (
	"fmt"
	"strings"
)

// scanner walks a format-grammar string one byte at a time. Format strings
// are ASCII-only, so a byte cursor (rather than the teacher's rune-based
// runeReader in parser/lexer.go) is sufficient; the mark/restore shape is
// the same idea, scaled down.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) eof() bool { return s.pos >= len(s.data) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.data[s.pos]
}

func (s *scanner) advance() byte {
	b := s.data[s.pos]
	s.pos++
	return b
}

func (s *scanner) readDigits() (int, bool) {
	start := s.pos
	for !s.eof() && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	n := 0
	for _, b := range s.data[start:s.pos] {
		n = n*10 + int(b-'0')
	}
	return n, true
}

// Compile parses a format-grammar string into a Spec. A malformed spec is a
// programmer error, surfaced at init time rather than at parse time, so
// Compile returns a plain error rather than a *reporter.Error: callers that
// hit this have a bug in their field catalog, not a bad wire message.
func Compile(raw string) (*Spec, error) {
	sc := &scanner{data: []byte(raw)}
	components, err := compileSequence(sc, false)
	if err != nil {
		return nil, fmt.Errorf("formatspec: compile %q: %w", raw, err)
	}
	if !sc.eof() {
		return nil, fmt.Errorf("formatspec: compile %q: unexpected trailing %q at offset %d", raw, string(sc.data[sc.pos:]), sc.pos)
	}
	return &Spec{Raw: raw, Components: components}, nil
}

// MustCompile is Compile but panics on error; used at package init to build
// the process-global compiled specs in the field catalog.
func MustCompile(raw string) *Spec {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// compileSequence reads components until ']' (if inGroup) or EOF.
func compileSequence(sc *scanner, inGroup bool) ([]Component, error) {
	var out []Component
	for {
		if sc.eof() {
			if inGroup {
				return nil, fmt.Errorf("unclosed '[' at offset %d", sc.pos)
			}
			return out, nil
		}
		if sc.peek() == ']' {
			if !inGroup {
				return nil, fmt.Errorf("unexpected ']' at offset %d", sc.pos)
			}
			sc.advance()
			return out, nil
		}
		comp, err := compileOne(sc)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}
}

func compileOne(sc *scanner) (Component, error) {
	switch {
	case sc.peek() == '[':
		sc.advance()
		children, err := compileSequence(sc, true)
		if err != nil {
			return Component{}, err
		}
		return Component{Kind: KindGroup, Children: children}, nil
	case sc.peek() == '/':
		sc.advance()
		return Component{Kind: KindLiteral, Literal: '/'}, nil
	case isDigit(sc.peek()):
		return compileCounted(sc)
	default:
		return Component{}, fmt.Errorf("unexpected character %q at offset %d", string(sc.peek()), sc.pos)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// compileCounted handles every component that begins with a decimal count:
// fixed (N!c), variable (Nc), decimal (Nd), and repetitive (N*Mc).
func compileCounted(sc *scanner) (Component, error) {
	n, ok := sc.readDigits()
	if !ok {
		return Component{}, fmt.Errorf("expected digits at offset %d", sc.pos)
	}
	if sc.peek() == '*' {
		sc.advance()
		m, ok := sc.readDigits()
		if !ok {
			return Component{}, fmt.Errorf("expected digit count after '*' at offset %d", sc.pos)
		}
		if sc.eof() {
			return Component{}, fmt.Errorf("expected char class after repetition count at offset %d", sc.pos)
		}
		class := Class(sc.advance())
		if !class.valid() {
			return Component{}, fmt.Errorf("unknown char class %q at offset %d", string(class), sc.pos-1)
		}
		return Component{
			Kind:     KindRepetitive,
			MinLines: 1,
			MaxLines: n,
			Children: []Component{{Kind: KindVariable, Class: class, Len: m}},
		}, nil
	}

	bang := false
	if sc.peek() == '!' {
		bang = true
		sc.advance()
	}
	if sc.eof() {
		return Component{}, fmt.Errorf("expected char class at offset %d", sc.pos)
	}
	class := Class(sc.advance())
	if !class.valid() {
		return Component{}, fmt.Errorf("unknown char class %q at offset %d", string(class), sc.pos-1)
	}
	switch {
	case class == ClassDecimal:
		return Component{Kind: KindDecimal, Class: class, Len: n}, nil
	case bang:
		return Component{Kind: KindFixed, Class: class, Len: n}, nil
	default:
		return Component{Kind: KindVariable, Class: class, Len: n}, nil
	}
}

// WithNames assigns semantic component names to a compiled spec's leaves, in
// depth-first order, returning a new Spec (the input is never mutated, since
// compiled specs are shared, immutable, process-global values per spec.md
// §3). It panics if the name count does not match NumComponents — this is a
// field-catalog authoring error, caught at init.
func (s *Spec) WithNames(names ...string) *Spec {
	if n := s.NumComponents(); n != len(names) {
		panic(fmt.Sprintf("formatspec: %q has %d components, got %d names (%s)", s.Raw, n, len(names), strings.Join(names, ",")))
	}
	idx := 0
	out := assignNames(s.Components, names, &idx)
	return &Spec{Raw: s.Raw, Components: out}
}

func assignNames(cs []Component, names []string, idx *int) []Component {
	out := make([]Component, len(cs))
	for i, c := range cs {
		switch c.Kind {
		case KindFixed, KindVariable, KindDecimal:
			c.Name = names[*idx]
			*idx++
		case KindGroup, KindRepetitive:
			c.Children = assignNames(c.Children, names, idx)
		}
		out[i] = c
	}
	return out
}
