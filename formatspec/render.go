package formatspec

import (
	"fmt"
	"strings"
)

// Render is the inverse of Parse: given the ordered component tuple that
// Parse would have produced, it reproduces the spec-conformant wire text.
// Render(Parse(s, raw)) == raw for any raw that parses without error — the
// round-trip law from spec.md §4.1/§8.
func Render(s *Spec, values []Value) (string, error) {
	var b strings.Builder
	idx := 0
	if err := renderSequence(s.Components, values, &idx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderSequence(components []Component, values []Value, idx *int, b *strings.Builder) error {
	for i := range components {
		c := &components[i]
		switch c.Kind {
		case KindLiteral:
			b.WriteByte(c.Literal)

		case KindFixed:
			v := nextValue(values, idx)
			if !v.Present {
				return &RenderError{ComponentName: c.Name, Reason: "missing mandatory value"}
			}
			if len(v.Raw) != c.Len || !c.Class.AcceptsString(v.Raw) {
				return &RenderError{ComponentName: c.Name, Reason: fmt.Sprintf("value %q does not satisfy %d!%c", v.Raw, c.Len, c.Class)}
			}
			b.WriteString(v.Raw)

		case KindVariable:
			v := nextValue(values, idx)
			if !v.Present {
				return &RenderError{ComponentName: c.Name, Reason: "missing mandatory value"}
			}
			if len(v.Raw) > c.Len || !c.Class.AcceptsString(v.Raw) {
				return &RenderError{ComponentName: c.Name, Reason: fmt.Sprintf("value %q does not satisfy %d%c", v.Raw, c.Len, c.Class)}
			}
			b.WriteString(v.Raw)

		case KindDecimal:
			v := nextValue(values, idx)
			if !v.Present {
				return &RenderError{ComponentName: c.Name, Reason: "missing mandatory value"}
			}
			if err := validateDecimal(v.Raw, c.Len); err != nil {
				return &RenderError{ComponentName: c.Name, Reason: err.Error()}
			}
			b.WriteString(v.Raw)

		case KindGroup:
			present := groupPresent(c.Children, values, *idx)
			if !present {
				skipValues(c.Children, idx)
				continue
			}
			if err := renderSequence(c.Children, values, idx, b); err != nil {
				return err
			}

		case KindRepetitive:
			v := nextValue(values, idx)
			if !v.Present {
				return &RenderError{ComponentName: c.Children[0].Name, Reason: "missing mandatory repetitive value"}
			}
			child := c.Children[0]
			if len(v.Lines) < c.MinLines || len(v.Lines) > c.MaxLines {
				return &RenderError{ComponentName: child.Name, Reason: fmt.Sprintf("%d lines outside [%d,%d]", len(v.Lines), c.MinLines, c.MaxLines)}
			}
			for li, line := range v.Lines {
				if len(line) > child.Len || !child.Class.AcceptsString(line) {
					return &RenderError{ComponentName: child.Name, Reason: fmt.Sprintf("line %d %q does not satisfy %d%c", li, line, child.Len, child.Class)}
				}
				if li > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(line)
			}
		}
	}
	return nil
}

// nextValue consumes leaves in the same depth-first order assignNames uses,
// skipping nothing (Literal components never appear in the values slice).
func nextValue(values []Value, idx *int) Value {
	if *idx >= len(values) {
		*idx++
		return Value{}
	}
	v := values[*idx]
	*idx++
	return v
}

func skipValues(children []Component, idx *int) {
	for _, c := range children {
		switch c.Kind {
		case KindFixed, KindVariable, KindDecimal, KindRepetitive:
			*idx++
		case KindGroup:
			skipValues(c.Children, idx)
		}
	}
}

// groupPresent looks at the leaf values a group would consume, without
// advancing idx, to decide whether the group should be rendered at all: a
// group is present if any of its leaves carries a present value.
func groupPresent(children []Component, values []Value, idx int) bool {
	for _, c := range children {
		switch c.Kind {
		case KindFixed, KindVariable, KindDecimal, KindRepetitive:
			if idx < len(values) && values[idx].Present {
				return true
			}
			idx++
		case KindGroup:
			if groupPresent(c.Children, values, idx) {
				return true
			}
			skipValues(c.Children, &idx)
		}
	}
	return false
}

// RenderError is returned by Render when a typed value does not satisfy its
// declared component constraints, per spec.md's RenderError error kind.
type RenderError struct {
	ComponentName string
	Reason        string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %s", e.ComponentName, e.Reason)
}
