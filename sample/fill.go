package sample

import (
	"strings"
	"time"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
)

// fillOptions controls how optional groups and repetitive ranges are decided
// during Fill; the scenario maps to these in generate.go.
type fillOptions struct {
	// includeOptional is the probability an optional group is populated
	// rather than left absent.
	includeOptional float64
	// preferMinRepetitive gives each repetitive component exactly its
	// MinLines lines instead of a random count up to its MaxLines.
	preferMinRepetitive bool
}

// Fill produces spec-conformant wire text for spec using g as the
// randomness source, honoring fixed as a literal override when non-nil.
// Grounded on formatspec's own Parse/Render pair (match.go/render.go): Fill
// walks the same Component tree in the same depth-first order those two
// functions do, so its output is guaranteed to round-trip back through
// formatspec.Parse.
func Fill(g *Generator, spec *formatspec.Spec, opts fillOptions, fixed *string) (string, error) {
	if fixed != nil {
		return *fixed, nil
	}
	values := fillSequence(g, spec.Components, opts)
	return formatspec.Render(spec, values)
}

func fillSequence(g *Generator, components []formatspec.Component, opts fillOptions) []formatspec.Value {
	var values []formatspec.Value
	for i := range components {
		c := &components[i]
		switch c.Kind {
		case formatspec.KindLiteral:
			// carries no Value; Render writes c.Literal directly.

		case formatspec.KindFixed:
			if raw, ok := fillDateLike(g, c); ok {
				values = append(values, formatspec.Value{Name: c.Name, Present: true, Raw: raw})
				continue
			}
			values = append(values, formatspec.Value{Name: c.Name, Present: true, Raw: fillClass(g, c.Class, c.Len)})

		case formatspec.KindVariable:
			n := 1 + g.Intn(c.Len)
			values = append(values, formatspec.Value{Name: c.Name, Present: true, Raw: fillClass(g, c.Class, n)})

		case formatspec.KindDecimal:
			values = append(values, formatspec.Value{Name: c.Name, Present: true, Raw: fillDecimal(g, c.Len)})

		case formatspec.KindGroup:
			if g.Bool(opts.includeOptional) {
				values = append(values, fillSequence(g, c.Children, opts)...)
			} else {
				values = append(values, absentSequence(c.Children)...)
			}

		case formatspec.KindRepetitive:
			lines := c.MinLines
			if !opts.preferMinRepetitive && c.MaxLines > c.MinLines {
				lines = c.MinLines + g.Intn(c.MaxLines-c.MinLines+1)
			}
			child := c.Children[0]
			out := make([]string, lines)
			for li := range out {
				out[li] = fillClass(g, child.Class, 1+g.Intn(child.Len))
			}
			values = append(values, formatspec.Value{Name: child.Name, Present: true, Lines: out})
		}
	}
	return values
}

func absentSequence(children []formatspec.Component) []formatspec.Value {
	var out []formatspec.Value
	for _, c := range children {
		switch c.Kind {
		case formatspec.KindFixed, formatspec.KindVariable, formatspec.KindDecimal:
			out = append(out, formatspec.Value{Name: c.Name, Present: false})
		case formatspec.KindGroup, formatspec.KindRepetitive:
			out = append(out, absentSequence(c.Children)...)
		}
	}
	return out
}

// fillDateLike recognizes the handful of numeric leaves the catalog names as
// calendar dates (32A/60F/62F/64/65's "date"/"valueDate", 61's "entryDate")
// and fills them with a calendar-valid literal instead of a blind digit draw.
// These components carry a cross-component constraint fillClass can't see —
// fields.ParseDate (and parseEntryDate) reject anything that isn't a real
// calendar date, so naively random digits would fail validation on almost
// every draw.
func fillDateLike(g *Generator, c *formatspec.Component) (string, bool) {
	if c.Class != formatspec.ClassNumeric {
		return "", false
	}
	switch {
	case c.Len == 6 && (c.Name == "date" || c.Name == "valueDate"):
		return fillCalendarDate(g), true
	case c.Len == 4 && c.Name == "entryDate":
		return fillMonthDay(g), true
	default:
		return "", false
	}
}

// fillCalendarDate produces a calendar-valid YYMMDD literal.
func fillCalendarDate(g *Generator) string {
	year := g.Intn(100)
	month := time.Month(1 + g.Intn(12))
	daysInMonth := time.Date(2000+year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := 1 + g.Intn(daysInMonth)
	return time.Date(2000+year, month, day, 0, 0, 0, 0, time.UTC).Format("060102")
}

// fillMonthDay produces a MMDD literal valid in any year (capping February
// at 28 so it doesn't depend on which year's leap-ness it is later combined
// with, per parseEntryDate borrowing the sibling valueDate's year).
func fillMonthDay(g *Generator) string {
	month := time.Month(1 + g.Intn(12))
	maxDay := time.Date(2001, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := 1 + g.Intn(maxDay)
	return time.Date(2001, month, day, 0, 0, 0, 0, time.UTC).Format("0102")
}

// fillClass produces n characters drawn from class's allowed alphabet.
func fillClass(g *Generator, class formatspec.Class, n int) string {
	if n <= 0 {
		return ""
	}
	switch class {
	case formatspec.ClassAlpha:
		return g.Alpha(n)
	case formatspec.ClassNumeric:
		return g.Digits(n)
	case formatspec.ClassAlphaNum:
		if g.Bool(0.5) {
			return g.Digits(n)
		}
		return g.Alpha(n)
	case formatspec.ClassHex:
		const hexAlphabet = "0123456789ABCDEF"
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(hexAlphabet[g.Intn(len(hexAlphabet))])
		}
		return b.String()
	case formatspec.ClassSwiftX:
		return g.Alpha(n)
	default:
		return g.Alpha(n)
	}
}

// fillDecimal produces a plausible amount literal of at most maxDigits
// significant digits with exactly one comma, e.g. "1234,56".
func fillDecimal(g *Generator, maxDigits int) string {
	fracDigits := 2
	if maxDigits < 3 {
		fracDigits = 0
	}
	intDigits := maxDigits - fracDigits
	if intDigits < 1 {
		intDigits = 1
	}
	whole := g.Digits(1 + g.Intn(intDigits))
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	if fracDigits == 0 {
		return whole + ","
	}
	return whole + "," + g.Digits(fracDigits)
}
