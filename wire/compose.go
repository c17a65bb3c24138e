package wire

import "strings"

// Compose serializes a Message back to wire bytes. It is the exact inverse
// of Tokenize for any Message Tokenize could have produced: Tokenize(Compose(m))
// reproduces m's blocks and occurrences byte for byte.
func Compose(m *Message) string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString("1:")
	b.WriteString(m.Basic.render())
	b.WriteByte('}')

	b.WriteByte('{')
	b.WriteString("2:")
	b.WriteString(m.Application.render())
	b.WriteByte('}')

	if m.hasUserHeader && m.UserHeader != nil {
		b.WriteByte('{')
		b.WriteString("3:")
		b.WriteString(m.UserHeader.render())
		b.WriteByte('}')
	}

	b.WriteByte('{')
	b.WriteString("4:")
	b.WriteString(renderBlock4(m.Occurrences))
	b.WriteString("-}")

	if m.hasTrailer && m.Trailer != nil {
		b.WriteByte('{')
		b.WriteString("5:")
		b.WriteString(m.Trailer.render())
		b.WriteByte('}')
	}

	return b.String()
}

func renderBlock4(occurrences []Occurrence) string {
	var b strings.Builder
	for _, o := range occurrences {
		b.WriteByte('\n')
		b.WriteByte(':')
		b.WriteString(o.Tag)
		b.WriteByte(':')
		b.WriteString(o.Raw)
	}
	b.WriteByte('\n')
	return b.String()
}

// WithUserHeader attaches block 3 to m, marking it present.
func (m *Message) WithUserHeader(bag TagBag) {
	m.UserHeader = &bag
	m.hasUserHeader = true
}

// WithTrailer attaches block 5 to m, marking it present.
func (m *Message) WithTrailer(bag TagBag) {
	m.Trailer = &bag
	m.hasTrailer = true
}

// HasUserHeader reports whether block 3 is present.
func (m *Message) HasUserHeader() bool { return m.hasUserHeader }

// HasTrailer reports whether block 5 is present.
func (m *Message) HasTrailer() bool { return m.hasTrailer }
