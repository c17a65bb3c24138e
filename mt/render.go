package mt

import (
	"sort"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/wire"
)

// Render serializes m back to wire bytes: the inverse of Parse. Every bound
// field is rendered through the field engine; every occurrence sweepUnconsumed
// left unrecognized is reproduced verbatim. Both are interleaved by their
// original block-4 position, so Render(Parse(bytes)) reproduces bytes
// exactly for any message that parsed without error, per spec.md §4.6's
// round-trip law.
func Render(m *Message) (string, error) {
	type slot struct {
		index int
		occ   wire.Occurrence
	}
	slots := make([]slot, 0, len(m.FieldOrder)+len(m.Unrecognized))

	for _, id := range m.FieldOrder {
		f := m.Fields[id]
		rendered, err := f.Render()
		if err != nil {
			return "", wrapRenderErr(f.Tag(), err)
		}
		slots = append(slots, slot{
			index: m.FieldIndex[id],
			occ:   wire.Occurrence{Tag: m.FieldTags[id], Raw: rendered},
		})
	}
	for _, u := range m.Unrecognized {
		slots = append(slots, slot{index: u.Index, occ: u.Occurrence})
	}

	sort.SliceStable(slots, func(i, j int) bool { return slots[i].index < slots[j].index })

	occurrences := make([]wire.Occurrence, len(slots))
	for i, s := range slots {
		occurrences[i] = s.occ
	}

	tok := &wire.Message{
		Basic:       m.Basic,
		Application: m.Application,
		Occurrences: occurrences,
	}
	if m.UserHeader != nil {
		tok.WithUserHeader(*m.UserHeader)
	}
	if m.Trailer != nil {
		tok.WithTrailer(*m.Trailer)
	}
	return wire.Compose(tok), nil
}

func wrapRenderErr(tag string, err error) error {
	if re, ok := err.(*reporter.Error); ok {
		return re
	}
	return reporter.New(reporter.RenderError, 0, err.Error(), "tag", tag).Wrap(err)
}
