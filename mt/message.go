// Package mt is the top-level API package: the parser driver and serializer that tie
// the block tokenizer (wire), the field engine and catalog (fields), and the
// message catalog (messages) into the single typed Message that a caller
// deals with. Grounded on the teacher's Compiler/linker.Result split
// (compiler.go, linker/linker.go): Compiler there drives parse→link→options
// the same way ParseWithConfig here drives tokenize→consume→validate.
package mt

import (
	"github.com/google/uuid"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/fields"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/wire"
)

// Message is the fully-typed, validated form of a SWIFT MT message: headers
// plus a schema-resolved set of fields, still carrying enough bookkeeping
// (FieldOrder, FieldTags) to round-trip back to wire bytes byte for byte.
type Message struct {
	MessageType string
	Basic       wire.BasicHeader
	Application wire.ApplicationHeader
	UserHeader  *wire.TagBag
	Trailer     *wire.TagBag

	// FieldOrder lists every bound slot id in original occurrence order,
	// matching spec.md §6's "field_order: ordered list of slot identifiers
	// as they appeared."
	FieldOrder []string
	// Fields holds the typed value for each bound slot id (tag, or
	// tag+"#N" when the tag can appear more than once in this message type).
	Fields map[string]fields.Field
	// FieldTags records the resolved wire tag (option letter included, e.g.
	// "50K") each slot id was bound from; JSON decoding needs it to pick the
	// right concrete Go type back out of an ambiguous option family.
	FieldTags map[string]string
	// FieldIndex records the original block-4 occurrence index each slot id
	// was bound from, so Render can interleave bound fields and
	// Unrecognized occurrences back into their exact original order.
	FieldIndex map[string]int

	// Unrecognized carries every block-4 occurrence that matched no schema
	// slot (UnknownTag warnings), preserved for inspection and for
	// Render's round-trip guarantee.
	Unrecognized []UnboundOccurrence
}

// UnboundOccurrence is a block-4 occurrence the parser driver could not bind
// to any schema slot, tagged with its original position so Render can splice
// it back into exactly the right place in the wire output.
type UnboundOccurrence struct {
	Index     int
	Occurrence wire.Occurrence
}

// Field implements messages.FieldLookup for conditional-rule evaluation.
func (m *Message) Field(slotID string) (fields.Field, bool) {
	f, ok := m.Fields[slotID]
	return f, ok
}

func newMessage(mtype string, tok *wire.Message) *Message {
	return &Message{
		MessageType: mtype,
		Basic:       tok.Basic,
		Application: tok.Application,
		UserHeader:  tok.UserHeader,
		Trailer:     tok.Trailer,
		Fields:      map[string]fields.Field{},
		FieldTags:   map[string]string{},
		FieldIndex:  map[string]int{},
	}
}

// UniqueEndToEndReference reads the UETR (block 3 tag 121) as a parsed UUID.
// ok is false if block 3 is absent, the tag is absent, or the value is not a
// well-formed UUID (in which case the raw text is preserved untouched in
// UserHeader for round-trip; this accessor is purely a typed convenience).
func (m *Message) UniqueEndToEndReference() (id uuid.UUID, ok bool) {
	if m.UserHeader == nil {
		return uuid.UUID{}, false
	}
	raw, present := m.UserHeader.UniqueEndToEndReference()
	if !present {
		return uuid.UUID{}, false
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false
	}
	return parsed, true
}
