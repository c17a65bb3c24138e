package mt

import (
	"encoding/json"
	"fmt"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/fields"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/wire"
)

// jsonMessage mirrors spec.md §6's typed-to-JSON surface: basic_header,
// application_header, optional user_header/trailer, message_type,
// field_order, and fields keyed by slot id. field_tags is an enrichment
// beyond the literal spec shape, carrying each slot's resolved option letter
// so UnmarshalJSON can pick the right concrete Go type back out of an
// ambiguous option family without guessing.
type jsonMessage struct {
	BasicHeader       wire.BasicHeader       `json:"basic_header"`
	ApplicationHeader wire.ApplicationHeader `json:"application_header"`
	UserHeader        map[string]string      `json:"user_header,omitempty"`
	Trailer           map[string]string       `json:"trailer,omitempty"`
	MessageType       string                  `json:"message_type"`
	FieldOrder        []string                `json:"field_order"`
	Fields            map[string]json.RawMessage `json:"fields"`
	FieldTags         map[string]string       `json:"field_tags"`
}

// MarshalJSON renders m as the typed-message document described by spec.md
// §6. Round-tripping through JSON keeps the headers' sub-tag values, the
// message type, FieldOrder, FieldTags and every typed field. It does not
// keep the order of block 3/5 sub-tags, FieldIndex or Unrecognized
// occurrences, so rendering a decoded message can differ from the original
// bytes in those respects.
func (m *Message) MarshalJSON() ([]byte, error) {
	jm := jsonMessage{
		BasicHeader:       m.Basic,
		ApplicationHeader: m.Application,
		MessageType:       m.MessageType,
		FieldOrder:        m.FieldOrder,
		Fields:            make(map[string]json.RawMessage, len(m.Fields)),
		FieldTags:         m.FieldTags,
	}
	if m.UserHeader != nil {
		jm.UserHeader = m.UserHeader.Values
	}
	if m.Trailer != nil {
		jm.Trailer = m.Trailer.Values
	}
	for id, f := range m.Fields {
		raw, err := json.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("mt: marshal field %s: %w", id, err)
		}
		jm.Fields[id] = raw
	}
	return json.Marshal(jm)
}

// UnmarshalJSON reverses MarshalJSON, reconstructing each field's concrete Go
// type from field_tags via the catalog's JSON decode registry.
func (m *Message) UnmarshalJSON(data []byte) error {
	var jm jsonMessage
	if err := json.Unmarshal(data, &jm); err != nil {
		return err
	}
	m.Basic = jm.BasicHeader
	m.Application = jm.ApplicationHeader
	m.MessageType = jm.MessageType
	m.FieldOrder = jm.FieldOrder
	m.FieldTags = jm.FieldTags
	m.Fields = make(map[string]fields.Field, len(jm.Fields))

	if jm.UserHeader != nil {
		bag := bagFromValues(jm.UserHeader)
		m.UserHeader = &bag
	}
	if jm.Trailer != nil {
		bag := bagFromValues(jm.Trailer)
		m.Trailer = &bag
	}

	for id, raw := range jm.Fields {
		tag := jm.FieldTags[id]
		f, known, err := fields.DecodeJSON(tag, raw)
		if err != nil {
			return fmt.Errorf("mt: decode field %s (%s): %w", id, tag, err)
		}
		if !known {
			return fmt.Errorf("mt: decode field %s: unrecognized resolved tag %q", id, tag)
		}
		m.Fields[id] = f
	}
	return nil
}

// bagFromValues rebuilds a wire.TagBag from a decoded map. Block 3/5
// sub-tag order is not part of the typed JSON surface, so Order follows Go's
// map iteration order, which is not the original order; Compose then writes
// the sub-tags in that order.
func bagFromValues(values map[string]string) wire.TagBag {
	bag := wire.TagBag{Values: map[string]string{}}
	for tag, value := range values {
		bag.Order = append(bag.Order, tag)
		bag.Values[tag] = value
	}
	return bag
}
