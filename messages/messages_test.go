package messages_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/fields"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/messages"
)

// stubLookup is a minimal messages.FieldLookup backed by a plain map, for
// exercising Conditional.Check without going through the mt package's
// driver.
type stubLookup map[string]fields.Field

func (s stubLookup) Field(slotID string) (fields.Field, bool) {
	f, ok := s[slotID]
	return f, ok
}

func TestLookupKnownMessageType(t *testing.T) {
	schema, ok := messages.Lookup("103")
	require.True(t, ok)
	require.Equal(t, "103", schema.MessageType)
	require.NotEmpty(t, schema.Slots)
}

func TestLookupUnknownMessageType(t *testing.T) {
	_, ok := messages.Lookup("999")
	require.False(t, ok)
}

func TestMT103SlotsIncludeMandatoryFields(t *testing.T) {
	schema, _ := messages.Lookup("103")
	tags := map[string]messages.Presence{}
	for _, sl := range schema.Slots {
		tags[sl.Tag] = sl.Presence
	}
	require.Equal(t, messages.Mandatory, tags["20"])
	require.Equal(t, messages.Mandatory, tags["32A"])
	require.Equal(t, messages.Mandatory, tags["59"])
	require.Equal(t, messages.Optional, tags["70"])
}

func TestMT103ConditionalC1RequiresRateWhenOrderedAmountPresent(t *testing.T) {
	schema, _ := messages.Lookup("103")
	var c1 messages.Conditional
	for _, c := range schema.Conditionals {
		if c.Code == "C1" {
			c1 = c
		}
	}
	require.Equal(t, "C1", c1.Code)

	violated, tags := c1.Check(stubLookup{
		"33B": &fields.Field33B{Currency: "USD", Amount: mustAmount("100,00")},
	})
	require.True(t, violated)
	require.Equal(t, []string{"33B", "36"}, tags)

	violated, _ = c1.Check(stubLookup{
		"33B": &fields.Field33B{Currency: "USD", Amount: mustAmount("100,00")},
		"36":  &fields.Field36{Rate: mustAmount("1,234567")},
	})
	require.False(t, violated)

	violated, _ = c1.Check(stubLookup{})
	require.False(t, violated)
}

func TestMT103ConditionalC2RequiresMatchingCurrency(t *testing.T) {
	schema, _ := messages.Lookup("103")
	var c2 messages.Conditional
	for _, c := range schema.Conditionals {
		if c.Code == "C2" {
			c2 = c
		}
	}
	require.Equal(t, "C2", c2.Code)

	violated, _ := c2.Check(stubLookup{
		"32A": &fields.Field32A{Currency: "USD", Amount: mustAmount("100,00")},
		"71F": &fields.Field71F{Currency: "EUR", Amount: mustAmount("5,00")},
	})
	require.True(t, violated)

	violated, _ = c2.Check(stubLookup{
		"32A": &fields.Field32A{Currency: "USD", Amount: mustAmount("100,00")},
		"71F": &fields.Field71F{Currency: "USD", Amount: mustAmount("5,00")},
	})
	require.False(t, violated)

	violated, _ = c2.Check(stubLookup{})
	require.False(t, violated)
}

func TestMT102SequenceBDeclaration(t *testing.T) {
	schema, ok := messages.Lookup("102")
	require.True(t, ok)
	seqB, ok := schema.SequenceByID("B")
	require.True(t, ok)
	require.Equal(t, "21", seqB.FirstTag)
	require.Equal(t, 1, seqB.Min)

	slotsInB := schema.SlotsInSequence("B")
	require.NotEmpty(t, slotsInB)
	for _, sl := range slotsInB {
		require.Equal(t, "B", sl.Sequence)
	}
}

func TestSlotsInSequenceEmptyIDReturnsTopLevelSlots(t *testing.T) {
	schema, _ := messages.Lookup("200")
	top := schema.SlotsInSequence("")
	require.Equal(t, schema.Slots, top)
}

func mustAmount(raw string) fields.Amount {
	a, err := fields.ParseAmount(raw)
	if err != nil {
		panic(err)
	}
	return a
}
