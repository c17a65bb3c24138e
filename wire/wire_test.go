package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/wire"
)

const sampleMT103 = "{1:F01BANKBEBBAXXX0000000000}" +
	"{2:I103BANKDEFFXXXXN}" +
	"{3:{108:MT103}{121:a1b2c3d4-e5f6-7890-abcd-ef1234567890}}" +
	"{4:\n" +
	":20:REF123456789\n" +
	":23B:CRED\n" +
	":32A:2403151USD1000,00\n" +
	":50K:/12345678\n" +
	"JOHN DOE\n" +
	":59:/87654321\n" +
	"JANE SMITH\n" +
	":71A:SHA\n" +
	"-}" +
	"{5:{MAC:00000000}{CHK:123456789ABC}}"

func TestTokenizeBasicHeader(t *testing.T) {
	msg, err := wire.Tokenize(sampleMT103)
	require.Nil(t, err)
	require.Equal(t, "F", msg.Basic.ApplicationID)
	require.Equal(t, "01", msg.Basic.ServiceID)
	require.Equal(t, "BANKBEBBAXXX", msg.Basic.LogicalTerminal)
	require.Equal(t, "0000", msg.Basic.SessionNumber)
	require.Equal(t, "000000", msg.Basic.SequenceNumber)
}

func TestTokenizeApplicationHeaderInput(t *testing.T) {
	msg, err := wire.Tokenize(sampleMT103)
	require.Nil(t, err)
	require.Equal(t, byte('I'), msg.Application.Direction)
	require.Equal(t, "103", msg.Application.MessageType)
	require.Equal(t, "BANKDEFFXXXX", msg.Application.ReceiverAddress)
	require.Equal(t, "N", msg.Application.Priority)
}

func TestTokenizeUserHeaderAndTrailer(t *testing.T) {
	msg, err := wire.Tokenize(sampleMT103)
	require.Nil(t, err)
	require.True(t, msg.HasUserHeader())
	mt, ok := msg.UserHeader.Get("108")
	require.True(t, ok)
	require.Equal(t, "MT103", mt)
	uetr, ok := msg.UserHeader.UniqueEndToEndReference()
	require.True(t, ok)
	require.Equal(t, "a1b2c3d4-e5f6-7890-abcd-ef1234567890", uetr)

	require.True(t, msg.HasTrailer())
	chk, ok := msg.Trailer.Get("CHK")
	require.True(t, ok)
	require.Equal(t, "123456789ABC", chk)
}

func TestTokenizeOccurrencesWithContinuation(t *testing.T) {
	msg, err := wire.Tokenize(sampleMT103)
	require.Nil(t, err)
	require.Len(t, msg.Occurrences, 6)
	require.Equal(t, "20", msg.Occurrences[0].Tag)
	require.Equal(t, "REF123456789", msg.Occurrences[0].Raw)

	field50 := msg.Occurrences[3]
	require.Equal(t, "50K", field50.Tag)
	require.Equal(t, "/12345678\nJOHN DOE", field50.Raw)
}

func TestTokenizeOccurrenceLineNumbers(t *testing.T) {
	msg, err := wire.Tokenize(sampleMT103)
	require.Nil(t, err)
	require.Equal(t, 2, msg.Occurrences[0].Line)
	require.Equal(t, 3, msg.Occurrences[1].Line)
}

func TestRoundTrip(t *testing.T) {
	msg, err := wire.Tokenize(sampleMT103)
	require.Nil(t, err)
	composed := wire.Compose(msg)
	require.Equal(t, sampleMT103, composed)
}

func TestTokenizeMissingBlock1(t *testing.T) {
	_, err := wire.Tokenize("{2:I103BANKDEFFXXXXN}{4:\n:20:X\n-}")
	require.NotNil(t, err)
	require.Equal(t, "invalid_block_structure", err.Kind.String())
}

func TestTokenizeUnterminatedBlock4(t *testing.T) {
	_, err := wire.Tokenize("{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXXN}{4:\n:20:X\n")
	require.NotNil(t, err)
}

const sampleMT910Output = "{1:F01BANKBEBBAXXX0000000000}" +
	"{2:O1031200070315BANKDEFFXXXX00000000010703151205N}" +
	"{4:\n:20:REF1\n-}"

func TestTokenizeApplicationHeaderOutput(t *testing.T) {
	msg, err := wire.Tokenize(sampleMT910Output)
	require.Nil(t, err)
	require.Equal(t, byte('O'), msg.Application.Direction)
	require.Equal(t, "103", msg.Application.MessageType)
	require.Equal(t, "1200", msg.Application.InputTime)
	require.Equal(t, "N", msg.Application.Priority)
}
