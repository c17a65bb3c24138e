package mt_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/mt"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

const sampleMT103 = "{1:F01BANKBEBBAXXX0000000000}" +
	"{2:I103BANKDEFFXXXXN}" +
	"{3:{108:MT103}{121:a1b2c3d4-e5f6-7890-abcd-ef1234567890}}" +
	"{4:\n" +
	":20:REF123456789\n" +
	":23B:CRED\n" +
	":32A:240315USD1000,00\n" +
	":50K:/12345678\n" +
	"JOHN DOE\n" +
	":59:/87654321\n" +
	"JANE SMITH\n" +
	":71A:SHA\n" +
	"-}" +
	"{5:{MAC:00000000}{CHK:123456789ABC}}"

func TestParseMT103Success(t *testing.T) {
	msg, err := mt.Parse(sampleMT103)
	require.NoError(t, err)
	require.Equal(t, "103", msg.MessageType)
	require.Equal(t, []string{"20", "23B", "32A", "50", "59", "71A"}, msg.FieldOrder)
	require.Equal(t, "50K", msg.FieldTags["50"])
	require.Equal(t, "59", msg.FieldTags["59"])
	require.Empty(t, msg.Unrecognized)

	f, ok := msg.Field("32A")
	require.True(t, ok)
	require.Equal(t, "32A", f.Tag())
}

func TestParseMT103UniqueEndToEndReference(t *testing.T) {
	msg, err := mt.Parse(sampleMT103)
	require.NoError(t, err)
	id, ok := msg.UniqueEndToEndReference()
	require.True(t, ok)
	require.Equal(t, uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef1234567890"), id)
}

func TestRenderRoundTripsExactBytes(t *testing.T) {
	msg, err := mt.Parse(sampleMT103)
	require.NoError(t, err)
	out, rerr := mt.Render(msg)
	require.NoError(t, rerr)
	require.Equal(t, sampleMT103, out)
}

func TestParseMissingMandatoryFieldFails(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX0000000000}" +
		"{2:I103BANKDEFFXXXXN}" +
		"{4:\n:20:REF1\n-}"
	res := mt.ParseWithConfig(raw, mt.DefaultConfig)
	require.Equal(t, mt.StatusFailure, res.Status)
	require.NotEmpty(t, res.Errors)
}

func TestParseWithConfigCollectsUnknownTagAsWarning(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX0000000000}" +
		"{2:I103BANKDEFFXXXXN}" +
		"{4:\n" +
		":20:REF123456789\n" +
		":23B:CRED\n" +
		":32A:240315USD1000,00\n" +
		":50K:/12345678\nJOHN DOE\n" +
		":59:/87654321\nJANE SMITH\n" +
		":71A:SHA\n" +
		":99:SURPRISE\n" +
		"-}"
	res := mt.ParseWithConfig(raw, mt.ParserConfig{FailFast: false})
	require.Equal(t, mt.StatusPartialSuccess, res.Status)
	require.Len(t, res.Message.Unrecognized, 1)
	require.Equal(t, "99", res.Message.Unrecognized[0].Occurrence.Tag)

	foundWarning := false
	for _, e := range res.Errors {
		if e.Kind == reporter.UnknownTag {
			foundWarning = true
			require.Equal(t, reporter.SeverityWarning, e.Severity)
		}
	}
	require.True(t, foundWarning)
}

func TestAutoDetect(t *testing.T) {
	mtype, err := mt.AutoDetect(sampleMT103)
	require.NoError(t, err)
	require.Equal(t, "103", mtype)
}

func TestJSONRoundTripsFieldsAndOrder(t *testing.T) {
	msg, err := mt.Parse(sampleMT103)
	require.NoError(t, err)

	data, merr := json.Marshal(msg)
	require.NoError(t, merr)

	var decoded mt.Message
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Equal(t, msg.MessageType, decoded.MessageType)
	require.Equal(t, msg.FieldOrder, decoded.FieldOrder)
	require.Equal(t, msg.FieldTags, decoded.FieldTags)

	// go-cmp gives a structural diff (rather than just pass/fail) across the
	// map of typed field interfaces, matching how the teacher's linker tests
	// compare resolved-symbol tables; cmpopts.EquateEmpty treats a nil and an
	// empty slice/map as equal, since neither side's zero value matters here.
	if diff := cmp.Diff(msg.Fields, decoded.Fields, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("decoded fields mismatch (-want +got):\n%s", diff)
	}
}
