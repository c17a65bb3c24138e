package formatspec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
)

func TestCompileAndNumComponents(t *testing.T) {
	s := formatspec.MustCompile("6!n3!a15d")
	require.Equal(t, 3, s.NumComponents())
}

func TestParseFixedAndDecimal(t *testing.T) {
	s := formatspec.MustCompile("6!n3!a15d").WithNames("date", "currency", "amount")
	values, err := formatspec.Parse(s, "240315USD1000,")
	require.NoError(t, err)
	require.Len(t, values, 3)
	require.Equal(t, "240315", values[0].Raw)
	require.Equal(t, "USD", values[1].Raw)
	require.Equal(t, "1000,", values[2].Raw)
}

func TestParseRejectsDotDecimal(t *testing.T) {
	s := formatspec.MustCompile("6!n3!a15d").WithNames("date", "currency", "amount")
	_, err := formatspec.Parse(s, "240315USD1000.00")
	require.Error(t, err)
	var fe *formatspec.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "amount", fe.ComponentName)
}

func TestDecimalBoundaryLiterals(t *testing.T) {
	s := formatspec.MustCompile("15d").WithNames("amount")
	_, err := formatspec.Parse(s, "0,")
	require.NoError(t, err)

	_, err = formatspec.Parse(s, ",5")
	require.Error(t, err)
}

func TestOptionalGroupPresentAndAbsent(t *testing.T) {
	s := formatspec.MustCompile("4!a2!a2!c[3!c]").WithNames("bank", "country", "location", "branch")
	full, err := formatspec.Parse(s, "DEUTDEFFXXX")
	require.NoError(t, err)
	require.Equal(t, "XXX", full[3].Raw)
	require.True(t, full[3].Present)

	short, err := formatspec.Parse(s, "DEUTDEFF")
	require.NoError(t, err)
	require.False(t, short[3].Present)
}

func TestRepetitiveGroup(t *testing.T) {
	s := formatspec.MustCompile("4*35x").WithNames("lines")
	values, err := formatspec.Parse(s, "LINE ONE\nLINE TWO")
	require.NoError(t, err)
	require.Equal(t, []string{"LINE ONE", "LINE TWO"}, values[0].Lines)

	_, err = formatspec.Parse(s, "L1\nL2\nL3\nL4\nL5")
	require.Error(t, err)
}

func TestMaxLengthBoundaries(t *testing.T) {
	s := formatspec.MustCompile("35x").WithNames("text")
	ok := make([]byte, 35)
	for i := range ok {
		ok[i] = 'A'
	}
	_, err := formatspec.Parse(s, string(ok))
	require.NoError(t, err)

	tooLong := append(ok, 'A')
	_, err = formatspec.Parse(s, string(tooLong))
	require.Error(t, err)
}

func TestRoundTripLaw(t *testing.T) {
	s := formatspec.MustCompile("4!a2!a2!c[3!c]").WithNames("bank", "country", "location", "branch")
	for _, raw := range []string{"DEUTDEFFXXX", "DEUTDEFF"} {
		values, err := formatspec.Parse(s, raw)
		require.NoError(t, err)
		rendered, err := formatspec.Render(s, values)
		require.NoError(t, err)
		require.Equal(t, raw, rendered)

		reparsed, err := formatspec.Parse(s, rendered)
		require.NoError(t, err)
		require.Equal(t, values, reparsed)
	}
}

func TestLiteralPrefixForcesGroup(t *testing.T) {
	s := formatspec.MustCompile("[/1!a][/34x]").WithNames("code", "reference")
	values, err := formatspec.Parse(s, "/C/REF12345")
	require.NoError(t, err)
	require.True(t, values[0].Present)
	require.Equal(t, "C", values[0].Raw)
	require.True(t, values[1].Present)
	require.Equal(t, "REF12345", values[1].Raw)

	absent, err := formatspec.Parse(s, "")
	require.NoError(t, err)
	require.False(t, absent[0].Present)
	require.False(t, absent[1].Present)
}
