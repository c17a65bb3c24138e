package reporter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

func TestPositionRoundTrip(t *testing.T) {
	p := reporter.NewPosition(12, 7)
	require.Equal(t, 12, p.Line())
	require.Equal(t, 7, p.Col())
	require.Equal(t, "12:7", p.String())
}

func TestErrorBrief(t *testing.T) {
	err := reporter.New(reporter.InvalidFieldFormat, reporter.NewPosition(3, 1),
		"amount must use a comma decimal mark",
		"tag", "32A", "component", "amount")
	brief := err.Brief()
	require.Contains(t, brief, "invalid_field_format")
	require.Contains(t, brief, "tag=\"32A\"")
	require.Contains(t, brief, "3:1")
}

func TestErrorContextual(t *testing.T) {
	err := reporter.New(reporter.InvalidFieldFormat, reporter.NewPosition(1, 11), "bad amount")
	err.Line = ":32A:240315USD1000.00"
	out := err.Contextual()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, ":32A:240315USD1000.00", lines[1])
	require.Equal(t, strings.Repeat(" ", 10)+"^", lines[2])
}

func TestListSeverityFiltering(t *testing.T) {
	l := reporter.List{
		reporter.New(reporter.MissingRequiredField, 0, "missing 71A"),
		reporter.Warningf(reporter.UnknownTag, 0, "unexpected tag %s", "99Z"),
	}
	require.True(t, l.HasErrors())
	require.Len(t, l.Errors(), 1)
	require.Len(t, l.Warnings(), 1)
}
