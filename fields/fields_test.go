package fields_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/fields"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

func TestParseRenderRoundTripReference(t *testing.T) {
	f, err := fields.ParseOccurrence("20", "REF123456789", reporter.NewPosition(1, 1), ":20:REF123456789")
	require.Nil(t, err)
	require.Equal(t, "20", f.Tag())
	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "REF123456789", raw)
}

func TestParseAmountField(t *testing.T) {
	f, err := fields.ParseOccurrence("32A", "240229USD1234,56", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	a32A, ok := f.(*fields.Field32A)
	require.True(t, ok)
	require.Equal(t, "USD", a32A.Currency)
	require.Equal(t, "1234,56", a32A.Amount.Raw())
	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "240229USD1234,56", raw)
}

func TestParseDateRejectsInvalidCalendarDate(t *testing.T) {
	_, err := fields.ParseOccurrence("32A", "240230USD100,", reporter.NewPosition(1, 1), "")
	require.NotNil(t, err)
	require.Equal(t, reporter.InvalidFieldFormat, err.Kind)
}

func TestParseFamilyDiscriminatesByLength(t *testing.T) {
	resolved, f, err := fields.ParseFamily("50", "/ACC001\nDEUTDEFFXXX", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	require.Equal(t, "50A", resolved)
	a, ok := f.(*fields.Field50A)
	require.True(t, ok)
	require.True(t, a.HasAccount)
	require.Equal(t, "ACC001", a.Account)
	require.Equal(t, "DEUT", a.Institution.InstitutionCode)
}

func TestParseFamilyTriesOptionsInDeclaredPriorityOrder(t *testing.T) {
	// A rejects "JOHN DOE\n1 MAIN ST" (not a valid BIC line) but F (which only
	// fails on line-count/length) accepts it, so FamilyOrder's A, F, K
	// priority settles on F before K ever gets a turn.
	resolved, f, err := fields.ParseFamily("50", "JOHN DOE\n1 MAIN ST", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	require.Equal(t, "50F", resolved)
	sf, ok := f.(*fields.Field50F)
	require.True(t, ok)
	require.Equal(t, "JOHN DOE", sf.Identifier)
	require.Equal(t, []string{"1 MAIN ST"}, sf.Lines)
}

func TestParseOccurrenceDirectlyAsOptionK(t *testing.T) {
	f, err := fields.ParseOccurrence("50K", "JOHN DOE\n1 MAIN ST", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	k, ok := f.(*fields.Field50K)
	require.True(t, ok)
	require.Equal(t, []string{"JOHN DOE", "1 MAIN ST"}, k.Lines)
	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "JOHN DOE\n1 MAIN ST", raw)
}

func TestParseFamilyUnknownTag(t *testing.T) {
	_, _, err := fields.ParseFamily("99", "anything", reporter.NewPosition(1, 1), "")
	require.NotNil(t, err)
	require.Equal(t, reporter.UnknownTag, err.Kind)
}

func TestSlotMatches(t *testing.T) {
	require.True(t, fields.SlotMatches("50", "50A"))
	require.True(t, fields.SlotMatches("50", "50K"))
	require.False(t, fields.SlotMatches("50", "50Z"))
	require.True(t, fields.SlotMatches("32A", "32A"))
	require.False(t, fields.SlotMatches("32A", "32B"))
}

func TestParseAtSlotDualModeField59(t *testing.T) {
	resolvedTag, f, err := fields.ParseAtSlot("59", "59", "JANE SMITH", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	require.Equal(t, "59", resolvedTag)
	n, ok := f.(*fields.Field59)
	require.True(t, ok)
	require.Equal(t, []string{"JANE SMITH"}, n.Lines)

	resolvedTag, f, err = fields.ParseAtSlot("59", "59A", "DEUTDEFFXXX", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	require.Equal(t, "59A", resolvedTag)
	_, ok = f.(*fields.Field59A)
	require.True(t, ok)
}

func TestField70RegisteredAndJSONDecodable(t *testing.T) {
	f, err := fields.ParseOccurrence("70", "PAYMENT FOR INVOICE 123\nTHANK YOU", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	f70, ok := f.(*fields.Field70)
	require.True(t, ok)
	require.Equal(t, []string{"PAYMENT FOR INVOICE 123", "THANK YOU"}, f70.Lines)

	data, merr := json.Marshal(f)
	require.NoError(t, merr)
	decoded, known, derr := fields.DecodeJSON("70", data)
	require.NoError(t, derr)
	require.True(t, known)
	require.Equal(t, f, decoded)
}

func TestField28ParsesOptionalSequenceSuffix(t *testing.T) {
	f, err := fields.ParseOccurrence("28", "1/1", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	f28, ok := f.(*fields.Field28)
	require.True(t, ok)
	require.Equal(t, "1", f28.StatementNumber)
	require.Equal(t, "1", f28.SequenceNumber)
	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "1/1", raw)
}

func TestField28ParsesWithoutSequenceSuffix(t *testing.T) {
	f, err := fields.ParseOccurrence("28", "12345", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	f28, ok := f.(*fields.Field28)
	require.True(t, ok)
	require.Equal(t, "12345", f28.StatementNumber)
	require.Equal(t, "", f28.SequenceNumber)
}

func TestField61ParsesStatementLineWithExtraReference(t *testing.T) {
	f, err := fields.ParseOccurrence("61", "230115D1234,56NMSCNONREF//BANKREF", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	f61, ok := f.(*fields.Field61)
	require.True(t, ok)
	require.Nil(t, f61.EntryDate)
	require.Equal(t, "D", f61.DebitCredit)
	require.Equal(t, "", f61.FundsCode)
	require.Equal(t, "1234,56", f61.Amount.Raw())
	require.Equal(t, "N", f61.TypeCode)
	require.Equal(t, "MSC", f61.TransactionType)
	require.Equal(t, "NONREF", f61.Reference)
	require.Equal(t, "BANKREF", f61.ExtraReference)
	require.Equal(t, "", f61.Supplementary)

	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "230115D1234,56NMSCNONREF//BANKREF", raw)
}

func TestField61ParsesWithEntryDateAndFundsCode(t *testing.T) {
	f, err := fields.ParseOccurrence("61", "2301150116DR1234,56FCHGREF001", reporter.NewPosition(1, 1), "")
	require.Nil(t, err)
	f61, ok := f.(*fields.Field61)
	require.True(t, ok)
	require.NotNil(t, f61.EntryDate)
	require.Equal(t, "D", f61.DebitCredit)
	require.Equal(t, "R", f61.FundsCode)
	require.Equal(t, "1234,56", f61.Amount.Raw())
	require.Equal(t, "F", f61.TypeCode)
	require.Equal(t, "CHG", f61.TransactionType)
	require.Equal(t, "REF001", f61.Reference)
	require.Equal(t, "", f61.ExtraReference)
	require.Equal(t, "", f61.Supplementary)

	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "2301150116DR1234,56FCHGREF001", raw)
}

func TestLookupUnknownTag(t *testing.T) {
	_, ok := fields.Lookup("ZZZ")
	require.False(t, ok)
}

func TestBICRequiresValidLength(t *testing.T) {
	_, err := fields.ParseBIC("SHORT")
	require.Error(t, err)
	b, err := fields.ParseBIC("DEUTDEFFXXX")
	require.NoError(t, err)
	require.Equal(t, "DEUT", b.InstitutionCode)
	require.Equal(t, "XXX", b.BranchCode)
}

// stubSample is a deterministic fields.SampleSource for exercising catalog
// Sample closures without pulling in package sample (would be an import
// cycle from this package's perspective).
type stubSample struct{ n int }

func (s *stubSample) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.n++
	return s.n % n
}
func (s *stubSample) Float64() float64          { return 0.1 }
func (s *stubSample) Choice(o []string) string  { return o[0] }
func (s *stubSample) Digits(n int) string       { return stubRepeat("1", n) }
func (s *stubSample) Alpha(n int) string        { return stubRepeat("A", n) }
func stubRepeat(c string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += c
	}
	return out
}

func TestCatalogSampleClosuresProduceRenderableFields(t *testing.T) {
	rng := &stubSample{}
	for _, tag := range []string{"50A", "50F", "50K", "52A", "53B", "56C", "59", "59A"} {
		entry, ok := fields.Lookup(tag)
		require.True(t, ok, "tag %s must be registered", tag)
		require.NotNil(t, entry.Sample, "tag %s must carry a Sample generator", tag)
		f := entry.Sample(rng, nil)
		raw, err := f.Render()
		require.NoError(t, err, "tag %s Sample output must render", tag)
		require.NotEmpty(t, raw)
	}
}

func TestSampleGeneratedPartyFieldRoundTripsThroughParse(t *testing.T) {
	rng := &stubSample{}
	entry, ok := fields.Lookup("50A")
	require.True(t, ok)
	f := entry.Sample(rng, nil)
	raw, err := f.Render()
	require.NoError(t, err)

	resolved, reparsed, perr := fields.ParseAtSlot("50", "50A", raw, reporter.NewPosition(1, 1), raw)
	require.Nil(t, perr)
	require.Equal(t, "50A", resolved)
	require.Equal(t, f, reparsed)
}
