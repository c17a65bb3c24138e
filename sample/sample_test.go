package sample_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/messages"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/mt"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/sample"
)

func TestGenerateMinimalMT103ValidatesThroughParser(t *testing.T) {
	seed := uint64(42)
	msg, err := sample.Generate("103", sample.MessageConfig{Scenario: sample.ScenarioMinimal, Seed: &seed})
	require.NoError(t, err)
	require.Equal(t, "103", msg.MessageType)
	for _, mandatory := range []string{"20", "23B", "32A", "50", "59", "71A"} {
		_, ok := msg.Field(mandatory)
		require.True(t, ok, "mandatory slot %s must be bound", mandatory)
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	seed := uint64(777)
	m1, err := sample.Generate("103", sample.MessageConfig{Scenario: sample.ScenarioStandard, Seed: &seed})
	require.NoError(t, err)
	m2, err := sample.Generate("103", sample.MessageConfig{Scenario: sample.ScenarioStandard, Seed: &seed})
	require.NoError(t, err)

	out1, rerr := mt.Render(m1)
	require.NoError(t, rerr)
	out2, rerr := mt.Render(m2)
	require.NoError(t, rerr)
	require.Equal(t, out1, out2)
}

func TestGenerateFullScenarioPopulatesOptionalFields(t *testing.T) {
	seed := uint64(13)
	msg, err := sample.Generate("103", sample.MessageConfig{Scenario: sample.ScenarioFull, Seed: &seed})
	require.NoError(t, err)
	_, hasTouch70 := msg.Field("70")
	require.True(t, hasTouch70, "full scenario should populate optional remittance info")
}

func TestGenerateRepeatedlyKeepsMT103ConditionalsSatisfied(t *testing.T) {
	for s := uint64(0); s < 50; s++ {
		seed := s
		msg, err := sample.Generate("103", sample.MessageConfig{Scenario: sample.ScenarioStandard, Seed: &seed})
		require.NoError(t, err, "seed %d must produce a schema-valid message", s)
		require.NotNil(t, msg)
	}
}

func TestGenerateUnknownMessageTypeErrors(t *testing.T) {
	_, err := sample.Generate("999", sample.MessageConfig{})
	require.Error(t, err)
}

func TestGenerateFixedOverride(t *testing.T) {
	seed := uint64(5)
	fixed := "MYREF00001"
	msg, err := sample.Generate("103", sample.MessageConfig{
		Seed: &seed,
		FieldOverrides: map[string]sample.FieldConfig{
			"20": {Fixed: &fixed},
		},
	})
	require.NoError(t, err)
	f, ok := msg.Field("20")
	require.True(t, ok)
	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "MYREF00001", raw)
}

func TestGenerateTemplateOverrideExpandsVariables(t *testing.T) {
	seed := uint64(9)
	pattern := "REF-${account}"
	msg, err := sample.Generate("103", sample.MessageConfig{
		Seed:      &seed,
		Variables: map[string]any{"account": "ACC42"},
		FieldOverrides: map[string]sample.FieldConfig{
			"20": {Pattern: &pattern},
		},
	})
	require.NoError(t, err)
	f, ok := msg.Field("20")
	require.True(t, ok)
	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.Equal(t, "REF-ACC42", raw)
}

func TestGenerateAmountRangeOverride(t *testing.T) {
	seed := uint64(21)
	msg, err := sample.Generate("103", sample.MessageConfig{
		Seed: &seed,
		FieldOverrides: map[string]sample.FieldConfig{
			"32A": {Range: &sample.AmountRange{Min: "100.00", Max: "200.00", Currency: "GBP"}},
		},
	})
	require.NoError(t, err)
	f, ok := msg.Field("32A")
	require.True(t, ok)
	raw, rerr := f.Render()
	require.NoError(t, rerr)
	require.True(t, strings.Contains(raw, "GBP"))
}

func TestGenerateBatchProducesIndependentMessages(t *testing.T) {
	seed := uint64(100)
	msgs, err := sample.GenerateBatch(context.Background(), "103", sample.MessageConfig{Seed: &seed}, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 10)

	refs := map[string]bool{}
	for _, m := range msgs {
		f, ok := m.Field("20")
		require.True(t, ok)
		raw, _ := f.Render()
		refs[raw] = true
	}
	require.Greater(t, len(refs), 1, "batch messages should not all share the same reference")
}

func TestGenerateBatchIsReproducibleFromSameSeed(t *testing.T) {
	seed := uint64(55)
	ctx := context.Background()
	m1, err := sample.GenerateBatch(ctx, "103", sample.MessageConfig{Seed: &seed}, 5)
	require.NoError(t, err)
	m2, err := sample.GenerateBatch(ctx, "103", sample.MessageConfig{Seed: &seed}, 5)
	require.NoError(t, err)

	for i := range m1 {
		out1, err := mt.Render(m1[i])
		require.NoError(t, err)
		out2, err := mt.Render(m2[i])
		require.NoError(t, err)
		require.Equal(t, out1, out2)
	}
}

func TestLoadConfigJSONRejectsUnknownKeys(t *testing.T) {
	_, err := sample.LoadConfigJSON(strings.NewReader(`{"scenario":"full","bogus_key":1}`))
	require.Error(t, err)
}

func TestLoadConfigJSONParsesKnownFields(t *testing.T) {
	cfg, err := sample.LoadConfigJSON(strings.NewReader(`{"scenario":"minimal","field_overrides":{"20":{"fixed":"X"}}}`))
	require.NoError(t, err)
	require.Equal(t, sample.ScenarioMinimal, cfg.Scenario)
	require.Equal(t, "X", *cfg.FieldOverrides["20"].Fixed)
}

func TestLoadConfigYAMLRejectsUnknownKeys(t *testing.T) {
	_, err := sample.LoadConfigYAML([]byte("scenario: full\nbogus_key: 1\n"))
	require.Error(t, err)
}

func TestLoadConfigYAMLParsesKnownFields(t *testing.T) {
	cfg, err := sample.LoadConfigYAML([]byte("scenario: stp\n"))
	require.NoError(t, err)
	require.Equal(t, sample.ScenarioSTP, cfg.Scenario)
}

func TestGenerateMT940StatementLinesUseValidDates(t *testing.T) {
	if _, ok := messages.Lookup("940"); !ok {
		t.Skip("message type 940 not present in this build's catalog")
	}
	seed := uint64(3)
	msg, err := sample.Generate("940", sample.MessageConfig{Scenario: sample.ScenarioStandard, Seed: &seed})
	require.NoError(t, err)
	require.Equal(t, "940", msg.MessageType)
}

// TestGenerateMT940FullScenarioProducesStatementLines guards against the
// LINES sequence (Min:0, Max:0 — schema's unbounded convention) collapsing
// to zero repeats: ScenarioFull is the one draw that's supposed to always
// grow it, and a tag-61 line is the one thing that differentiates MT940 from
// a message with only balances.
func TestGenerateMT940FullScenarioProducesStatementLines(t *testing.T) {
	if _, ok := messages.Lookup("940"); !ok {
		t.Skip("message type 940 not present in this build's catalog")
	}
	seed := uint64(11)
	msg, err := sample.Generate("940", sample.MessageConfig{Scenario: sample.ScenarioFull, Seed: &seed})
	require.NoError(t, err)

	found61 := false
	for _, id := range msg.FieldOrder {
		if strings.HasPrefix(id, "61") {
			found61 = true
			break
		}
	}
	require.True(t, found61, "full scenario must generate at least one tag-61 statement line")
}

// TestGenerateMT104FullScenarioGrowsSequenceBPastOneIteration guards the same
// unbounded-count collapse for the per-transaction sequence B (Min:1, Max:0).
func TestGenerateMT104FullScenarioGrowsSequenceBPastOneIteration(t *testing.T) {
	if _, ok := messages.Lookup("104"); !ok {
		t.Skip("message type 104 not present in this build's catalog")
	}
	seed := uint64(23)
	msg, err := sample.Generate("104", sample.MessageConfig{Scenario: sample.ScenarioFull, Seed: &seed})
	require.NoError(t, err)

	count := 0
	for _, id := range msg.FieldOrder {
		if id == "21" || strings.HasPrefix(id, "21#") {
			count++
		}
	}
	require.Greater(t, count, 1, "full scenario must grow sequence B past its single-iteration minimum")
}
