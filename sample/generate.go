// Package sample builds synthetic messages (spec.md §4.7) by walking a
// message type's schema the same way mt's parser driver does, but in
// reverse: instead of binding wire occurrences to slots, it fills each slot
// with a generated value and then lets mt.ParseWithConfig validate the
// assembled wire bytes — the generator never trusts its own output, it
// proves it by round-tripping through the real parser, the same way the
// teacher's internal/benchmarks corpus is generated by compiling real
// .proto sources rather than hand-built ASTs.
package sample

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/fields"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/messages"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/mt"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/wire"
)

// maxBatchConcurrency bounds how many messages GenerateBatch builds at
// once; each Generate call is pure CPU work (no I/O), so this just keeps a
// very large batch from spawning one goroutine per message.
const maxBatchConcurrency = 8

// policy translates a Scenario into the generation knobs Generate needs.
type policy struct {
	optionalProb float64
	preferMax    bool // sequence/repetitive counts lean toward Max instead of Min
	fill         fillOptions
}

func scenarioPolicy(s Scenario) policy {
	switch s {
	case ScenarioMinimal:
		return policy{optionalProb: 0, preferMax: false, fill: fillOptions{includeOptional: 0, preferMinRepetitive: true}}
	case ScenarioFull:
		return policy{optionalProb: 1, preferMax: true, fill: fillOptions{includeOptional: 1, preferMinRepetitive: false}}
	case ScenarioSTP, ScenarioCover:
		return policy{optionalProb: 0.65, preferMax: false, fill: fillOptions{includeOptional: 0.5, preferMinRepetitive: true}}
	case ScenarioReject, ScenarioReturn:
		return policy{optionalProb: 0.2, preferMax: false, fill: fillOptions{includeOptional: 0.2, preferMinRepetitive: true}}
	default: // ScenarioStandard and ""
		return policy{optionalProb: 0.5, preferMax: false, fill: fillOptions{includeOptional: 0.5, preferMinRepetitive: true}}
	}
}

// unboundedRepeats is the target repeat count Full-style scenarios pick for
// a Max:0 ("unbounded") sequence or repetitive slot — mt/parse.go treats
// Max:0 the same way (bindRepetitive/bindSequence loop "for sl.Max == 0 ||
// count < sl.Max"), so there is no real ceiling to prefer; a scenario that
// leans toward Max still needs a concrete number to generate.
const unboundedRepeats = 3

func (p policy) count(min, max int) int {
	if max == 0 {
		if p.preferMax {
			return min + unboundedRepeats
		}
		return min
	}
	if max <= min {
		return min
	}
	if p.preferMax {
		return max
	}
	return min
}

// Generate builds a new, schema-valid message of the given type per cfg.
// The returned *mt.Message has already been through mt.ParseWithConfig, so
// every invariant Parse checks (field formats, conditionals, tag
// completeness) holds for it exactly as it would for a message read off the
// wire.
func Generate(messageType string, cfg MessageConfig) (*mt.Message, error) {
	schema, ok := messages.Lookup(messageType)
	if !ok {
		return nil, fmt.Errorf("sample: unknown message type %q", messageType)
	}

	seed := cfg.Seed
	if seed == nil {
		s := defaultSeed()
		seed = &s
	}
	g := NewGenerator(*seed)
	pol := scenarioPolicy(cfg.Scenario)

	// One currency is picked up front and reused for every currency-bearing
	// field in the message: several schemas (MT103's C2) require the
	// amount-side fields to agree on currency, and generating each field's
	// currency independently would fail that check on almost every draw.
	currency := g.Alpha(3)

	occs, err := generateOccurrences(g, cfg, pol, schema, currency)
	if err != nil {
		return nil, err
	}

	tok := &wire.Message{
		Basic:       generateBasicHeader(g),
		Application: generateApplicationHeader(g, messageType),
		Occurrences: occs,
	}
	raw := wire.Compose(tok)

	res := mt.ParseWithConfig(raw, mt.ParserConfig{FailFast: true})
	if res.Status == mt.StatusFailure {
		if len(res.Errors) > 0 {
			return nil, fmt.Errorf("sample: generated message failed validation: %w", res.Errors[0])
		}
		return nil, fmt.Errorf("sample: generated message failed validation")
	}
	return res.Message, nil
}

// GenerateBatch produces count independent messages of messageType in
// parallel, deriving each one's seed from cfg.Seed (or a fresh random seed)
// so a batch generated from a fixed seed is itself reproducible regardless
// of scheduling order. The first error encountered cancels the rest of the
// batch, mirroring the teacher's parallel compile over a FileSet
// (compiler.go's errgroup-driven per-file compilation).
func GenerateBatch(ctx context.Context, messageType string, cfg MessageConfig, count int) ([]*mt.Message, error) {
	base := cfg.Seed
	if base == nil {
		s := defaultSeed()
		base = &s
	}
	out := make([]*mt.Message, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchConcurrency)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			iterSeed := *base + uint64(i)*0x9e3779b97f4a7c15
			iterCfg := cfg
			iterCfg.Seed = &iterSeed
			m, err := Generate(messageType, iterCfg)
			if err != nil {
				return fmt.Errorf("message %d: %w", i, err)
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sample: batch generation: %w", err)
	}
	return out, nil
}

func generateOccurrences(g *Generator, cfg MessageConfig, pol policy, schema *messages.Schema, currency string) ([]wire.Occurrence, error) {
	var occs []wire.Occurrence
	present := map[string]bool{}
	slots := schema.Slots
	for i := 0; i < len(slots); {
		sl := slots[i]
		if sl.Sequence != "" {
			seqSlots, consumed := collectSequence(slots[i:], sl.Sequence)
			seq, _ := schema.SequenceByID(sl.Sequence)
			repeats := pol.count(seq.Min, seq.Max)
			for r := 0; r < repeats; r++ {
				for _, ssl := range seqSlots {
					emitted, err := emitSlot(g, cfg, pol, ssl, currency, present)
					if err != nil {
						return nil, err
					}
					occs = append(occs, emitted...)
				}
			}
			i += consumed
			continue
		}
		emitted, err := emitSlot(g, cfg, pol, sl, currency, present)
		if err != nil {
			return nil, err
		}
		occs = append(occs, emitted...)
		i++
	}
	return occs, nil
}

// collectSequence gathers the contiguous run of slots at the head of rest
// that belong to sequence seqID, matching how messages.Schema declares a
// sequence's slots as a contiguous block in Slots.
func collectSequence(rest []messages.Slot, seqID string) (seqSlots []messages.Slot, consumed int) {
	for _, sl := range rest {
		if sl.Sequence != seqID {
			break
		}
		seqSlots = append(seqSlots, sl)
		consumed++
	}
	return seqSlots, consumed
}

// requiresTag maps a schema slot tag to another tag whose presence makes
// this one mandatory for this draw, per a schema's own Conditional rules
// (MT103's C1: 33B present requires 36). Generating 33B and 36 as
// independent coin flips would violate C1 on a large fraction of draws;
// this keeps the two correlated the same way the conditional does.
var requiresTag = map[string]string{
	"36": "33B",
}

func emitSlot(g *Generator, cfg MessageConfig, pol policy, sl messages.Slot, currency string, present map[string]bool) ([]wire.Occurrence, error) {
	switch sl.Presence {
	case messages.Optional:
		forced := requiresTag[sl.Tag] != "" && present[requiresTag[sl.Tag]]
		if !forced && !g.Bool(pol.optionalProb) {
			return nil, nil
		}
		occ, err := generateOccurrence(g, cfg, pol, sl.Tag, currency)
		if err != nil {
			return nil, err
		}
		present[sl.Tag] = true
		return []wire.Occurrence{occ}, nil

	case messages.Repetitive:
		n := pol.count(sl.Min, sl.Max)
		out := make([]wire.Occurrence, 0, n)
		for r := 0; r < n; r++ {
			occ, err := generateOccurrence(g, cfg, pol, sl.Tag, currency)
			if err != nil {
				return nil, err
			}
			out = append(out, occ)
		}
		if n > 0 {
			present[sl.Tag] = true
		}
		return out, nil

	default: // Mandatory
		occ, err := generateOccurrence(g, cfg, pol, sl.Tag, currency)
		if err != nil {
			return nil, err
		}
		present[sl.Tag] = true
		return []wire.Occurrence{occ}, nil
	}
}

// generateOccurrence produces one wire occurrence for schema slot tag
// schemaTag, resolving option-family discrimination and applying any
// configured FieldOverrides. Two independent generation strategies feed it:
// fields with a flat formatspec.Spec (reference/amount/statement catalogs)
// go through the generic spec-driven Fill; the party family (50/52-59),
// whose account-line prefix formatspec cannot express (see catalog_party.go),
// goes through the catalog entry's own Sample closure and that field's
// Render, the same path the field engine itself uses to serialize.
func generateOccurrence(g *Generator, cfg MessageConfig, pol policy, schemaTag string, currency string) (wire.Occurrence, error) {
	resolvedTag, entry := resolveEntry(g, schemaTag)
	if entry == nil {
		return wire.Occurrence{}, fmt.Errorf("sample: no catalog entry for tag %q", schemaTag)
	}

	override, hasOverride := cfg.FieldOverrides[schemaTag]
	fc := overrideOrNil(hasOverride, override)

	if fc != nil && fc.Fixed != nil {
		raw, err := expandTemplate(*fc.Fixed, cfg.Variables)
		if err != nil {
			return wire.Occurrence{}, fmt.Errorf("sample: field %s: %w", resolvedTag, err)
		}
		return wire.Occurrence{Tag: resolvedTag, Raw: raw}, nil
	}
	if fc != nil && fc.Pattern != nil {
		raw, err := expandTemplate(*fc.Pattern, cfg.Variables)
		if err != nil {
			return wire.Occurrence{}, fmt.Errorf("sample: field %s: %w", resolvedTag, err)
		}
		return wire.Occurrence{Tag: resolvedTag, Raw: raw}, nil
	}

	if entry.Spec != nil {
		raw, err := fillValue(g, entry.Spec, pol, currency, fc)
		if err != nil {
			return wire.Occurrence{}, fmt.Errorf("sample: field %s: %w", resolvedTag, err)
		}
		return wire.Occurrence{Tag: resolvedTag, Raw: raw}, nil
	}
	if entry.Sample != nil {
		field := entry.Sample(g, nil)
		raw, err := field.Render()
		if err != nil {
			return wire.Occurrence{}, fmt.Errorf("sample: field %s: %w", resolvedTag, err)
		}
		return wire.Occurrence{Tag: resolvedTag, Raw: raw}, nil
	}
	return wire.Occurrence{}, fmt.Errorf("sample: tag %q has neither a format spec nor a sample generator", resolvedTag)
}

func overrideOrNil(has bool, fc FieldConfig) *FieldConfig {
	if !has {
		return nil
	}
	return &fc
}

// resolveEntry picks the concrete catalog entry (and its full wire tag) for
// a schema slot tag that may name an option family ("50") or a dual-mode
// entry whose bare tag is itself directly parseable ("59").
func resolveEntry(g *Generator, schemaTag string) (string, *fields.CatalogEntry) {
	entry, ok := fields.Catalog[schemaTag]
	if !ok {
		return schemaTag, nil
	}
	if len(entry.FamilyOrder) == 0 {
		return schemaTag, entry
	}
	choices := append([]string{""}, entry.FamilyOrder...)
	if entry.Parse == nil {
		choices = entry.FamilyOrder
	}
	letter := g.Choice(choices)
	if letter == "" {
		return schemaTag, entry
	}
	full := schemaTag + letter
	if leafEntry, ok := fields.Catalog[full]; ok {
		return full, leafEntry
	}
	return schemaTag, entry
}

// fillValue produces the raw wire text for one spec-backed field occurrence.
// Callers have already handled Fixed/Pattern overrides (those need no
// Spec); only Range/Length are spec-aware and handled here.
func fillValue(g *Generator, spec *formatspec.Spec, pol policy, currency string, fc *FieldConfig) (string, error) {
	switch {
	case fc != nil && fc.Range != nil:
		return fillRange(g, spec, *fc.Range)
	case fc != nil && fc.Length != nil:
		return fillLength(g, spec, pol.fill, *fc.Length)
	case hasLeaf(spec.Components, "currency"):
		values := fillSequenceWithOverrides(g, spec.Components, pol.fill, map[string]string{"currency": currency})
		return formatspec.Render(spec, values)
	default:
		return Fill(g, spec, pol.fill, nil)
	}
}

// fillRange fills spec's "amount" leaf with a decimal value between
// Min and Max (inclusive), and its "currency" leaf with Currency when set;
// every other leaf is filled normally. Applies only to specs carrying an
// "amount" leaf (spec.md §4.7's amount-bearing fields, e.g. 32A/32B/33B);
// a spec without one falls back to an unconstrained fill since there is no
// amount component to constrain.
func fillRange(g *Generator, spec *formatspec.Spec, rng AmountRange) (string, error) {
	if !hasLeaf(spec.Components, "amount") {
		return Fill(g, spec, fillOptions{includeOptional: 0.5}, nil)
	}
	lo, err := parseAmountLiteral(rng.Min)
	if err != nil {
		return "", fmt.Errorf("range.min: %w", err)
	}
	hi, err := parseAmountLiteral(rng.Max)
	if err != nil {
		return "", fmt.Errorf("range.max: %w", err)
	}
	amount := interpolateAmount(g, lo, hi)
	overrides := map[string]string{"amount": amount}
	if rng.Currency != "" {
		overrides["currency"] = rng.Currency
	}
	values := fillSequenceWithOverrides(g, spec.Components, fillOptions{includeOptional: 1}, overrides)
	return formatspec.Render(spec, values)
}

// fillLength fills the sole non-literal leaf of specs shaped like a single
// free-text component (e.g. tag 20's "16x") to a length within rng; specs
// with more than one leaf fall back to an unconstrained fill, since there is
// no single component a bare length range could unambiguously target.
func fillLength(g *Generator, spec *formatspec.Spec, opts fillOptions, rng LengthRange) (string, error) {
	leaves := flattenLeaves(spec.Components)
	if len(leaves) != 1 {
		return Fill(g, spec, opts, nil)
	}
	leaf := leaves[0]
	max := rng.Max
	if max <= 0 || max > leaf.Len {
		max = leaf.Len
	}
	min := rng.Min
	if min <= 0 {
		min = 1
	}
	if min > max {
		min = max
	}
	n := min
	if max > min {
		n = min + g.Intn(max-min+1)
	}
	values := []formatspec.Value{{Name: leaf.Name, Present: true, Raw: fillClass(g, leaf.Class, n)}}
	return formatspec.Render(spec, values)
}

func hasLeaf(components []formatspec.Component, name string) bool {
	for _, c := range components {
		switch c.Kind {
		case formatspec.KindFixed, formatspec.KindVariable, formatspec.KindDecimal:
			if c.Name == name {
				return true
			}
		case formatspec.KindGroup, formatspec.KindRepetitive:
			if hasLeaf(c.Children, name) {
				return true
			}
		}
	}
	return false
}

func flattenLeaves(components []formatspec.Component) []formatspec.Component {
	var out []formatspec.Component
	for _, c := range components {
		switch c.Kind {
		case formatspec.KindFixed, formatspec.KindVariable, formatspec.KindDecimal:
			out = append(out, c)
		case formatspec.KindGroup:
			out = append(out, flattenLeaves(c.Children)...)
		}
	}
	return out
}

// fillSequenceWithOverrides behaves like fillSequence but uses a fixed raw
// value for any leaf whose Name is a key of overrides.
func fillSequenceWithOverrides(g *Generator, components []formatspec.Component, opts fillOptions, overrides map[string]string) []formatspec.Value {
	var values []formatspec.Value
	for i := range components {
		c := &components[i]
		switch c.Kind {
		case formatspec.KindLiteral:
		case formatspec.KindFixed, formatspec.KindVariable, formatspec.KindDecimal:
			if fixed, ok := overrides[c.Name]; ok {
				values = append(values, formatspec.Value{Name: c.Name, Present: true, Raw: fixed})
				continue
			}
			values = append(values, fillSequence(g, []formatspec.Component{*c}, opts)...)
		case formatspec.KindGroup:
			values = append(values, fillSequenceWithOverrides(g, c.Children, opts, overrides)...)
		case formatspec.KindRepetitive:
			values = append(values, fillSequence(g, []formatspec.Component{*c}, opts)...)
		}
	}
	return values
}

func generateBasicHeader(g *Generator) wire.BasicHeader {
	return wire.BasicHeader{
		ApplicationID:   "F",
		ServiceID:       "01",
		LogicalTerminal: g.Alpha(8) + "A" + g.Alpha(3), // 12 chars: 8-char BIC + logical term code + 3-char branch
		SessionNumber:   g.Digits(4),
		SequenceNumber:  g.Digits(6),
	}
}

func generateApplicationHeader(g *Generator, messageType string) wire.ApplicationHeader {
	return wire.ApplicationHeader{
		Direction:       'I',
		MessageType:     messageType,
		ReceiverAddress: g.Alpha(8) + "XXXX",
		Priority:        "N",
	}
}

func defaultSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 1
	}
	return binary.BigEndian.Uint64(buf[:])
}
