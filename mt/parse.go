package mt

import (
	"fmt"
	"log/slog"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/fields"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/messages"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/wire"
)

// ParserConfig selects the driver's operating mode, per spec.md §6/§4.5.
type ParserConfig struct {
	// FailFast aborts the parse and returns Failure on the first error
	// (InvalidFieldFormat, MissingRequiredField, Conditional, ...).
	// Warnings (UnknownTag by default) never abort regardless of this flag.
	FailFast bool
	// ValidateOptionalFields makes a format error in an Optional slot fail
	// the slot (and, in fail-fast mode, the whole parse) instead of simply
	// leaving the slot unbound with a warning recorded.
	ValidateOptionalFields bool
	// CollectAllErrors is accepted but not read by the driver: whether the
	// driver keeps running past the first error is decided by FailFast
	// alone, and with FailFast false every error is accumulated into the
	// result regardless of this flag.
	CollectAllErrors bool
}

// DefaultConfig is the fail-fast, collect-nothing-extra configuration used
// by Parse.
var DefaultConfig = ParserConfig{FailFast: true}

// Status discriminates the three shapes a parse can end in.
type Status int

const (
	StatusSuccess Status = iota
	StatusPartialSuccess
	StatusFailure
)

// ParseResult is the outcome of ParseWithConfig: exactly one of Success,
// PartialSuccess{Message, Errors} or Failure{Errors}, discriminated by Status.
type ParseResult struct {
	Status  Status
	Message *Message
	Errors  reporter.List
}

// Parse tokenizes and structurally resolves raw against its declared message
// schema in fail-fast mode, matching spec.md §6's `parse(bytes)` operation.
func Parse(raw string) (*Message, error) {
	res := ParseWithConfig(raw, DefaultConfig)
	if res.Status == StatusFailure {
		if len(res.Errors) > 0 {
			return nil, res.Errors[0]
		}
		return nil, reporter.ErrInvalidSource
	}
	return res.Message, nil
}

// ParseWithConfig drives the full parse: tokenize, auto-detect the message
// type from block 2, resolve occurrences against that type's schema, and
// evaluate conditional rules, per the algorithm in spec.md §4.5.
func ParseWithConfig(raw string, cfg ParserConfig) ParseResult {
	tok, terr := wire.Tokenize(raw)
	if terr != nil {
		return ParseResult{Status: StatusFailure, Errors: reporter.List{terr}}
	}

	mtype := tok.Application.MessageType
	schema, ok := messages.Lookup(mtype)
	if !ok {
		err := reporter.New(reporter.InvalidBlockStructure, 0,
			fmt.Sprintf("unsupported message type %q", mtype), "message_type", mtype)
		return ParseResult{Status: StatusFailure, Errors: reporter.List{err}}
	}

	d := &driver{cfg: cfg, schema: schema, occ: tok.Occurrences, msg: newMessage(mtype, tok)}
	d.run()

	errs := d.errs
	slog.Debug("mt: parsed message", "message_type", mtype, "occurrences", len(tok.Occurrences),
		"errors", len(errs.Errors()), "warnings", len(errs.Warnings()))

	if errs.HasErrors() {
		if cfg.FailFast {
			return ParseResult{Status: StatusFailure, Errors: errs}
		}
		return ParseResult{Status: StatusPartialSuccess, Message: d.msg, Errors: errs}
	}
	if len(errs) > 0 {
		return ParseResult{Status: StatusPartialSuccess, Message: d.msg, Errors: errs}
	}
	return ParseResult{Status: StatusSuccess, Message: d.msg, Errors: errs}
}

// AutoDetect reads block 2 of raw and reports the message type code it
// declares, without resolving block 4 against any schema. Matches spec.md
// §6's `auto_detect(bytes) -> MessageTypeCode`.
func AutoDetect(raw string) (string, error) {
	tok, err := wire.Tokenize(raw)
	if err != nil {
		return "", err
	}
	return tok.Application.MessageType, nil
}

// driver holds the mutable state of one parse: the consumption cursor over
// occurrences, the multiplicity map deciding which tags need "#N" slot-id
// suffixes, and the accumulated errors/warnings. One driver is used for
// exactly one ParseWithConfig call.
type driver struct {
	cfg    ParserConfig
	schema *messages.Schema
	occ    []wire.Occurrence
	msg    *Message

	consumed []bool
	cursor   int
	tagCount map[string]int // running count per slot-tag, for "#N" suffix assignment
	multi    map[string]bool
	errs     reporter.List

	// fastFailed is set once a fail-fast run hits its first error, so the
	// remaining schema walk short-circuits without doing further work.
	fastFailed bool
}

func (d *driver) run() {
	d.consumed = make([]bool, len(d.occ))
	d.tagCount = map[string]int{}
	d.multi = MultiplicityOf(d.schema)

	i := 0
	for i < len(d.schema.Slots) {
		if d.fastFailed {
			break
		}
		sl := d.schema.Slots[i]
		if sl.Sequence == "" {
			d.bindSlot(sl)
			i++
			continue
		}
		// Walk the contiguous run of slots sharing this sequence id as one
		// unit, repeating the whole run while its declared first tag keeps
		// reappearing next in the occurrence stream.
		seqID := sl.Sequence
		start := i
		for i < len(d.schema.Slots) && d.schema.Slots[i].Sequence == seqID {
			i++
		}
		run := d.schema.Slots[start:i]
		d.bindSequence(seqID, run)
	}

	if !d.fastFailed {
		d.sweepUnconsumed()
		d.evaluateConditionals()
	}
}

// slotID returns the map key a binding of tag should use: the bare tag for
// tags that can only ever be bound once in this schema, or tag+"#N" (1-based,
// incrementing across the whole message) for tags that can recur, whether
// because the slot is itself Repetitive, belongs to a repeatable sequence, or
// the same bare tag is declared at more than one schema position (e.g.
// MT202COV's "52" in both sequence A and sequence B).
func (d *driver) slotID(tag string) string {
	d.tagCount[tag]++
	if !d.multi[tag] {
		return tag
	}
	return fmt.Sprintf("%s#%d", tag, d.tagCount[tag])
}

// findNext scans occurrences from the cursor forward for the first
// unconsumed one whose tag matches slotTag (directly or via option-family
// discrimination), returning its index or -1.
func (d *driver) findNext(slotTag string) int {
	for i := d.cursor; i < len(d.occ); i++ {
		if d.consumed[i] {
			continue
		}
		if fields.SlotMatches(slotTag, d.occ[i].Tag) {
			return i
		}
	}
	return -1
}

func (d *driver) bindSlot(sl messages.Slot) {
	if sl.Presence == messages.Repetitive {
		d.bindRepetitive(sl)
		return
	}

	idx := d.findNext(sl.Tag)
	if idx == -1 {
		if sl.Presence == messages.Mandatory {
			d.emit(reporter.New(reporter.MissingRequiredField, 0,
				fmt.Sprintf("missing mandatory field %s", sl.Tag),
				"tag", sl.Tag, "message_type", d.schema.MessageType))
		}
		return
	}
	d.consume(idx, sl)
}

func (d *driver) bindRepetitive(sl messages.Slot) {
	count := 0
	for sl.Max == 0 || count < sl.Max {
		idx := d.findNext(sl.Tag)
		if idx == -1 {
			break
		}
		// After the first match, stop at the first unconsumed occurrence of
		// another tag rather than skipping over it.
		if count > 0 && idx != d.cursor {
			break
		}
		d.consume(idx, sl)
		count++
		if d.fastFailed {
			return
		}
	}
	if count < sl.Min {
		d.emit(reporter.New(reporter.MissingRequiredField, 0,
			fmt.Sprintf("field %s requires at least %d occurrence(s), found %d", sl.Tag, sl.Min, count),
			"tag", sl.Tag, "message_type", d.schema.MessageType))
	}
}

func (d *driver) bindSequence(seqID string, run []messages.Slot) {
	seq, _ := d.schema.SequenceByID(seqID)
	firstTag := seq.FirstTag
	if firstTag == "" {
		firstTag = run[0].Tag
	}
	iterations := 0
	for {
		if seq.Max != 0 && iterations >= seq.Max {
			break
		}
		idx := d.findNext(firstTag)
		if idx == -1 {
			break
		}
		for _, sl := range run {
			d.bindSlot(sl)
			if d.fastFailed {
				return
			}
		}
		iterations++
	}
	if iterations < seq.Min {
		d.emit(reporter.New(reporter.MissingRequiredField, 0,
			fmt.Sprintf("sequence %s requires at least %d occurrence(s), found %d", seqID, seq.Min, iterations),
			"tag", firstTag, "message_type", d.schema.MessageType))
	}
}

func (d *driver) consume(idx int, sl messages.Slot) {
	o := d.occ[idx]
	d.consumed[idx] = true
	if idx >= d.cursor {
		d.cursor = idx + 1
	}

	resolvedTag, f, perr := fields.ParseAtSlot(sl.Tag, o.Tag, o.Raw, reporter.NewPosition(o.Line, 1), o.Raw)
	if perr != nil {
		severity := reporter.SeverityError
		if sl.Presence != messages.Mandatory && !d.cfg.ValidateOptionalFields {
			severity = reporter.SeverityWarning
		}
		perr.Severity = severity
		d.emit(perr)
		return
	}

	if !fields.SlotMatches(sl.Tag, resolvedTag) {
		slog.Error("mt: bug: resolved tag does not match its own slot", "slot_tag", sl.Tag, "resolved_tag", resolvedTag)
	}

	id := d.slotID(sl.Tag)
	d.msg.Fields[id] = f
	d.msg.FieldTags[id] = resolvedTag
	d.msg.FieldIndex[id] = idx
	d.msg.FieldOrder = append(d.msg.FieldOrder, id)
}

// sweepUnconsumed classifies every occurrence the slot walk never bound:
// DuplicateOccurrence if its tag is declared by the schema somewhere (it
// simply recurred past that slot's cardinality), UnknownTag otherwise.
func (d *driver) sweepUnconsumed() {
	known := knownTagsOf(d.schema)
	for i, o := range d.occ {
		if d.consumed[i] {
			continue
		}
		if tagDeclaredIn(known, o.Tag) {
			sev := reporter.SeverityWarning
			if d.schema.ForbidUnknownTags {
				sev = reporter.SeverityError
			}
			e := reporter.New(reporter.DuplicateOccurrence, reporter.NewPosition(o.Line, 1),
				fmt.Sprintf("unexpected additional occurrence of field %s", o.Tag), "tag", o.Tag)
			e.Severity = sev
			d.emit(e)
		} else {
			sev := reporter.SeverityWarning
			if d.schema.ForbidUnknownTags {
				sev = reporter.SeverityError
			}
			e := reporter.New(reporter.UnknownTag, reporter.NewPosition(o.Line, 1),
				fmt.Sprintf("unknown field tag %s for message type %s", o.Tag, d.schema.MessageType),
				"tag", o.Tag, "message_type", d.schema.MessageType)
			e.Severity = sev
			d.emit(e)
		}
		d.msg.Unrecognized = append(d.msg.Unrecognized, UnboundOccurrence{Index: i, Occurrence: o})
	}
}

func (d *driver) evaluateConditionals() {
	for _, c := range d.schema.Conditionals {
		violated, involved := c.Check(d.msg)
		if violated {
			d.emit(reporter.New(reporter.Conditional, 0, c.Narrative,
				"rule", c.Code, "fields", fmt.Sprintf("%v", involved)))
		}
	}
}

func (d *driver) emit(e *reporter.Error) {
	d.errs = append(d.errs, e)
	if e.Severity != reporter.SeverityWarning && d.cfg.FailFast {
		d.fastFailed = true
	}
}

// MultiplicityOf precomputes, for a schema, which bare tags can end up bound
// more than once: Repetitive slots, slots belonging to a sequence that can
// itself repeat (Max == 0 or Max > 1), or a bare tag declared at more than
// one schema position (cross-sequence collisions like MT202COV's "52").
func MultiplicityOf(schema *messages.Schema) map[string]bool {
	count := map[string]int{}
	multi := map[string]bool{}
	for _, sl := range schema.Slots {
		count[sl.Tag]++
		if sl.Presence == messages.Repetitive {
			multi[sl.Tag] = true
		}
	}
	for _, seq := range schema.Sequences {
		if seq.Max == 0 || seq.Max > 1 {
			for _, sl := range schema.SlotsInSequence(seq.ID) {
				multi[sl.Tag] = true
			}
		}
	}
	for tag, n := range count {
		if n > 1 {
			multi[tag] = true
		}
	}
	return multi
}

// knownTagsOf returns every bare slot tag a schema declares, for
// distinguishing DuplicateOccurrence from UnknownTag during the sweep.
func knownTagsOf(schema *messages.Schema) map[string]bool {
	out := map[string]bool{}
	for _, sl := range schema.Slots {
		out[sl.Tag] = true
	}
	return out
}

func tagDeclaredIn(known map[string]bool, occTag string) bool {
	for schemaTag := range known {
		if fields.SlotMatches(schemaTag, occTag) {
			return true
		}
	}
	return false
}
