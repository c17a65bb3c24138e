// Package fields is the field engine and catalog: one Go type per SWIFT
// field tag/option (spec.md §4.3), each pairing a compiled formatspec.Spec
// with named component accessors. Parse turns a wire-form occurrence value
// into a typed Field; Render inverts it. Option families (tags with more
// than one letter variant, e.g. 50 = A|F|K) are tagged unions discriminated
// by a declared priority list, grounded on the teacher's
// interpret-against-a-descriptor pattern in options/options.go.
package fields

import (
	"fmt"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

// Field is implemented by every typed field value in the catalog, including
// each member of an option family (Field50A, Field50F, Field50K, ...). An
// option family has no wrapper type of its own: this interface is the union,
// and the concrete type tells which variant parsed.
type Field interface {
	// Tag returns the full wire tag this value renders under, including any
	// option letter (e.g. "32A", "50K").
	Tag() string
	// Render inverts Parse: produces the spec-conformant wire value (the
	// text that follows ":TAG:").
	Render() (string, error)
}

// value looks up a named component in a parsed tuple. Absent/unknown names
// return the zero Value (Present == false).
func value(vs []formatspec.Value, name string) formatspec.Value {
	for _, v := range vs {
		if v.Name == name {
			return v
		}
	}
	return formatspec.Value{Name: name}
}

func str(vs []formatspec.Value, name string) string {
	return value(vs, name).Raw
}

func lines(vs []formatspec.Value, name string) []string {
	return value(vs, name).Lines
}

func present(vs []formatspec.Value, name string) bool {
	return value(vs, name).Present
}

// wrapFormatError enriches a *formatspec.FormatError (or any error from a
// semantic decode like ParseDate/ParseBIC) with the field's canonical tag
// and the occurrence's source line, per spec.md §7's propagation policy:
// "the field engine enriches [format errors] with the field tag and line
// number."
func wrapFormatError(tag string, pos reporter.Position, line string, err error) *reporter.Error {
	var componentIndex, expected, actual, component string
	if fe, ok := err.(*formatspec.FormatError); ok {
		componentIndex = fmt.Sprintf("%d", fe.ComponentIndex)
		expected = fe.Expected
		actual = fe.Actual
		component = fe.ComponentName
	} else {
		actual = err.Error()
	}
	re := reporter.New(reporter.InvalidFieldFormat, pos,
		fmt.Sprintf("field %s: %s", tag, err.Error()),
		"tag", tag, "component", component, "component_index", componentIndex,
		"expected", expected, "actual", actual)
	re.Line = line
	return re.Wrap(err)
}

// wrapRenderError enriches a render-time constraint violation with the
// field's tag, matching spec.md's RenderError kind.
func wrapRenderError(tag string, err error) *reporter.Error {
	return reporter.New(reporter.RenderError, 0,
		fmt.Sprintf("field %s: %s", tag, err.Error()), "tag", tag).Wrap(err)
}

// CatalogEntry is one row of the field catalog: a compiled format spec (for
// documentation/introspection) plus the parse/render/sample functions for a
// single field tag or option letter. Option families register one
// CatalogEntry per letter plus a Family entry carrying the discrimination
// order.
type CatalogEntry struct {
	Tag    string // full tag including option letter, e.g. "32A"; family entries use the bare tag, e.g. "50"
	Spec   *formatspec.Spec
	Parse  func(raw string, pos reporter.Position, line string) (Field, *reporter.Error)
	Sample func(rng SampleSource, cfg any) Field

	// Family discrimination: non-empty only on the bare-tag entry for an
	// option family. Order is the priority in which option letters are
	// tried when an occurrence's tag carries no letter (spec.md §4.3).
	FamilyOrder []string
}

// SampleSource is the minimal randomness surface the catalog's default
// generators need; sample.Generator implements it. Kept as an interface
// here (rather than importing package sample, which would create an import
// cycle) so the catalog can generate defaults without depending on the
// sample package's config types.
type SampleSource interface {
	Intn(n int) int
	Float64() float64
	Choice(options []string) string
	Digits(n int) string
	Alpha(n int) string
}

// Catalog is the process-global, read-only registry of every field tag and
// option family, keyed by full tag (leaf entries) or bare tag (family
// entries). Populated by init() in each catalog_*.go file.
var Catalog = map[string]*CatalogEntry{}

func register(e *CatalogEntry) {
	if _, dup := Catalog[e.Tag]; dup {
		panic("fields: duplicate catalog registration for tag " + e.Tag)
	}
	Catalog[e.Tag] = e
}

// Lookup resolves a bare or lettered tag to its CatalogEntry. ok is false
// for unknown tags (spec.md's UnknownTag case).
func Lookup(tag string) (*CatalogEntry, bool) {
	e, ok := Catalog[tag]
	return e, ok
}

// ParseOccurrence parses raw against the catalog entry for tag. When tag
// names an option family member directly (e.g. "50K") the specific option is
// enforced. When tag is a bare family tag (e.g. "50") with no matching
// leaf entry, the caller is expected to have already resolved it via
// ParseFamily.
func ParseOccurrence(tag, raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	entry, ok := Catalog[tag]
	if !ok {
		return nil, reporter.New(reporter.UnknownTag, pos,
			fmt.Sprintf("unknown field tag %q", tag), "tag", tag)
	}
	return entry.Parse(raw, pos, line)
}

// ParseFamily discriminates a letter-less family tag (e.g. "50") by trying
// each option in FamilyOrder and taking the first that parses completely,
// per spec.md §4.3's "try options in a declared priority order" rule. It
// returns the resolved tag (with letter) alongside the parsed Field.
func ParseFamily(bareTag, raw string, pos reporter.Position, line string) (resolvedTag string, f Field, rerr *reporter.Error) {
	family, ok := Catalog[bareTag]
	if !ok || len(family.FamilyOrder) == 0 {
		return "", nil, reporter.New(reporter.UnknownTag, pos,
			fmt.Sprintf("unknown field family %q", bareTag), "tag", bareTag)
	}
	var lastErr *reporter.Error
	for _, letter := range family.FamilyOrder {
		entry, ok := Catalog[bareTag+letter]
		if !ok {
			continue
		}
		field, err := entry.Parse(raw, pos, line)
		if err == nil {
			return bareTag + letter, field, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return "", nil, lastErr
	}
	return "", nil, reporter.New(reporter.InvalidFieldFormat, pos,
		fmt.Sprintf("field %s: no option variant matched", bareTag), "tag", bareTag)
}

// SlotMatches reports whether occTag is an acceptable wire tag for a message
// schema slot declared with the given canonical (schema) tag: either an
// exact match, or — for an option family — occTag carrying one of the
// family's declared option letters.
func SlotMatches(schemaTag, occTag string) bool {
	if occTag == schemaTag {
		return true
	}
	entry, ok := Catalog[schemaTag]
	if !ok {
		return false
	}
	for _, letter := range entry.FamilyOrder {
		if letter != "" && occTag == schemaTag+letter {
			return true
		}
	}
	return false
}

// ParseAtSlot parses an occurrence already known (via SlotMatches) to belong
// to the schema slot canonicalTag, resolving option-family discrimination
// when the occurrence carries no letter and the declared slot's entry has no
// direct parser of its own (a true family like "50"; contrast "59", whose
// bare tag is directly parseable per catalog_party.go).
func ParseAtSlot(canonicalTag, occTag, raw string, pos reporter.Position, line string) (resolvedTag string, f Field, rerr *reporter.Error) {
	if occTag != canonicalTag {
		return ParseOccurrenceResolved(occTag, raw, pos, line)
	}
	entry, ok := Catalog[canonicalTag]
	if !ok {
		return "", nil, reporter.New(reporter.UnknownTag, pos, fmt.Sprintf("unknown field tag %q", canonicalTag), "tag", canonicalTag)
	}
	if entry.Parse != nil {
		field, err := entry.Parse(raw, pos, line)
		if err != nil {
			return "", nil, err
		}
		return occTag, field, nil
	}
	return ParseFamily(canonicalTag, raw, pos, line)
}

// ParseOccurrenceResolved parses an occurrence whose wire tag already
// carries its option letter (or has none and needs none), returning that
// same tag back as resolvedTag for symmetry with ParseAtSlot/ParseFamily.
func ParseOccurrenceResolved(tag, raw string, pos reporter.Position, line string) (resolvedTag string, f Field, rerr *reporter.Error) {
	field, err := ParseOccurrence(tag, raw, pos, line)
	if err != nil {
		return "", nil, err
	}
	return tag, field, nil
}
