package fields

import (
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

// Field32A is tag 32A, Value Date/Currency/Interbank Settled Amount — the
// workhorse amount field of MT103/MT202 and most payment instructions.
type Field32A struct {
	ValueDate Date
	Currency  string
	Amount    Amount
}

var spec32A = formatspec.MustCompile("6!n3!a15d").WithNames("date", "currency", "amount")

func (f *Field32A) Tag() string { return "32A" }
func (f *Field32A) Render() (string, error) {
	return formatspec.Render(spec32A, []formatspec.Value{
		{Name: "date", Present: true, Raw: f.ValueDate.Raw()},
		{Name: "currency", Present: true, Raw: f.Currency},
		{Name: "amount", Present: true, Raw: f.Amount.Raw()},
	})
}
func parseField32A(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec32A, raw)
	if err != nil {
		return nil, wrapFormatError("32A", pos, line, err)
	}
	date, derr := ParseDate(str(vs, "date"))
	if derr != nil {
		return nil, wrapFormatError("32A", pos, line, derr)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("32A", pos, line, aerr)
	}
	return &Field32A{ValueDate: date, Currency: str(vs, "currency"), Amount: amt}, nil
}

// Field32B is tag 32B, Currency/Transaction Amount (no value date).
type Field32B struct {
	Currency string
	Amount   Amount
}

var spec32B = formatspec.MustCompile("3!a15d").WithNames("currency", "amount")

func (f *Field32B) Tag() string { return "32B" }
func (f *Field32B) Render() (string, error) {
	return formatspec.Render(spec32B, []formatspec.Value{
		{Name: "currency", Present: true, Raw: f.Currency},
		{Name: "amount", Present: true, Raw: f.Amount.Raw()},
	})
}
func parseField32B(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec32B, raw)
	if err != nil {
		return nil, wrapFormatError("32B", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("32B", pos, line, aerr)
	}
	return &Field32B{Currency: str(vs, "currency"), Amount: amt}, nil
}

// Field33B is tag 33B, Currency/Original Ordered Amount.
type Field33B struct {
	Currency string
	Amount   Amount
}

var spec33B = formatspec.MustCompile("3!a15d").WithNames("currency", "amount")

func (f *Field33B) Tag() string { return "33B" }
func (f *Field33B) Render() (string, error) {
	return formatspec.Render(spec33B, []formatspec.Value{
		{Name: "currency", Present: true, Raw: f.Currency},
		{Name: "amount", Present: true, Raw: f.Amount.Raw()},
	})
}
func parseField33B(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec33B, raw)
	if err != nil {
		return nil, wrapFormatError("33B", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("33B", pos, line, aerr)
	}
	return &Field33B{Currency: str(vs, "currency"), Amount: amt}, nil
}

// Field36 is tag 36, Exchange Rate.
type Field36 struct {
	Rate Amount
}

var spec36 = formatspec.MustCompile("12d").WithNames("rate")

func (f *Field36) Tag() string { return "36" }
func (f *Field36) Render() (string, error) {
	return formatspec.Render(spec36, []formatspec.Value{{Name: "rate", Present: true, Raw: f.Rate.Raw()}})
}
func parseField36(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec36, raw)
	if err != nil {
		return nil, wrapFormatError("36", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "rate"))
	if aerr != nil {
		return nil, wrapFormatError("36", pos, line, aerr)
	}
	return &Field36{Rate: amt}, nil
}

// Field71A is tag 71A, Details of Charges: one of BEN/OUR/SHA, enforced as
// a 3!a grammar here; the specific code set is a business rule left
// external per spec.md §1.
type Field71A struct {
	Code string
}

var spec71A = formatspec.MustCompile("3!a").WithNames("code")

func (f *Field71A) Tag() string { return "71A" }
func (f *Field71A) Render() (string, error) {
	return formatspec.Render(spec71A, []formatspec.Value{{Name: "code", Present: true, Raw: f.Code}})
}
func parseField71A(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec71A, raw)
	if err != nil {
		return nil, wrapFormatError("71A", pos, line, err)
	}
	return &Field71A{Code: str(vs, "code")}, nil
}

// Field71F is tag 71F, Sender's Charges.
type Field71F struct {
	Currency string
	Amount   Amount
}

var spec71F = formatspec.MustCompile("3!a15d").WithNames("currency", "amount")

func (f *Field71F) Tag() string { return "71F" }
func (f *Field71F) Render() (string, error) {
	return formatspec.Render(spec71F, []formatspec.Value{
		{Name: "currency", Present: true, Raw: f.Currency},
		{Name: "amount", Present: true, Raw: f.Amount.Raw()},
	})
}
func parseField71F(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec71F, raw)
	if err != nil {
		return nil, wrapFormatError("71F", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("71F", pos, line, aerr)
	}
	return &Field71F{Currency: str(vs, "currency"), Amount: amt}, nil
}

// Field71G is tag 71G, Receiver's Charges.
type Field71G struct {
	Currency string
	Amount   Amount
}

var spec71G = formatspec.MustCompile("3!a15d").WithNames("currency", "amount")

func (f *Field71G) Tag() string { return "71G" }
func (f *Field71G) Render() (string, error) {
	return formatspec.Render(spec71G, []formatspec.Value{
		{Name: "currency", Present: true, Raw: f.Currency},
		{Name: "amount", Present: true, Raw: f.Amount.Raw()},
	})
}
func parseField71G(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec71G, raw)
	if err != nil {
		return nil, wrapFormatError("71G", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("71G", pos, line, aerr)
	}
	return &Field71G{Currency: str(vs, "currency"), Amount: amt}, nil
}

func init() {
	register(&CatalogEntry{Tag: "32A", Spec: spec32A, Parse: parseField32A})
	register(&CatalogEntry{Tag: "32B", Spec: spec32B, Parse: parseField32B})
	register(&CatalogEntry{Tag: "33B", Spec: spec33B, Parse: parseField33B})
	register(&CatalogEntry{Tag: "36", Spec: spec36, Parse: parseField36})
	register(&CatalogEntry{Tag: "71A", Spec: spec71A, Parse: parseField71A})
	register(&CatalogEntry{Tag: "71F", Spec: spec71F, Parse: parseField71F})
	register(&CatalogEntry{Tag: "71G", Spec: spec71G, Parse: parseField71G})
}
