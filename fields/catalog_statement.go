package fields

import (
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

// Balance is the shared shape of the MT940/MT942/MT950 balance fields (60F,
// 60M, 62F, 62M, 64, 65): a debit/credit mark, a value date, a currency and
// an amount. Every balance tag uses the same grammar; only the semantic
// meaning (opening, closing, available) differs, which is why spec.md
// groups them as separate slots sharing one shape rather than separate
// formats.
type Balance struct {
	Mark     string // "D" or "C"
	Date     Date
	Currency string
	Amount   Amount
}

var balanceSpec = formatspec.MustCompile("1!a6!n3!a15d").WithNames("mark", "date", "currency", "amount")

func parseBalance(tag, raw string, pos reporter.Position, line string) (Balance, *reporter.Error) {
	vs, err := formatspec.Parse(balanceSpec, raw)
	if err != nil {
		return Balance{}, wrapFormatError(tag, pos, line, err)
	}
	date, derr := ParseDate(str(vs, "date"))
	if derr != nil {
		return Balance{}, wrapFormatError(tag, pos, line, derr)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return Balance{}, wrapFormatError(tag, pos, line, aerr)
	}
	return Balance{Mark: str(vs, "mark"), Date: date, Currency: str(vs, "currency"), Amount: amt}, nil
}

func (b Balance) render(tag string) (string, error) {
	s, err := formatspec.Render(balanceSpec, []formatspec.Value{
		{Name: "mark", Present: true, Raw: b.Mark},
		{Name: "date", Present: true, Raw: b.Date.Raw()},
		{Name: "currency", Present: true, Raw: b.Currency},
		{Name: "amount", Present: true, Raw: b.Amount.Raw()},
	})
	if err != nil {
		return "", wrapRenderError(tag, err)
	}
	return s, nil
}

type Field60F struct{ Balance }
type Field60M struct{ Balance }
type Field62F struct{ Balance }
type Field62M struct{ Balance }
type Field64 struct{ Balance }
type Field65 struct{ Balance }

func (f *Field60F) Tag() string             { return "60F" }
func (f *Field60F) Render() (string, error) { return f.Balance.render("60F") }
func (f *Field60M) Tag() string             { return "60M" }
func (f *Field60M) Render() (string, error) { return f.Balance.render("60M") }
func (f *Field62F) Tag() string             { return "62F" }
func (f *Field62F) Render() (string, error) { return f.Balance.render("62F") }
func (f *Field62M) Tag() string             { return "62M" }
func (f *Field62M) Render() (string, error) { return f.Balance.render("62M") }
func (f *Field64) Tag() string              { return "64" }
func (f *Field64) Render() (string, error)  { return f.Balance.render("64") }
func (f *Field65) Tag() string              { return "65" }
func (f *Field65) Render() (string, error)  { return f.Balance.render("65") }

// Field61 is tag 61, Statement Line: the dense per-transaction line format
// used inside MT940/MT942's repeating statement sequence.
type Field61 struct {
	ValueDate       Date
	EntryDate       *Date
	DebitCredit     string // "D" or "C"
	FundsCode       string // optional reversal marker, e.g. "R"
	Amount          Amount
	TypeCode        string // e.g. "N" (SWIFT transaction) or "F" (first advice)
	TransactionType string // 3!c, e.g. "MSC", "CHG"
	Reference       string
	ExtraReference  string // optional bank reference after "//"
	Supplementary   string // optional
}

var spec61 = formatspec.MustCompile("6!n[4!n]1!a[1!a]15d1!a3!c16x[//16x][34x]").WithNames(
	"valueDate", "entryDate", "debitCredit", "fundsCode", "amount", "typeCode", "transactionType", "reference", "extraReference", "supplementary")

func (f *Field61) Tag() string { return "61" }
func (f *Field61) Render() (string, error) {
	vs := []formatspec.Value{
		{Name: "valueDate", Present: true, Raw: f.ValueDate.Raw()},
	}
	if f.EntryDate != nil {
		vs = append(vs, formatspec.Value{Name: "entryDate", Present: true, Raw: f.EntryDate.Raw()})
	} else {
		vs = append(vs, formatspec.Value{Name: "entryDate"})
	}
	vs = append(vs, formatspec.Value{Name: "debitCredit", Present: true, Raw: f.DebitCredit})
	if f.FundsCode != "" {
		vs = append(vs, formatspec.Value{Name: "fundsCode", Present: true, Raw: f.FundsCode})
	} else {
		vs = append(vs, formatspec.Value{Name: "fundsCode"})
	}
	vs = append(vs,
		formatspec.Value{Name: "amount", Present: true, Raw: f.Amount.Raw()},
		formatspec.Value{Name: "typeCode", Present: true, Raw: f.TypeCode},
		formatspec.Value{Name: "transactionType", Present: true, Raw: f.TransactionType},
		formatspec.Value{Name: "reference", Present: true, Raw: f.Reference},
	)
	if f.ExtraReference != "" {
		vs = append(vs, formatspec.Value{Name: "extraReference", Present: true, Raw: f.ExtraReference})
	} else {
		vs = append(vs, formatspec.Value{Name: "extraReference"})
	}
	if f.Supplementary != "" {
		vs = append(vs, formatspec.Value{Name: "supplementary", Present: true, Raw: f.Supplementary})
	} else {
		vs = append(vs, formatspec.Value{Name: "supplementary"})
	}
	s, err := formatspec.Render(spec61, vs)
	if err != nil {
		return "", wrapRenderError("61", err)
	}
	return s, nil
}

func parseField61(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec61, raw)
	if err != nil {
		return nil, wrapFormatError("61", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("61", pos, line, aerr)
	}
	valueDate, derr := ParseDate(str(vs, "valueDate"))
	if derr != nil {
		return nil, wrapFormatError("61", pos, line, derr)
	}
	f := &Field61{
		ValueDate:       valueDate,
		DebitCredit:     str(vs, "debitCredit"),
		FundsCode:       str(vs, "fundsCode"),
		Amount:          amt,
		TypeCode:        str(vs, "typeCode"),
		TransactionType: str(vs, "transactionType"),
		Reference:       str(vs, "reference"),
		ExtraReference:  str(vs, "extraReference"),
		Supplementary:   str(vs, "supplementary"),
	}
	if present(vs, "entryDate") {
		// entryDate on the wire is 4!n (MMDD, no year): reuse ValueDate's year.
		d, perr := parseEntryDate(str(vs, "entryDate"), valueDate.Year)
		if perr != nil {
			return nil, wrapFormatError("61", pos, line, perr)
		}
		f.EntryDate = &d
	}
	return f, nil
}

func parseEntryDate(mmdd string, year int) (Date, error) {
	if len(mmdd) != 4 {
		return Date{}, formatErrorf("entryDate", "4!n", mmdd)
	}
	full, err := ParseDate(itoa2(year) + mmdd)
	if err != nil {
		return Date{}, err
	}
	return full, nil
}

func itoa2(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func formatErrorf(component, expected, actual string) error {
	return &formatspec.FormatError{ComponentName: component, Expected: expected, Actual: actual}
}

// Field86 is tag 86, Information to Account Owner: up to 6 lines of 65x.
type Field86 struct {
	Lines []string
}

var spec86 = formatspec.MustCompile("6*65x").WithNames("lines")

func (f *Field86) Tag() string { return "86" }
func (f *Field86) Render() (string, error) {
	return formatspec.Render(spec86, []formatspec.Value{{Name: "lines", Present: true, Lines: f.Lines}})
}
func parseField86(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec86, raw)
	if err != nil {
		return nil, wrapFormatError("86", pos, line, err)
	}
	return &Field86{Lines: lines(vs, "lines")}, nil
}

// Field93B is tag 93B, Number and Sum of Entries (a simplified
// count/currency/amount shape; the full SWIFT 90C/90D pair used by MT942 is
// not separately modeled here since spec.md names only 93B).
type Field93B struct {
	Count    string
	Currency string
	Amount   Amount
}

var spec93B = formatspec.MustCompile("5n3!a15d").WithNames("count", "currency", "amount")

func (f *Field93B) Tag() string { return "93B" }
func (f *Field93B) Render() (string, error) {
	return formatspec.Render(spec93B, []formatspec.Value{
		{Name: "count", Present: true, Raw: f.Count},
		{Name: "currency", Present: true, Raw: f.Currency},
		{Name: "amount", Present: true, Raw: f.Amount.Raw()},
	})
}
func parseField93B(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec93B, raw)
	if err != nil {
		return nil, wrapFormatError("93B", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("93B", pos, line, aerr)
	}
	return &Field93B{Count: str(vs, "count"), Currency: str(vs, "currency"), Amount: amt}, nil
}

// Field94A is tag 94A, Scope of Operation.
type Field94A struct {
	Code string
}

var spec94A = formatspec.MustCompile("4!c").WithNames("code")

func (f *Field94A) Tag() string { return "94A" }
func (f *Field94A) Render() (string, error) {
	return formatspec.Render(spec94A, []formatspec.Value{{Name: "code", Present: true, Raw: f.Code}})
}
func parseField94A(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec94A, raw)
	if err != nil {
		return nil, wrapFormatError("94A", pos, line, err)
	}
	return &Field94A{Code: str(vs, "code")}, nil
}

func init() {
	register(&CatalogEntry{Tag: "60F", Spec: balanceSpec, Parse: func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		b, err := parseBalance("60F", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field60F{b}, nil
	}})
	register(&CatalogEntry{Tag: "60M", Spec: balanceSpec, Parse: func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		b, err := parseBalance("60M", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field60M{b}, nil
	}})
	register(&CatalogEntry{Tag: "62F", Spec: balanceSpec, Parse: func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		b, err := parseBalance("62F", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field62F{b}, nil
	}})
	register(&CatalogEntry{Tag: "62M", Spec: balanceSpec, Parse: func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		b, err := parseBalance("62M", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field62M{b}, nil
	}})
	register(&CatalogEntry{Tag: "64", Spec: balanceSpec, Parse: func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		b, err := parseBalance("64", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field64{b}, nil
	}})
	register(&CatalogEntry{Tag: "65", Spec: balanceSpec, Parse: func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		b, err := parseBalance("65", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field65{b}, nil
	}})
	register(&CatalogEntry{Tag: "61", Spec: spec61, Parse: parseField61})
	register(&CatalogEntry{Tag: "86", Spec: spec86, Parse: parseField86})
	register(&CatalogEntry{Tag: "93B", Spec: spec93B, Parse: parseField93B})
	register(&CatalogEntry{Tag: "94A", Spec: spec94A, Parse: parseField94A})
}
