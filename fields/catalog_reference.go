package fields

import (
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

// Field20 is tag 20, Sender's Reference: a single 16x token used across
// almost every MT as the message's own identifier.
type Field20 struct {
	Reference string
}

var spec20 = formatspec.MustCompile("16x").WithNames("reference")

func (f *Field20) Tag() string { return "20" }
func (f *Field20) Render() (string, error) {
	return formatspec.Render(spec20, []formatspec.Value{{Name: "reference", Present: true, Raw: f.Reference}})
}
func parseField20(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec20, raw)
	if err != nil {
		return nil, wrapFormatError("20", pos, line, err)
	}
	return &Field20{Reference: str(vs, "reference")}, nil
}

// Field21 is tag 21, Related Reference.
type Field21 struct {
	Reference string
}

var spec21 = formatspec.MustCompile("16x").WithNames("reference")

func (f *Field21) Tag() string { return "21" }
func (f *Field21) Render() (string, error) {
	return formatspec.Render(spec21, []formatspec.Value{{Name: "reference", Present: true, Raw: f.Reference}})
}
func parseField21(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec21, raw)
	if err != nil {
		return nil, wrapFormatError("21", pos, line, err)
	}
	return &Field21{Reference: str(vs, "reference")}, nil
}

// Field23B is tag 23B, Bank Operation Code: one of a small closed set
// (CRED, CRTS, SPAY, SSTD, SPRI) but the field engine only enforces the
// 4!c grammar — the value set itself is a business rule, left external per
// spec.md §1.
type Field23B struct {
	Code string
}

var spec23B = formatspec.MustCompile("4!c").WithNames("code")

func (f *Field23B) Tag() string { return "23B" }
func (f *Field23B) Render() (string, error) {
	return formatspec.Render(spec23B, []formatspec.Value{{Name: "code", Present: true, Raw: f.Code}})
}
func parseField23B(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec23B, raw)
	if err != nil {
		return nil, wrapFormatError("23B", pos, line, err)
	}
	return &Field23B{Code: str(vs, "code")}, nil
}

// Field23E is tag 23E, Instruction Code, with an optional additional
// information suffix.
type Field23E struct {
	Code string
	Info string // optional
}

var spec23E = formatspec.MustCompile("4!c[/30x]").WithNames("code", "info")

func (f *Field23E) Tag() string { return "23E" }
func (f *Field23E) Render() (string, error) {
	vs := []formatspec.Value{{Name: "code", Present: true, Raw: f.Code}}
	if f.Info != "" {
		vs = append(vs, formatspec.Value{Name: "info", Present: true, Raw: f.Info})
	} else {
		vs = append(vs, formatspec.Value{Name: "info"})
	}
	return formatspec.Render(spec23E, vs)
}
func parseField23E(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec23E, raw)
	if err != nil {
		return nil, wrapFormatError("23E", pos, line, err)
	}
	return &Field23E{Code: str(vs, "code"), Info: str(vs, "info")}, nil
}

// Field26T is tag 26T, Transaction Type Code.
type Field26T struct {
	Code string
}

var spec26T = formatspec.MustCompile("3!c").WithNames("code")

func (f *Field26T) Tag() string { return "26T" }
func (f *Field26T) Render() (string, error) {
	return formatspec.Render(spec26T, []formatspec.Value{{Name: "code", Present: true, Raw: f.Code}})
}
func parseField26T(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec26T, raw)
	if err != nil {
		return nil, wrapFormatError("26T", pos, line, err)
	}
	return &Field26T{Code: str(vs, "code")}, nil
}

// Field72 is tag 72, Sender to Receiver Information: up to 6 lines of 35x.
type Field72 struct {
	Lines []string
}

var spec72 = formatspec.MustCompile("6*35x").WithNames("lines")

func (f *Field72) Tag() string { return "72" }
func (f *Field72) Render() (string, error) {
	return formatspec.Render(spec72, []formatspec.Value{{Name: "lines", Present: true, Lines: f.Lines}})
}
func parseField72(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec72, raw)
	if err != nil {
		return nil, wrapFormatError("72", pos, line, err)
	}
	return &Field72{Lines: lines(vs, "lines")}, nil
}

// Field70 is tag 70, Remittance Information: up to 4 lines of 35x free text.
type Field70 struct {
	Lines []string
}

var spec70 = formatspec.MustCompile("4*35x").WithNames("lines")

func (f *Field70) Tag() string { return "70" }
func (f *Field70) Render() (string, error) {
	return formatspec.Render(spec70, []formatspec.Value{{Name: "lines", Present: true, Lines: f.Lines}})
}
func parseField70(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec70, raw)
	if err != nil {
		return nil, wrapFormatError("70", pos, line, err)
	}
	return &Field70{Lines: lines(vs, "lines")}, nil
}

// Field77B is tag 77B, Regulatory Reporting: up to 3 lines of 35x.
type Field77B struct {
	Lines []string
}

var spec77B = formatspec.MustCompile("3*35x").WithNames("lines")

func (f *Field77B) Tag() string { return "77B" }
func (f *Field77B) Render() (string, error) {
	return formatspec.Render(spec77B, []formatspec.Value{{Name: "lines", Present: true, Lines: f.Lines}})
}
func parseField77B(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec77B, raw)
	if err != nil {
		return nil, wrapFormatError("77B", pos, line, err)
	}
	return &Field77B{Lines: lines(vs, "lines")}, nil
}

// Field77T is tag 77T, Envelope Contents (free-format container field used
// by MT798 and similar envelope messages).
type Field77T struct {
	Lines []string
}

var spec77T = formatspec.MustCompile("9*35x").WithNames("lines")

func (f *Field77T) Tag() string { return "77T" }
func (f *Field77T) Render() (string, error) {
	return formatspec.Render(spec77T, []formatspec.Value{{Name: "lines", Present: true, Lines: f.Lines}})
}
func parseField77T(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec77T, raw)
	if err != nil {
		return nil, wrapFormatError("77T", pos, line, err)
	}
	return &Field77T{Lines: lines(vs, "lines")}, nil
}

// Field79 is tag 79, Narrative: up to 35 lines of 50x, used by MT192/MT196
// and similar free-text query/answer messages.
type Field79 struct {
	Lines []string
}

var spec79 = formatspec.MustCompile("35*50x").WithNames("lines")

func (f *Field79) Tag() string { return "79" }
func (f *Field79) Render() (string, error) {
	return formatspec.Render(spec79, []formatspec.Value{{Name: "lines", Present: true, Lines: f.Lines}})
}
func parseField79(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec79, raw)
	if err != nil {
		return nil, wrapFormatError("79", pos, line, err)
	}
	return &Field79{Lines: lines(vs, "lines")}, nil
}

// Field19 is tag 19, Sum of Amounts.
type Field19 struct {
	Amount Amount
}

var spec19 = formatspec.MustCompile("17d").WithNames("amount")

func (f *Field19) Tag() string { return "19" }
func (f *Field19) Render() (string, error) {
	return formatspec.Render(spec19, []formatspec.Value{{Name: "amount", Present: true, Raw: f.Amount.Raw()}})
}
func parseField19(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec19, raw)
	if err != nil {
		return nil, wrapFormatError("19", pos, line, err)
	}
	amt, aerr := ParseAmount(str(vs, "amount"))
	if aerr != nil {
		return nil, wrapFormatError("19", pos, line, aerr)
	}
	return &Field19{Amount: amt}, nil
}

// Field71B is tag 71B, Details of Charges (statement variant): up to 6
// lines of 35x narrative.
type Field71B struct {
	Lines []string
}

var spec71B = formatspec.MustCompile("6*35x").WithNames("lines")

func (f *Field71B) Tag() string { return "71B" }
func (f *Field71B) Render() (string, error) {
	return formatspec.Render(spec71B, []formatspec.Value{{Name: "lines", Present: true, Lines: f.Lines}})
}
func parseField71B(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec71B, raw)
	if err != nil {
		return nil, wrapFormatError("71B", pos, line, err)
	}
	return &Field71B{Lines: lines(vs, "lines")}, nil
}

// Field25 is tag 25, Account Identification.
type Field25 struct {
	Account string
}

var spec25 = formatspec.MustCompile("35x").WithNames("account")

func (f *Field25) Tag() string { return "25" }
func (f *Field25) Render() (string, error) {
	return formatspec.Render(spec25, []formatspec.Value{{Name: "account", Present: true, Raw: f.Account}})
}
func parseField25(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	if len(raw) > 34 {
		return nil, wrapFormatError("25", pos, line, &formatspec.FormatError{ComponentName: "account", Expected: "at most 34x", Actual: raw})
	}
	vs, err := formatspec.Parse(spec25, raw)
	if err != nil {
		return nil, wrapFormatError("25", pos, line, err)
	}
	return &Field25{Account: str(vs, "account")}, nil
}

// Field28 is tag 28, Statement Number/Sequence Number.
type Field28 struct {
	StatementNumber string
	SequenceNumber  string // optional
}

var spec28 = formatspec.MustCompile("5n[/5n]").WithNames("statement", "sequence")

func (f *Field28) Tag() string { return "28" }
func (f *Field28) Render() (string, error) {
	vs := []formatspec.Value{{Name: "statement", Present: true, Raw: f.StatementNumber}}
	if f.SequenceNumber != "" {
		vs = append(vs, formatspec.Value{Name: "sequence", Present: true, Raw: f.SequenceNumber})
	} else {
		vs = append(vs, formatspec.Value{Name: "sequence"})
	}
	return formatspec.Render(spec28, vs)
}
func parseField28(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec28, raw)
	if err != nil {
		return nil, wrapFormatError("28", pos, line, err)
	}
	return &Field28{StatementNumber: str(vs, "statement"), SequenceNumber: str(vs, "sequence")}, nil
}

// Field28D is tag 28D, Message Index/Total.
type Field28D struct {
	MessageIndex string
	Total        string
}

var spec28D = formatspec.MustCompile("5n/5n").WithNames("index", "total")

func (f *Field28D) Tag() string { return "28D" }
func (f *Field28D) Render() (string, error) {
	return formatspec.Render(spec28D, []formatspec.Value{
		{Name: "index", Present: true, Raw: f.MessageIndex},
		{Name: "total", Present: true, Raw: f.Total},
	})
}
func parseField28D(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec28D, raw)
	if err != nil {
		return nil, wrapFormatError("28D", pos, line, err)
	}
	return &Field28D{MessageIndex: str(vs, "index"), Total: str(vs, "total")}, nil
}

// Field30 is tag 30, Value Date: a bare 6!n calendar date used by MT210's
// Notice to Receive to state when the expected funds will be available.
type Field30 struct {
	Date Date
}

var spec30 = formatspec.MustCompile("6!n").WithNames("date")

func (f *Field30) Tag() string { return "30" }
func (f *Field30) Render() (string, error) {
	return formatspec.Render(spec30, []formatspec.Value{{Name: "date", Present: true, Raw: f.Date.Raw()}})
}
func parseField30(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
	vs, err := formatspec.Parse(spec30, raw)
	if err != nil {
		return nil, wrapFormatError("30", pos, line, err)
	}
	date, derr := ParseDate(str(vs, "date"))
	if derr != nil {
		return nil, wrapFormatError("30", pos, line, derr)
	}
	return &Field30{Date: date}, nil
}

func init() {
	register(&CatalogEntry{Tag: "20", Spec: spec20, Parse: parseField20})
	register(&CatalogEntry{Tag: "21", Spec: spec21, Parse: parseField21})
	register(&CatalogEntry{Tag: "23B", Spec: spec23B, Parse: parseField23B})
	register(&CatalogEntry{Tag: "23E", Spec: spec23E, Parse: parseField23E})
	register(&CatalogEntry{Tag: "26T", Spec: spec26T, Parse: parseField26T})
	register(&CatalogEntry{Tag: "70", Spec: spec70, Parse: parseField70})
	register(&CatalogEntry{Tag: "72", Spec: spec72, Parse: parseField72})
	register(&CatalogEntry{Tag: "77B", Spec: spec77B, Parse: parseField77B})
	register(&CatalogEntry{Tag: "77T", Spec: spec77T, Parse: parseField77T})
	register(&CatalogEntry{Tag: "79", Spec: spec79, Parse: parseField79})
	register(&CatalogEntry{Tag: "19", Spec: spec19, Parse: parseField19})
	register(&CatalogEntry{Tag: "71B", Spec: spec71B, Parse: parseField71B})
	register(&CatalogEntry{Tag: "25", Spec: spec25, Parse: parseField25})
	register(&CatalogEntry{Tag: "28", Spec: spec28, Parse: parseField28})
	register(&CatalogEntry{Tag: "28D", Spec: spec28D, Parse: parseField28D})
	register(&CatalogEntry{Tag: "30", Spec: spec30, Parse: parseField30})
}
