package fields

import (
	"strings"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/formatspec"
	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

// Party field shapes. SWIFT party/institution fields (50, 52-59) are
// multi-line values whose optional account-line prefix and trailing
// free-text lines cannot both be expressed as a single formatspec.Spec: the
// format grammar has no line-break component, and a repetitive ('4*35x')
// component always takes every remaining line of the value
// (formatspec/match.go's matchRepetitive), so it can only ever be the final
// component of a spec. Every party
// field here is therefore split on its account-line boundary by hand first
// — mirroring how hand-written SWIFT parsers treat the "/account" prefix
// line as a distinct token before handing the remainder to the format
// engine — and only the remainder is run back through formatspec.

func splitAccountPrefix(raw string) (account string, hasAccount bool, rest string) {
	nl := strings.IndexByte(raw, '\n')
	var firstLine string
	if nl == -1 {
		firstLine, rest = raw, ""
	} else {
		firstLine, rest = raw[:nl], raw[nl+1:]
	}
	if strings.HasPrefix(firstLine, "/") {
		return firstLine[1:], true, rest
	}
	return "", false, raw
}

// PartyBIC is the shape of option-A party fields: an optional account line
// followed by a BIC, e.g. "/ACCOUNT123\nDEUTDEFFXXX".
type PartyBIC struct {
	Account     string
	HasAccount  bool
	Institution BIC
}

var bicLineSpec = formatspec.MustCompile("4!a2!a2!c[3!c]").WithNames("bank", "country", "location", "branch")

func parsePartyBIC(tag, raw string, pos reporter.Position, line string) (PartyBIC, *reporter.Error) {
	account, has, rest := splitAccountPrefix(raw)
	if !has {
		account, rest = "", raw
	}
	if account != "" && len(account) > 34 {
		return PartyBIC{}, wrapFormatError(tag, pos, line, &formatspec.FormatError{ComponentName: "account", Expected: "at most 34x", Actual: account})
	}
	vs, err := formatspec.Parse(bicLineSpec, rest)
	if err != nil {
		return PartyBIC{}, wrapFormatError(tag, pos, line, err)
	}
	bic, berr := ParseBIC(bicComponentsRaw(vs))
	if berr != nil {
		return PartyBIC{}, wrapFormatError(tag, pos, line, berr)
	}
	return PartyBIC{Account: account, HasAccount: has, Institution: bic}, nil
}

func bicComponentsRaw(vs []formatspec.Value) string {
	s := str(vs, "bank") + str(vs, "country") + str(vs, "location")
	if present(vs, "branch") {
		s += str(vs, "branch")
	}
	return s
}

func (p PartyBIC) render(tag string) (string, error) {
	vs := []formatspec.Value{
		{Name: "bank", Present: true, Raw: p.Institution.InstitutionCode},
		{Name: "country", Present: true, Raw: p.Institution.CountryCode},
		{Name: "location", Present: true, Raw: p.Institution.LocationCode},
	}
	if p.Institution.BranchCode != "" {
		vs = append(vs, formatspec.Value{Name: "branch", Present: true, Raw: p.Institution.BranchCode})
	} else {
		vs = append(vs, formatspec.Value{Name: "branch"})
	}
	bicLine, err := formatspec.Render(bicLineSpec, vs)
	if err != nil {
		return "", wrapRenderError(tag, err)
	}
	if p.HasAccount {
		return "/" + p.Account + "\n" + bicLine, nil
	}
	return bicLine, nil
}

// PartyNameAddress is the shape of option-D/K (and letter-less 59) party
// fields: an optional account line followed by up to 4 lines of free-text
// name/address.
type PartyNameAddress struct {
	Account    string
	HasAccount bool
	Lines      []string
}

var nameAddressSpec = formatspec.MustCompile("4*35x").WithNames("lines")

func parsePartyNameAddress(tag, raw string, pos reporter.Position, line string) (PartyNameAddress, *reporter.Error) {
	account, has, rest := splitAccountPrefix(raw)
	if account != "" && len(account) > 34 {
		return PartyNameAddress{}, wrapFormatError(tag, pos, line, &formatspec.FormatError{ComponentName: "account", Expected: "at most 34x", Actual: account})
	}
	vs, err := formatspec.Parse(nameAddressSpec, rest)
	if err != nil {
		return PartyNameAddress{}, wrapFormatError(tag, pos, line, err)
	}
	return PartyNameAddress{Account: account, HasAccount: has, Lines: lines(vs, "lines")}, nil
}

func (p PartyNameAddress) render(tag string) (string, error) {
	rest, err := formatspec.Render(nameAddressSpec, []formatspec.Value{{Name: "lines", Present: true, Lines: p.Lines}})
	if err != nil {
		return "", wrapRenderError(tag, err)
	}
	if p.HasAccount {
		return "/" + p.Account + "\n" + rest, nil
	}
	return rest, nil
}

// PartyLocation is the shape of option-B party fields: an optional account
// line followed by at most one line of free-text location.
type PartyLocation struct {
	Account    string
	HasAccount bool
	Location   string
}

func parsePartyLocation(tag, raw string, pos reporter.Position, line string) (PartyLocation, *reporter.Error) {
	account, has, rest := splitAccountPrefix(raw)
	if account != "" && len(account) > 34 {
		return PartyLocation{}, wrapFormatError(tag, pos, line, &formatspec.FormatError{ComponentName: "account", Expected: "at most 34x", Actual: account})
	}
	if strings.Contains(rest, "\n") || len(rest) > 35 || !formatspec.ClassSwiftX.AcceptsString(rest) {
		return PartyLocation{}, wrapFormatError(tag, pos, line, &formatspec.FormatError{ComponentName: "location", Expected: "at most 35x", Actual: rest})
	}
	return PartyLocation{Account: account, HasAccount: has, Location: rest}, nil
}

func (p PartyLocation) render(tag string) (string, error) {
	if p.HasAccount {
		if p.Location == "" {
			return "/" + p.Account, nil
		}
		return "/" + p.Account + "\n" + p.Location, nil
	}
	return p.Location, nil
}

// PartyAccountOnly is the shape of option-C party fields: a mandatory
// account line with no further content (e.g. "/DE89370400440532013000").
type PartyAccountOnly struct {
	Account string
}

func parsePartyAccountOnly(tag, raw string, pos reporter.Position, line string) (PartyAccountOnly, *reporter.Error) {
	if !strings.HasPrefix(raw, "/") {
		return PartyAccountOnly{}, wrapFormatError(tag, pos, line, &formatspec.FormatError{ComponentName: "account", Expected: "/34x", Actual: raw})
	}
	account := raw[1:]
	if len(account) > 34 || !formatspec.ClassSwiftX.AcceptsString(account) {
		return PartyAccountOnly{}, wrapFormatError(tag, pos, line, &formatspec.FormatError{ComponentName: "account", Expected: "at most 34x", Actual: account})
	}
	return PartyAccountOnly{Account: account}, nil
}

func (p PartyAccountOnly) render(tag string) (string, error) {
	return "/" + p.Account, nil
}

// PartyStructured is the shape of option-F party fields: a structured
// identifier line followed by up to 4 lines of name/address.
type PartyStructured struct {
	Identifier string
	Lines      []string
}

func parsePartyStructured(tag, raw string, pos reporter.Position, line string) (PartyStructured, *reporter.Error) {
	parts := strings.SplitN(raw, "\n", 2)
	ident := parts[0]
	if len(ident) > 35 || !formatspec.ClassSwiftX.AcceptsString(ident) {
		return PartyStructured{}, wrapFormatError(tag, pos, line, &formatspec.FormatError{ComponentName: "identifier", Expected: "at most 35x", Actual: ident})
	}
	rest := ""
	if len(parts) == 2 {
		rest = parts[1]
	}
	vs, err := formatspec.Parse(nameAddressSpec, rest)
	if err != nil {
		return PartyStructured{}, wrapFormatError(tag, pos, line, err)
	}
	return PartyStructured{Identifier: ident, Lines: lines(vs, "lines")}, nil
}

func (p PartyStructured) render(tag string) (string, error) {
	rest, err := formatspec.Render(nameAddressSpec, []formatspec.Value{{Name: "lines", Present: true, Lines: p.Lines}})
	if err != nil {
		return "", wrapRenderError(tag, err)
	}
	if rest == "" {
		return p.Identifier, nil
	}
	return p.Identifier + "\n" + rest, nil
}

// --- Sample generators ---
//
// Each party shape's Sample closure produces a plausible populated value
// directly (never through formatspec.Spec, since these shapes are hand-split
// on their account-line prefix per the package comment above); sample.Generate
// renders the returned Field the same way the parser's driver would.

func sampleBIC(rng SampleSource, allowAccount bool) PartyBIC {
	p := PartyBIC{Institution: BIC{
		InstitutionCode: rng.Alpha(4),
		CountryCode:     rng.Alpha(2),
		LocationCode:    rng.Alpha(2),
	}}
	if rng.Float64() < 0.3 {
		p.Institution.BranchCode = rng.Alpha(3)
	}
	if allowAccount && rng.Float64() < 0.4 {
		p.HasAccount = true
		p.Account = rng.Digits(12)
	}
	return p
}

func sampleNameAddress(rng SampleSource) PartyNameAddress {
	lines := make([]string, 1+rng.Intn(3))
	for i := range lines {
		lines[i] = rng.Alpha(1 + rng.Intn(20))
	}
	p := PartyNameAddress{Lines: lines}
	if rng.Float64() < 0.4 {
		p.HasAccount = true
		p.Account = rng.Digits(12)
	}
	return p
}

func sampleLocation(rng SampleSource) PartyLocation {
	p := PartyLocation{Location: rng.Alpha(1 + rng.Intn(20))}
	if rng.Float64() < 0.4 {
		p.HasAccount = true
		p.Account = rng.Digits(12)
	}
	return p
}

func sampleAccountOnly(rng SampleSource) PartyAccountOnly {
	return PartyAccountOnly{Account: rng.Digits(10 + rng.Intn(10))}
}

func sampleStructured(rng SampleSource) PartyStructured {
	lines := make([]string, rng.Intn(3))
	for i := range lines {
		lines[i] = rng.Alpha(1 + rng.Intn(20))
	}
	return PartyStructured{Identifier: rng.Alpha(1 + rng.Intn(15)), Lines: lines}
}

// --- Field 50: Ordering Customer (A | F | K) ---

type Field50A struct{ PartyBIC }
type Field50F struct{ PartyStructured }
type Field50K struct{ PartyNameAddress }

func (f *Field50A) Tag() string              { return "50A" }
func (f *Field50A) Render() (string, error)  { return f.PartyBIC.render("50A") }
func (f *Field50F) Tag() string              { return "50F" }
func (f *Field50F) Render() (string, error)  { return f.PartyStructured.render("50F") }
func (f *Field50K) Tag() string              { return "50K" }
func (f *Field50K) Render() (string, error)  { return f.PartyNameAddress.render("50K") }

// --- Field 52: Ordering Institution (A | D) ---

type Field52A struct{ PartyBIC }
type Field52D struct{ PartyNameAddress }

func (f *Field52A) Tag() string             { return "52A" }
func (f *Field52A) Render() (string, error) { return f.PartyBIC.render("52A") }
func (f *Field52D) Tag() string             { return "52D" }
func (f *Field52D) Render() (string, error) { return f.PartyNameAddress.render("52D") }

// --- Field 53: Sender's Correspondent (A | B | D) ---

type Field53A struct{ PartyBIC }
type Field53B struct{ PartyLocation }
type Field53D struct{ PartyNameAddress }

func (f *Field53A) Tag() string             { return "53A" }
func (f *Field53A) Render() (string, error) { return f.PartyBIC.render("53A") }
func (f *Field53B) Tag() string             { return "53B" }
func (f *Field53B) Render() (string, error) { return f.PartyLocation.render("53B") }
func (f *Field53D) Tag() string             { return "53D" }
func (f *Field53D) Render() (string, error) { return f.PartyNameAddress.render("53D") }

// --- Field 54: Receiver's Correspondent (A | B | D) ---

type Field54A struct{ PartyBIC }
type Field54B struct{ PartyLocation }
type Field54D struct{ PartyNameAddress }

func (f *Field54A) Tag() string             { return "54A" }
func (f *Field54A) Render() (string, error) { return f.PartyBIC.render("54A") }
func (f *Field54B) Tag() string             { return "54B" }
func (f *Field54B) Render() (string, error) { return f.PartyLocation.render("54B") }
func (f *Field54D) Tag() string             { return "54D" }
func (f *Field54D) Render() (string, error) { return f.PartyNameAddress.render("54D") }

// --- Field 56: Intermediary Institution (A | C | D) ---

type Field56A struct{ PartyBIC }
type Field56C struct{ PartyAccountOnly }
type Field56D struct{ PartyNameAddress }

func (f *Field56A) Tag() string             { return "56A" }
func (f *Field56A) Render() (string, error) { return f.PartyBIC.render("56A") }
func (f *Field56C) Tag() string             { return "56C" }
func (f *Field56C) Render() (string, error) { return f.PartyAccountOnly.render("56C") }
func (f *Field56D) Tag() string             { return "56D" }
func (f *Field56D) Render() (string, error) { return f.PartyNameAddress.render("56D") }

// --- Field 57: Account With Institution (A | B | C | D) ---

type Field57A struct{ PartyBIC }
type Field57B struct{ PartyLocation }
type Field57C struct{ PartyAccountOnly }
type Field57D struct{ PartyNameAddress }

func (f *Field57A) Tag() string             { return "57A" }
func (f *Field57A) Render() (string, error) { return f.PartyBIC.render("57A") }
func (f *Field57B) Tag() string             { return "57B" }
func (f *Field57B) Render() (string, error) { return f.PartyLocation.render("57B") }
func (f *Field57C) Tag() string             { return "57C" }
func (f *Field57C) Render() (string, error) { return f.PartyAccountOnly.render("57C") }
func (f *Field57D) Tag() string             { return "57D" }
func (f *Field57D) Render() (string, error) { return f.PartyNameAddress.render("57D") }

// --- Field 58: Beneficiary Institution (A | D) ---

type Field58A struct{ PartyBIC }
type Field58D struct{ PartyNameAddress }

func (f *Field58A) Tag() string             { return "58A" }
func (f *Field58A) Render() (string, error) { return f.PartyBIC.render("58A") }
func (f *Field58D) Tag() string             { return "58D" }
func (f *Field58D) Render() (string, error) { return f.PartyNameAddress.render("58D") }

// --- Field 59: Beneficiary Customer (no letter | A) ---

type Field59 struct{ PartyNameAddress }
type Field59A struct{ PartyBIC }

func (f *Field59) Tag() string              { return "59" }
func (f *Field59) Render() (string, error)  { return f.PartyNameAddress.render("59") }
func (f *Field59A) Tag() string             { return "59A" }
func (f *Field59A) Render() (string, error) { return f.PartyBIC.render("59A") }

func init() {
	reg := func(tag string, parse func(raw string, pos reporter.Position, line string) (Field, *reporter.Error), sample func(rng SampleSource, cfg any) Field) {
		register(&CatalogEntry{Tag: tag, Parse: parse, Sample: sample})
	}

	reg("50A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("50A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field50A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field50A{sampleBIC(rng, true)} })
	reg("50F", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyStructured("50F", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field50F{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field50F{sampleStructured(rng)} })
	reg("50K", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyNameAddress("50K", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field50K{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field50K{sampleNameAddress(rng)} })
	register(&CatalogEntry{Tag: "50", FamilyOrder: []string{"A", "F", "K"}})

	reg("52A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("52A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field52A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field52A{sampleBIC(rng, false)} })
	reg("52D", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyNameAddress("52D", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field52D{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field52D{sampleNameAddress(rng)} })
	register(&CatalogEntry{Tag: "52", FamilyOrder: []string{"A", "D"}})

	reg("53A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("53A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field53A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field53A{sampleBIC(rng, true)} })
	reg("53B", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyLocation("53B", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field53B{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field53B{sampleLocation(rng)} })
	reg("53D", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyNameAddress("53D", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field53D{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field53D{sampleNameAddress(rng)} })
	register(&CatalogEntry{Tag: "53", FamilyOrder: []string{"A", "B", "D"}})

	reg("54A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("54A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field54A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field54A{sampleBIC(rng, true)} })
	reg("54B", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyLocation("54B", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field54B{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field54B{sampleLocation(rng)} })
	reg("54D", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyNameAddress("54D", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field54D{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field54D{sampleNameAddress(rng)} })
	register(&CatalogEntry{Tag: "54", FamilyOrder: []string{"A", "B", "D"}})

	reg("56A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("56A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field56A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field56A{sampleBIC(rng, true)} })
	reg("56C", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyAccountOnly("56C", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field56C{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field56C{sampleAccountOnly(rng)} })
	reg("56D", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyNameAddress("56D", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field56D{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field56D{sampleNameAddress(rng)} })
	register(&CatalogEntry{Tag: "56", FamilyOrder: []string{"A", "C", "D"}})

	reg("57A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("57A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field57A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field57A{sampleBIC(rng, true)} })
	reg("57B", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyLocation("57B", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field57B{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field57B{sampleLocation(rng)} })
	reg("57C", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyAccountOnly("57C", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field57C{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field57C{sampleAccountOnly(rng)} })
	reg("57D", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyNameAddress("57D", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field57D{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field57D{sampleNameAddress(rng)} })
	register(&CatalogEntry{Tag: "57", FamilyOrder: []string{"A", "B", "C", "D"}})

	reg("58A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("58A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field58A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field58A{sampleBIC(rng, true)} })
	reg("58D", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyNameAddress("58D", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field58D{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field58D{sampleNameAddress(rng)} })
	register(&CatalogEntry{Tag: "58", FamilyOrder: []string{"A", "D"}})

	// "59" is unusual among the families: the bare tag is itself a concrete,
	// directly-parseable option (no letter ever needs discriminating against
	// it), so its CatalogEntry carries both a Parse function AND a
	// FamilyOrder naming the one lettered alternative the driver should also
	// accept at this slot.
	register(&CatalogEntry{
		Tag:         "59",
		FamilyOrder: []string{"A"},
		Parse: func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
			p, err := parsePartyNameAddress("59", raw, pos, line)
			if err != nil {
				return nil, err
			}
			return &Field59{p}, nil
		},
		Sample: func(rng SampleSource, cfg any) Field { return &Field59{sampleNameAddress(rng)} },
	})
	reg("59A", func(raw string, pos reporter.Position, line string) (Field, *reporter.Error) {
		p, err := parsePartyBIC("59A", raw, pos, line)
		if err != nil {
			return nil, err
		}
		return &Field59A{p}, nil
	}, func(rng SampleSource, cfg any) Field { return &Field59A{sampleBIC(rng, true)} })
}
