package fields

import "encoding/json"

// newByTag constructs a zero-valued instance of the concrete Go type behind
// a resolved (lettered, where applicable) field tag. It exists solely to let
// package mt decode a Field value out of a JSON document: JSON unmarshaling
// into an interface needs to know the destination concrete type, and that
// mapping is exactly what the catalog already encodes one tag at a time.
// Mirrors the discriminator-driven decode protocompile's descriptorpb types
// use for google.protobuf.Any payloads.
var newByTag = map[string]func() Field{
	"20": func() Field { return &Field20{} },
	"21": func() Field { return &Field21{} },
	"23B": func() Field { return &Field23B{} },
	"23E": func() Field { return &Field23E{} },
	"26T": func() Field { return &Field26T{} },
	"72": func() Field { return &Field72{} },
	"77B": func() Field { return &Field77B{} },
	"77T": func() Field { return &Field77T{} },
	"79": func() Field { return &Field79{} },
	"19": func() Field { return &Field19{} },
	"71B": func() Field { return &Field71B{} },
	"25": func() Field { return &Field25{} },
	"28": func() Field { return &Field28{} },
	"28D": func() Field { return &Field28D{} },
	"30": func() Field { return &Field30{} },
	"70": func() Field { return &Field70{} },

	"32A": func() Field { return &Field32A{} },
	"32B": func() Field { return &Field32B{} },
	"33B": func() Field { return &Field33B{} },
	"36":  func() Field { return &Field36{} },
	"71A": func() Field { return &Field71A{} },
	"71F": func() Field { return &Field71F{} },
	"71G": func() Field { return &Field71G{} },

	"50A": func() Field { return &Field50A{} },
	"50F": func() Field { return &Field50F{} },
	"50K": func() Field { return &Field50K{} },
	"52A": func() Field { return &Field52A{} },
	"52D": func() Field { return &Field52D{} },
	"53A": func() Field { return &Field53A{} },
	"53B": func() Field { return &Field53B{} },
	"53D": func() Field { return &Field53D{} },
	"54A": func() Field { return &Field54A{} },
	"54B": func() Field { return &Field54B{} },
	"54D": func() Field { return &Field54D{} },
	"56A": func() Field { return &Field56A{} },
	"56C": func() Field { return &Field56C{} },
	"56D": func() Field { return &Field56D{} },
	"57A": func() Field { return &Field57A{} },
	"57B": func() Field { return &Field57B{} },
	"57C": func() Field { return &Field57C{} },
	"57D": func() Field { return &Field57D{} },
	"58A": func() Field { return &Field58A{} },
	"58D": func() Field { return &Field58D{} },
	"59":  func() Field { return &Field59{} },
	"59A": func() Field { return &Field59A{} },

	"60F": func() Field { return &Field60F{} },
	"60M": func() Field { return &Field60M{} },
	"62F": func() Field { return &Field62F{} },
	"62M": func() Field { return &Field62M{} },
	"64":  func() Field { return &Field64{} },
	"65":  func() Field { return &Field65{} },
	"61":  func() Field { return &Field61{} },
	"86":  func() Field { return &Field86{} },
	"93B": func() Field { return &Field93B{} },
	"94A": func() Field { return &Field94A{} },
}

// DecodeJSON reconstructs a typed Field from the JSON object previously
// produced by encoding/json's default marshaling of that same concrete type,
// given the resolved wire tag (with option letter, e.g. "50K").
func DecodeJSON(resolvedTag string, data []byte) (Field, bool, error) {
	newFn, ok := newByTag[resolvedTag]
	if !ok {
		return nil, false, nil
	}
	f := newFn()
	if err := json.Unmarshal(data, f); err != nil {
		return nil, true, err
	}
	return f, true, nil
}
