package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// expandTemplate substitutes every ${name} reference in raw with its value
// from vars, resolving references transitively (a variable's own value may
// contain further ${name} references) and rejecting a reference cycle.
// Grounded on a plain recursive-descent scan: ${ opens a reference, the
// matching } closes it, nesting is not allowed (SWIFT field values are
// flat strings, never structured), mirroring the teacher's lexer scanning a
// single token class at a time rather than building a general expression
// grammar.
func expandTemplate(raw string, vars map[string]any) (string, error) {
	return expandWithTrail(raw, vars, nil)
}

func expandWithTrail(raw string, vars map[string]any, trail []string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		start := strings.Index(raw[i:], "${")
		if start == -1 {
			b.WriteString(raw[i:])
			break
		}
		b.WriteString(raw[i : i+start])
		i += start + 2
		end := strings.IndexByte(raw[i:], '}')
		if end == -1 {
			return "", fmt.Errorf("sample: unterminated ${ in %q", raw)
		}
		name := raw[i : i+end]
		i += end + 1

		for _, seen := range trail {
			if seen == name {
				return "", fmt.Errorf("sample: cyclic variable reference: %s", strings.Join(append(trail, name), " -> "))
			}
		}
		value, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("sample: undefined variable %q", name)
		}
		text := stringifyVar(value)
		expanded, err := expandWithTrail(text, vars, append(trail, name))
		if err != nil {
			return "", err
		}
		b.WriteString(expanded)
	}
	return b.String(), nil
}

// stringifyVar renders a JSON-decoded variable value (string, float64, bool,
// or nil — the shapes encoding/json produces for a map[string]any) as the
// text that gets spliced into a template.
func stringifyVar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
