package sample

import (
	"math/rand/v2"
	"strings"
)

// alphabets backs Generator.Alpha/Digits — keeping them table-driven mirrors
// formatspec's Class.Accepts allowlists rather than reimplementing ranges.
const (
	alphaAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitAlphabet = "0123456789"
)

// Generator is the randomness source every sample draw goes through: it
// implements fields.SampleSource so the field catalog's own Sample closures
// and this package's spec-driven fill (fill.go) share one deterministic
// stream per seed. Grounded on the teacher's test fixture generators
// (internal/benchmarks use math/rand for synthetic descriptors); wrapping
// math/rand/v2's PCG the same way gives reproducible-by-seed generation
// without pulling in a third source of randomness.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a Generator seeded deterministically from seed, so two
// calls with the same seed produce byte-identical messages.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random integer in [0, n).
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.rng.IntN(n))
}

// Float64 returns a pseudo-random float in [0, 1).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Choice returns one of options at random; "" if options is empty.
func (g *Generator) Choice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[g.Intn(len(options))]
}

// Bool reports true with the given probability in [0,1].
func (g *Generator) Bool(probability float64) bool {
	return g.Float64() < probability
}

// Digits returns a random n-digit string, padding with leading digits as
// needed (no artificial restriction against a leading zero: SWIFT numeric
// fields accept one).
func (g *Generator) Digits(n int) string {
	return g.fromAlphabet(digitAlphabet, n)
}

// Alpha returns a random n-letter uppercase string.
func (g *Generator) Alpha(n int) string {
	return g.fromAlphabet(alphaAlphabet, n)
}

func (g *Generator) fromAlphabet(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[g.Intn(len(alphabet))])
	}
	return b.String()
}
