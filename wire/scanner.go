package wire

import (
	"strconv"
	"strings"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

// Occurrence is a single (tag, raw value) pair read out of block 4, in wire
// order, with the 1-based line number of its tag line within the original
// message text.
type Occurrence struct {
	Tag  string
	Line int
	Raw  string
}

// Message is the tokenized form of a raw SWIFT MT message: the five blocks,
// parsed as far as the wire layer goes (block 4 is split into Occurrences
// but not yet matched against any message schema — that is the fields/mt
// layer's job).
type Message struct {
	Basic       BasicHeader
	Application ApplicationHeader
	UserHeader  *TagBag // block 3, optional
	Occurrences []Occurrence
	Trailer     *TagBag // block 5, optional

	// hasUserHeader and hasTrailer record whether the optional blocks 3 and
	// 5 were present, so Compose can reproduce byte-identical output for
	// messages that omit them.
	hasUserHeader bool
	hasTrailer    bool
}

// Tokenize splits raw into its five blocks and parses each one. It does not
// interpret block 4 beyond splitting it into tag/value occurrences: matching
// occurrences against a message schema happens one layer up.
func Tokenize(raw string) (*Message, *reporter.Error) {
	blocks, err := splitBlocks(raw)
	if err != nil {
		return nil, err
	}

	content1, ok := blocks.content["1"]
	if !ok {
		return nil, reporter.New(reporter.InvalidBlockStructure, 0, "message is missing mandatory block 1")
	}
	basic, perr := parseBasicHeader(content1, blocks.pos["1"])
	if perr != nil {
		return nil, perr
	}

	content2, ok := blocks.content["2"]
	if !ok {
		return nil, reporter.New(reporter.InvalidBlockStructure, 0, "message is missing mandatory block 2")
	}
	app, perr := parseApplicationHeader(content2, blocks.pos["2"])
	if perr != nil {
		return nil, perr
	}

	msg := &Message{Basic: basic, Application: app}

	if content3, ok := blocks.content["3"]; ok {
		bag, perr := parseTagBag(content3, "3", blocks.pos["3"])
		if perr != nil {
			return nil, perr
		}
		msg.UserHeader = &bag
		msg.hasUserHeader = true
	}

	content4, ok := blocks.content["4"]
	if !ok {
		return nil, reporter.New(reporter.InvalidBlockStructure, 0, "message is missing mandatory block 4")
	}
	occ, perr := tokenizeBlock4(content4, blocks.lineOf4)
	if perr != nil {
		return nil, perr
	}
	msg.Occurrences = occ

	if content5, ok := blocks.content["5"]; ok {
		bag, perr := parseTagBag(content5, "5", blocks.pos["5"])
		if perr != nil {
			return nil, perr
		}
		msg.Trailer = &bag
		msg.hasTrailer = true
	}

	return msg, nil
}

type blockSet struct {
	content map[string]string
	pos     map[string]reporter.Position
	order   []string
	lineOf4 int // 1-based line number where block 4's content begins
}

// splitBlocks walks raw at the top level, identifying each {N:...} block.
// Blocks 1, 2, 3 and 5 are brace-depth matched; block 4 is special-cased
// because its terminator is the literal line "-}" rather than a balanced
// closing brace.
func splitBlocks(raw string) (blockSet, *reporter.Error) {
	bs := blockSet{content: map[string]string{}, pos: map[string]reporter.Position{}}
	i := 0
	line := 1
	for i < len(raw) {
		if raw[i] == '\n' {
			line++
			i++
			continue
		}
		if raw[i] != '{' {
			return bs, reporter.New(reporter.InvalidBlockStructure, reporter.NewPosition(line, 1),
				"expected '{' to start a block", "offset", strconv.Itoa(i))
		}
		if i+2 >= len(raw) || raw[i+2] != ':' {
			return bs, reporter.New(reporter.InvalidBlockStructure, reporter.NewPosition(line, 1), "malformed block tag")
		}
		tag := raw[i+1 : i+2]
		switch tag {
		case "1", "2", "3", "4", "5":
		default:
			return bs, reporter.New(reporter.InvalidBlockStructure, reporter.NewPosition(line, 1), "unknown block number "+tag)
		}
		contentStart := i + 3
		bs.pos[tag] = reporter.NewPosition(line, 1)

		if tag == "4" {
			bs.lineOf4 = line + countNewlines(raw[i:contentStart])
			term := "\n-}"
			idx := strings.Index(raw[contentStart:], term)
			var end int
			if idx == -1 {
				// tolerate a message with no trailing newline before -}
				if strings.HasPrefix(raw[contentStart:], "-}") {
					end = contentStart
				} else {
					return bs, reporter.New(reporter.InvalidBlockStructure, reporter.NewPosition(line, 1),
						"block 4 is missing its '-}' terminator")
				}
			} else {
				end = contentStart + idx + 1 // keep the newline before "-}" in content
			}
			content := raw[contentStart:end]
			bs.content["4"] = content
			bs.order = append(bs.order, "4")
			line += countNewlines(raw[i : end+len("-}")])
			i = end + len("-}")
			continue
		}

		depth := 1
		j := contentStart
		for ; j < len(raw); j++ {
			switch raw[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					goto closed
				}
			}
		}
		return bs, reporter.New(reporter.InvalidBlockStructure, reporter.NewPosition(line, 1),
			"block "+tag+" is missing its closing '}'")
	closed:
		bs.content[tag] = raw[contentStart:j]
		bs.order = append(bs.order, tag)
		line += countNewlines(raw[i : j+1])
		i = j + 1
	}
	return bs, nil
}

func countNewlines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

func isTagLine(line string) bool {
	if len(line) < 2 || line[0] != ':' {
		return false
	}
	colon := strings.IndexByte(line[1:], ':')
	return colon != -1
}

// tokenizeBlock4 splits block 4's content into ordered (tag, raw value)
// occurrences. A line beginning ":TAG:" starts a new occurrence; any other
// line is a continuation of the previous occurrence's value, joined with a
// newline (format-spec components like 4*35x consume these embedded
// newlines themselves).
//
// content is exactly what splitBlocks captured: everything between "{4:"
// and the "-}" terminator, including the newline that ends the "{4:" line
// itself and the newline that precedes "-}". startLine is the 1-based line
// number of that "{4:" line, so splitting on "\n" lines up index i with
// line startLine+i.
func tokenizeBlock4(content string, startLine int) ([]Occurrence, *reporter.Error) {
	lines := strings.Split(content, "\n")
	var occ []Occurrence
	for i, raw := range lines {
		lineNum := startLine + i
		switch {
		case i == 0 && raw == "":
			// the remainder of the "{4:" line itself; carries no tag.
		case i == len(lines)-1 && raw == "":
			// the blank line immediately preceding "-}".
		case isTagLine(raw):
			colon := strings.IndexByte(raw[1:], ':') + 1
			tag := raw[1:colon]
			value := raw[colon+1:]
			occ = append(occ, Occurrence{Tag: tag, Line: lineNum, Raw: value})
		default:
			if len(occ) == 0 {
				return nil, reporter.New(reporter.InvalidBlockStructure, reporter.NewPosition(lineNum, 1),
					"block 4 continuation line before any tag", "line", raw)
			}
			occ[len(occ)-1].Raw += "\n" + raw
		}
	}
	return occ, nil
}
