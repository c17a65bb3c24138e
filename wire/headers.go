// Package wire implements the block tokenizer: splitting a raw SWIFT MT
// message into its five blocks, parsing blocks 1/2/3/5 into their small
// fixed records, and splitting block 4 into ordered (tag, raw value)
// occurrences with line tracking. It also composes a Message back into wire
// bytes — the serializer half of spec.md §4.2/§4.6.
package wire

import (
	"fmt"

	"github.com/GoPlasmatic/SwiftMTMessage-sub000/reporter"
)

// BasicHeader is block 1, mandatory like blocks 2 and 4. Fixed-width, no
// sub-structure.
type BasicHeader struct {
	ApplicationID  string // 1 char: F, A, or L
	ServiceID      string // 2 digits
	LogicalTerminal string // 12 chars
	SessionNumber  string // 4 digits
	SequenceNumber string // 6 digits
}

const basicHeaderLen = 1 + 2 + 12 + 4 + 6

func parseBasicHeader(content string, pos reporter.Position) (BasicHeader, *reporter.Error) {
	if len(content) != basicHeaderLen {
		return BasicHeader{}, reporter.New(reporter.InvalidBlockStructure, pos,
			fmt.Sprintf("block 1 must be %d characters, got %d", basicHeaderLen, len(content)),
			"block", "1", "content", content)
	}
	return BasicHeader{
		ApplicationID:   content[0:1],
		ServiceID:       content[1:3],
		LogicalTerminal: content[3:15],
		SessionNumber:   content[15:19],
		SequenceNumber:  content[19:25],
	}, nil
}

func (h BasicHeader) render() string {
	return h.ApplicationID + h.ServiceID + h.LogicalTerminal + h.SessionNumber + h.SequenceNumber
}

// ApplicationHeader is block 2, either the input or the output variant. Only
// one of the two is ever populated; Direction reports which.
type ApplicationHeader struct {
	Direction byte // 'I' or 'O'

	MessageType string // 3 digits, e.g. "103"
	Priority    string // 1 char: S, U, N

	// Input variant fields.
	ReceiverAddress string // 12 chars
	DeliveryMonitor string // 1 char, optional
	ObsolescencePeriod string // 3 digits, optional

	// Output variant fields.
	InputTime           string // 4 digits
	MIRDate             string // 6 digits
	MIRLogicalTerminal  string // 12 chars
	MIRSessionNumber    string // 4 digits
	MIRSequenceNumber   string // 6 digits
	OutputDate          string // 6 digits
	OutputTime          string // 4 digits
}

func parseApplicationHeader(content string, pos reporter.Position) (ApplicationHeader, *reporter.Error) {
	if len(content) < 1 {
		return ApplicationHeader{}, reporter.New(reporter.InvalidBlockStructure, pos, "block 2 is empty", "block", "2")
	}
	dir := content[0]
	switch dir {
	case 'I':
		rest := content[1:]
		if len(rest) != 3+12+1 && len(rest) != 3+12+1+1+3 {
			return ApplicationHeader{}, reporter.New(reporter.InvalidBlockStructure, pos,
				"malformed input application header", "block", "2", "content", content)
		}
		h := ApplicationHeader{Direction: 'I', MessageType: rest[0:3], ReceiverAddress: rest[3:15], Priority: rest[15:16]}
		if len(rest) > 16 {
			h.DeliveryMonitor = rest[16:17]
			h.ObsolescencePeriod = rest[17:20]
		}
		return h, nil
	case 'O':
		rest := content[1:]
		// MT(3) + InputTime(4) + MIR(28) + OutputDate(6) + OutputTime(4) + Priority(1)
		if len(rest) != 3+4+28+6+4+1 {
			return ApplicationHeader{}, reporter.New(reporter.InvalidBlockStructure, pos,
				"malformed output application header", "block", "2", "content", content)
		}
		mir := rest[7:35]
		return ApplicationHeader{
			Direction:          'O',
			MessageType:        rest[0:3],
			InputTime:          rest[3:7],
			MIRDate:            mir[0:6],
			MIRLogicalTerminal: mir[6:18],
			MIRSessionNumber:   mir[18:22],
			MIRSequenceNumber:  mir[22:28],
			OutputDate:         rest[35:41],
			OutputTime:         rest[41:45],
			Priority:           rest[45:46],
		}, nil
	default:
		return ApplicationHeader{}, reporter.New(reporter.InvalidBlockStructure, pos,
			fmt.Sprintf("unknown application header direction %q", string(dir)), "block", "2")
	}
}

func (h ApplicationHeader) render() string {
	switch h.Direction {
	case 'O':
		return "O" + h.MessageType + h.InputTime + h.MIRDate + h.MIRLogicalTerminal +
			h.MIRSessionNumber + h.MIRSequenceNumber + h.OutputDate + h.OutputTime + h.Priority
	default:
		s := "I" + h.MessageType + h.ReceiverAddress + h.Priority
		if h.DeliveryMonitor != "" || h.ObsolescencePeriod != "" {
			s += h.DeliveryMonitor + h.ObsolescencePeriod
		}
		return s
	}
}

// TagBag is the shape of blocks 3 and 5: an ordered bag of {tag:value}
// sub-blocks. Order is preserved so rendering is byte-faithful.
type TagBag struct {
	Order  []string
	Values map[string]string
}

func newTagBag() TagBag {
	return TagBag{Values: map[string]string{}}
}

func (b *TagBag) set(tag, value string) {
	if _, ok := b.Values[tag]; !ok {
		b.Order = append(b.Order, tag)
	}
	b.Values[tag] = value
}

// Get returns the value for tag and whether it was present.
func (b TagBag) Get(tag string) (string, bool) {
	v, ok := b.Values[tag]
	return v, ok
}

func (b TagBag) render() string {
	var out string
	for _, tag := range b.Order {
		out += "{" + tag + ":" + b.Values[tag] + "}"
	}
	return out
}

func parseTagBag(content string, block string, pos reporter.Position) (TagBag, *reporter.Error) {
	bag := newTagBag()
	i := 0
	for i < len(content) {
		if content[i] != '{' {
			return TagBag{}, reporter.New(reporter.InvalidBlockStructure, pos,
				fmt.Sprintf("expected '{' in block %s sub-tag list", block), "block", block, "content", content)
		}
		colon := -1
		depth := 1
		j := i + 1
		for ; j < len(content); j++ {
			if content[j] == ':' && colon == -1 {
				colon = j
			}
			if content[j] == '{' {
				depth++
			}
			if content[j] == '}' {
				depth--
				if depth == 0 {
					break
				}
			}
		}
		if j == len(content) || colon == -1 {
			return TagBag{}, reporter.New(reporter.InvalidBlockStructure, pos,
				fmt.Sprintf("unterminated sub-tag in block %s", block), "block", block, "content", content)
		}
		tag := content[i+1 : colon]
		value := content[colon+1 : j]
		bag.set(tag, value)
		i = j + 1
	}
	return bag, nil
}

// UniqueEndToEndReference reads block 3 tag 121, the UETR, if present.
func (b TagBag) UniqueEndToEndReference() (string, bool) {
	return b.Get("121")
}
