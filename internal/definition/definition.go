// Package definition converts raw legal-definition text into a typed block
// structure that any renderer can consume.
package definition

import (
	"regexp"
	"strings"
)

// Kind is the semantic type of a block.
type Kind string

const (
	Paragraph Kind = "paragraph"
	ListItem  Kind = "list_item"
)

// Block is one classified line of a definition.
type Block struct {
	Kind  Kind   `json:"kind"`
	Text  string `json:"text"`
	Level int    `json:"level,omitempty"` // 1 lettered/numbered, 2 roman; 0 for paragraphs
}

// Document is the ordered sequence of blocks derived from a definition.
// Block order always matches the line order of the source text.
type Document []Block

// Rule maps a leading list marker to a list item at a nesting level.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Level   int
}

// ws is the whitespace skipped after a marker: ASCII space, Unicode space
// separators, vertical tab, BOM and the line/paragraph separators.
const ws = `[\s\p{Zs}\x{0B}\x{FEFF}\x{2028}\x{2029}]*`

// Rules are evaluated in order and the first match wins. "lettered" precedes
// "roman", so a lone "i)", "v)" or "x)" is a level 1 item.
var rules = []Rule{
	{Name: "lettered", Pattern: regexp.MustCompile(`^[a-z]\)`+ws), Level: 1},
	{Name: "numbered", Pattern: regexp.MustCompile(`^[0-9]+\)`+ws), Level: 1},
	{Name: "roman", Pattern: regexp.MustCompile(`^[ivx]+\)`+ws), Level: 2},
}

// Rules returns a copy of the classification table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Structure splits raw on newlines and classifies each line on its own.
// Every line yields exactly one block; empty lines become empty paragraphs.
func Structure(raw string) Document {
	if raw == "" {
		return Document{}
	}
	lines := strings.Split(raw, "\n")
	doc := make(Document, 0, len(lines))
	for _, line := range lines {
		doc = append(doc, classify(line))
	}
	return doc
}

func classify(line string) Block {
	for _, r := range rules {
		if loc := r.Pattern.FindStringIndex(line); loc != nil {
			return Block{Kind: ListItem, Text: line[loc[1]:], Level: r.Level}
		}
	}
	return Block{Kind: Paragraph, Text: line}
}

// IsEmpty reports whether the document has no blocks.
func (d Document) IsEmpty() bool {
	return len(d) == 0
}
