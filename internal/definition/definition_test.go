package definition

import (
	"strings"
	"testing"
)

func TestStructure_Empty(t *testing.T) {
	doc := Structure("")
	if len(doc) != 0 {
		t.Errorf("len = %d, want 0", len(doc))
	}
	if !doc.IsEmpty() {
		t.Error("empty input should produce an empty document")
	}
}

func TestStructure_SingleLines(t *testing.T) {
	cases := []struct {
		in   string
		want Block
	}{
		{"a) Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"1) Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"12) Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"ii) Foo", Block{Kind: ListItem, Text: "Foo", Level: 2}},
		{"xiv) Foo", Block{Kind: ListItem, Text: "Foo", Level: 2}},
		{"Plain text", Block{Kind: Paragraph, Text: "Plain text"}},
		{"a)Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"a) Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"A) Foo", Block{Kind: Paragraph, Text: "A) Foo"}},
		{"ab) Foo", Block{Kind: Paragraph, Text: "ab) Foo"}},
		{" a) Foo", Block{Kind: Paragraph, Text: " a) Foo"}},
		{"(a) Foo", Block{Kind: Paragraph, Text: "(a) Foo"}},
		{"a)", Block{Kind: ListItem, Text: "", Level: 1}},
	}
	for _, c := range cases {
		doc := Structure(c.in)
		if len(doc) != 1 {
			t.Fatalf("Structure(%q) len = %d, want 1", c.in, len(doc))
		}
		if doc[0] != c.want {
			t.Errorf("Structure(%q) = %+v, want %+v", c.in, doc[0], c.want)
		}
	}
}

// A single roman-looking letter matches the lettered rule first.
func TestStructure_LetteredBeatsRoman(t *testing.T) {
	for _, in := range []string{"i) Foo", "v) Foo", "x) Foo"} {
		doc := Structure(in)
		if doc[0].Kind != ListItem || doc[0].Level != 1 || doc[0].Text != "Foo" {
			t.Errorf("Structure(%q) = %+v, want level 1 list item", in, doc[0])
		}
	}
}

func TestRules_Order(t *testing.T) {
	got := Rules()
	want := []string{"lettered", "numbered", "roman"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Name != want[i] {
			t.Errorf("rule %d = %q, want %q", i, r.Name, want[i])
		}
	}
	got[0].Name = "mutated"
	if Rules()[0].Name != "lettered" {
		t.Error("Rules() should return a copy")
	}
}

func TestStructure_MultiLinePreservesOrder(t *testing.T) {
	in := strings.Join([]string{
		"Le terme désigne :",
		"a) une entité constitutive ;",
		"i) située dans une juridiction ;",
		"ii) soumise à l'impôt ;",
		"",
		"b) une entité exclue.",
		"Fin.",
	}, "\n")
	doc := Structure(in)
	if len(doc) != 7 {
		t.Fatalf("len = %d, want 7", len(doc))
	}
	wantKinds := []Kind{Paragraph, ListItem, ListItem, ListItem, Paragraph, ListItem, Paragraph}
	wantLevels := []int{0, 1, 1, 2, 0, 1, 0}
	for i, b := range doc {
		if b.Kind != wantKinds[i] || b.Level != wantLevels[i] {
			t.Errorf("block %d = %+v, want kind %s level %d", i, b, wantKinds[i], wantLevels[i])
		}
	}
	if doc[0].Text != "Le terme désigne :" || doc[3].Text != "soumise à l'impôt ;" || doc[4].Text != "" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestStructure_TrailingNewlineYieldsEmptyParagraph(t *testing.T) {
	doc := Structure("a) Foo\n")
	if len(doc) != 2 {
		t.Fatalf("len = %d, want 2", len(doc))
	}
	if doc[1] != (Block{Kind: Paragraph, Text: ""}) {
		t.Errorf("last block = %+v", doc[1])
	}
}

func TestStructure_LineCountMatches(t *testing.T) {
	inputs := []string{
		"one",
		"one\ntwo",
		"\n\n\n",
		"a) x\n1) y\nii) z\nw",
	}
	for _, in := range inputs {
		if got, want := len(Structure(in)), strings.Count(in, "\n")+1; got != want {
			t.Errorf("Structure(%q) len = %d, want %d", in, got, want)
		}
	}
}

func TestStructure_MarkerWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want Block
	}{
		{"a)\u00a0Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"a)\ufeffFoo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"b)\u2028Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"1)\u2029Foo", Block{Kind: ListItem, Text: "Foo", Level: 1}},
		{"ii)\vFoo", Block{Kind: ListItem, Text: "Foo", Level: 2}},
		{"iii)\u3000\tFoo", Block{Kind: ListItem, Text: "Foo", Level: 2}},
	}
	for _, tt := range tests {
		doc := Structure(tt.in)
		if len(doc) != 1 || doc[0] != tt.want {
			t.Errorf("Structure(%q) = %+v, want %+v", tt.in, doc, tt.want)
		}
	}
}
