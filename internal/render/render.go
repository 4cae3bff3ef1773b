// Package render turns structured definitions into HTML.
package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/starford/globelex/internal/definition"
)

// CSS classes applied to the generated markup.
const (
	ParagraphClass = "mb-2"
	ListClass      = "list-disc mb-4"
	ItemClass      = "ml-4 mb-2"
	SubItemClass   = "ml-8 mb-2"
)

// Nodes converts doc into sibling HTML nodes: one <div> per paragraph and one
// <ul> per run of consecutive list items.
func Nodes(doc definition.Document) []*html.Node {
	var out []*html.Node
	for _, run := range doc.Runs() {
		if !run.List {
			out = append(out, element(atom.Div, ParagraphClass, run.Blocks[0].Text))
			continue
		}
		ul := element(atom.Ul, ListClass, "")
		for _, b := range run.Blocks {
			class := ItemClass
			if b.Level > 1 {
				class = SubItemClass
			}
			ul.AppendChild(element(atom.Li, class, b.Text))
		}
		out = append(out, ul)
	}
	return out
}

// HTML renders doc as an HTML fragment. Definition text is escaped.
func HTML(doc definition.Document) (string, error) {
	var b strings.Builder
	for _, n := range Nodes(doc) {
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func element(a atom.Atom, class, text string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
