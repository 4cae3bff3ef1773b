package main

import (
	"strings"
	"testing"

	"github.com/starford/globelex/internal/definition"
	"github.com/starford/globelex/internal/lexicon"
	"github.com/starford/globelex/internal/models"
)

func TestPrintView(t *testing.T) {
	view := &lexicon.TermView{
		ID: 0,
		Active: lexicon.SideView{
			Source:     models.ModeleFR,
			Label:      models.ModeleFR.Label(),
			Term:       "Groupe",
			Citation:   "Modèle de règles, art. 1.2",
			Definition: definition.Structure("Désigne :\na) un ensemble"),
		},
		Compare: lexicon.SideView{
			Source: models.CGI,
			Label:  models.CGI.Label(),
		},
		Equivalents: []lexicon.Equivalent{
			{Source: models.ModeleEN, Label: models.ModeleEN.Label(), Term: "Group"},
		},
	}

	var b strings.Builder
	if err := printView(&b, view); err != nil {
		t.Fatal(err)
	}
	want := "\n== Modèle (FR) ==\nGroupe\nModèle de règles, art. 1.2\nDésigne :\n  • un ensemble\n" +
		"\n== CGI ==\n(no entry)\n" +
		"\nTermes équivalents:\n  Modèle (EN): Group\n"
	if b.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", b.String(), want)
	}
}
