// Package testutil provides shared test helpers for glossary datasets.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Columns: 0 model citation, 1-2 modeleFR, 3-4 modeleEN, 5 directive citation,
// 6-7 directiveFR, 8-9 directiveEN, 10 CGI citation, 11-12 cgi.
var sampleRows = [][]string{
	{"Lexique GloBE", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"Modèle", "", "", "", "", "Directive", "", "", "", "", "CGI", "", ""},
	{"Art.", "Terme", "Définition", "Term", "Definition", "Art.", "Terme", "Définition", "Term", "Definition", "Art.", "Terme", "Définition"},
	{
		"10.1", "Entité constitutive", "Une entité constitutive est :\na) toute entité incluse dans un groupe ;\nb) tout établissement stable.",
		"Constituent Entity", "Constituent Entity means:\na) any Entity that is included in a Group;\nb) any Permanent Establishment.",
		"3", "entité constitutive", "toute entité faisant partie d'un groupe",
		"constituent entity", "any entity that is part of a group",
		"223 VJ", "entité constitutive", "Entité incluse dans un groupe",
	},
	{
		"10.1", "Groupe", "Un groupe désigne :\n1) un ensemble d'entités ;\ni) liées par la propriété ;\nii) consolidées.",
		"Group", "Group means:\n1) a collection of Entities;\nii) consolidated.",
		"", "", "", "", "",
		"", "", "",
	},
	{"", "", "", "", "", "", "", "", "", "", "", "", ""},
	{
		"Commentaires, art. 5", "", "", "", "", "", "", "", "", "", "",
		"Impôt complémentaire", "Impôt dû au titre du présent chapitre.",
	},
}

// SampleCSV returns a small dataset with the three-row header block, two
// model/directive terms, one CGI-only term and one row with no term at all.
func SampleCSV() string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.WriteAll(sampleRows)
	return b.String()
}

// SampleTerms is the number of records SampleCSV yields once built.
const SampleTerms = 3

// WriteDataset writes content to a temp file that is removed with the test.
func WriteDataset(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "globeLexicon.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}
