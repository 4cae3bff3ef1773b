// Package citation turns raw citation fragments from the glossary dataset into
// readable labels.
package citation

import "github.com/starford/globelex/internal/models"

const (
	modelPrefix     = "Modèle de règles, art. "
	directivePrefix = "Dir. GloBE, art. "
	cgiPrefix       = "CGI, art. "
)

// Format returns the citation label for raw under source s.
//
// A raw value starting with a decimal digit is a bare article number and gets
// the prefix of the source's family. Anything else is already a full citation
// and is returned unchanged. Empty input yields "".
func Format(raw string, s models.Source) string {
	if raw == "" {
		return ""
	}
	if !isDigit(raw[0]) {
		return raw
	}
	switch s.Family() {
	case models.FamilyModel:
		return modelPrefix + raw
	case models.FamilyDirective:
		return directivePrefix + raw
	case models.FamilyCGI:
		return cgiPrefix + raw
	}
	return raw
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
