package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents quita marcas diacríticas: descompone (NFD), elimina los
// combining marks y recompone (NFC). "Muñoz Pérez" → "Munoz Perez".
// El transformer se construye por llamada porque mantiene estado interno.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// MatchesFold reporta si s contiene q sin distinguir mayúsculas ni tildes.
// Los nombres en español llevan tildes; el filtro de los listados no debe
// depender de que el usuario las escriba.
func MatchesFold(s, q string) bool {
	return strings.Contains(
		strings.ToLower(foldAccents(s)),
		strings.ToLower(foldAccents(q)),
	)
}
