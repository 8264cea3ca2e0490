package rag

import "strings"

// contextualMarkers are linguistic signs that a question leans on prior
// turns: continuations, comparisons and demonstrative references.
// A keyword scan is enough here: a false positive only costs prompt
// tokens, a false negative only quality. The list is Spanish-first with
// a few English markers; it is not exhaustive.
var contextualMarkers = []string{
	"y cuántos",
	"y cuántas",
	"y cuantos",
	"y cuantas",
	"y cuánto",
	"y cuanto",
	"y los",
	"y las",
	"y el ",
	"y la ",
	"el mismo",
	"la misma",
	"los mismos",
	"las mismas",
	"anterior",
	"anteriores",
	"el resto",
	"los demás",
	"los demas",
	"las demás",
	"las demas",
	"esos",
	"esas",
	"aquellos",
	"aquellas",
	"también",
	"tambien",
	"comparado",
	"respecto a",
	"and how many",
	"the same",
	"previous",
	"the rest",
	"compare",
}

// IsContextual reports whether question likely refers to prior
// conversation turns. Pure function, no I/O; matching ignores case.
func IsContextual(question string) bool {
	lowered := strings.ToLower(strings.TrimSpace(question))
	for _, marker := range contextualMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	// a bare leading "y ..." ("¿y hombres?") is a continuation even
	// when no longer marker matches
	lowered = strings.TrimLeft(lowered, "¿¡ ")
	return strings.HasPrefix(lowered, "y ")
}
