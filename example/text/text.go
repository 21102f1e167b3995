package text

import (
	"strings"
)

// Title returns s with the first letter of every word in upper case.
func Title(s string) string {

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
