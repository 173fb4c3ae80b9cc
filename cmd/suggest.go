package cmd

import (
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// suggest returns up to three names that fuzzy-match name, best first.
func suggest(name string, names []string) []string {
	matches := fuzzy.Find(name, names)

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
