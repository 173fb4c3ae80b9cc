package helpers

import (
	"strings"

	"github.com/aymanbagabas/go-udiff/lcs"
)

// DiffStat counts the lines added and removed when before is replaced by after.
func DiffStat(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}

	// Each distinct line becomes one token, so the LCS runs over lines.
	ids := map[string]rune{}
	a := lineTokens(before, ids)
	b := lineTokens(after, ids)
	if len(a) == 0 || len(b) == 0 {
		return len(b), len(a)
	}

	for _, d := range lcs.DiffRunes(a, b) {
		removed += d.End - d.Start
		added += d.ReplEnd - d.ReplStart
	}

	return added, removed
}

func lineTokens(s string, ids map[string]rune) []rune {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	tokens := make([]rune, 0, len(lines))
	for _, line := range lines {
		id, ok := ids[line]
		if !ok {
			id = rune(len(ids))
			ids[line] = id
		}
		tokens = append(tokens, id)
	}
	return tokens
}
