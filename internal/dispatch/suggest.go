package dispatch

import (
	"sort"
	"strings"
)

const (
	maxSuggestions        = 3
	maxSuggestionDistance = 3
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Suggest returns up to three names close to the first token of tokens that
// does not match, taken from the level where matching stopped. It returns nil
// when every token matches.
func (t *Tree) Suggest(tokens []string) []string {
	nodes := t.children
	for _, tok := range tokens {
		node := findChild(nodes, tok)
		if node == nil {
			return closest(tok, nodes)
		}
		nodes = node.Children
	}
	return nil
}

func closest(input string, nodes []*Node) []string {
	type candidate struct {
		name     string
		distance int
	}

	var candidates []candidate
	for _, n := range nodes {
		dist := levenshtein(input, n.Name)
		if dist <= maxSuggestionDistance {
			candidates = append(candidates, candidate{name: n.Name, distance: dist})
		}
	}

	// Ties keep registration order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}
