package classify

import (
	"fmt"
	"slices"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher tests an ordered keyword table against a text, case-insensitively
// and as plain substrings, with a single Aho-Corasick pass.
type Matcher struct {
	machine  *goahocorasick.Machine
	index    map[string]int // lowered pattern -> position in the table
	patterns []string
}

// NewMatcher builds the automaton from the table.
// A pattern containing an earlier one can never change the outcome of Any or
// First, so it is left out of the automaton.
func NewMatcher(patterns []string) (*Matcher, error) {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}

	index := make(map[string]int, len(patterns))
	var kept []string
	for j, p := range lowered {
		if p == "" {
			continue
		}
		redundant := slices.ContainsFunc(lowered[:j], func(earlier string) bool {
			return earlier != "" && strings.Contains(p, earlier)
		})
		if redundant {
			continue
		}
		index[p] = j
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("keyword table is empty")
	}
	slices.Sort(kept)

	runes := make([][]rune, len(kept))
	for i, p := range kept {
		runes[i] = []rune(p)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(runes); err != nil {
		return nil, err
	}
	return &Matcher{machine: m, index: index, patterns: patterns}, nil
}

// Any reports whether at least one pattern occurs in text.
func (m *Matcher) Any(text string) bool {
	if text == "" {
		return false
	}
	return len(m.machine.MultiPatternSearch([]rune(strings.ToLower(text)), true)) > 0
}

// First returns the table position of the earliest listed pattern found in text.
func (m *Matcher) First(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	best := -1
	for _, term := range m.machine.MultiPatternSearch([]rune(strings.ToLower(text)), false) {
		pos, ok := m.index[string(term.Word)]
		if ok && (best < 0 || pos < best) {
			best = pos
		}
	}
	return best, best >= 0
}

// Patterns returns the table as given, original casing kept.
func (m *Matcher) Patterns() []string {
	return slices.Clone(m.patterns)
}
