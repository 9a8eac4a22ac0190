package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grifmang/memsift/pkg/types"
)

const (
	// DefaultThemeThreshold is the number of distinct conversations an
	// n-gram must appear in to become a theme candidate.
	DefaultThemeThreshold = 3

	// DefaultThemeHighThreshold is the conversation count at which a
	// theme candidate is promoted from medium to high confidence.
	DefaultThemeHighThreshold = 5
)

// tokenize lowercases text, replaces every non-alphanumeric rune with a
// space, and drops tokens that are too short or stop words.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, lowered)

	var tokens []string
	for _, tok := range strings.Fields(mapped) {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ngrams returns the set of bigrams and trigrams in the token stream,
// skipping any n-gram made up entirely of stop words.
func ngrams(tokens []string) map[string]struct{} {
	grams := make(map[string]struct{})
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			window := tokens[i : i+n]
			if allStopWords(window) {
				continue
			}
			grams[strings.Join(window, " ")] = struct{}{}
		}
	}
	return grams
}

// allStopWords guards against degenerate n-grams. Tokenize already drops
// stop words, so this only fires if the two filters ever diverge.
func allStopWords(words []string) bool {
	for _, w := range words {
		if _, ok := stopWords[w]; !ok {
			return false
		}
	}
	return true
}

// ExtractThemes surfaces recurring topics the sentence-level extractors
// cannot see. Each conversation contributes its n-gram set once, counts
// accumulate across the corpus, and n-grams reaching threshold distinct
// conversations become candidates. Pass non-positive thresholds to use
// the defaults.
func ExtractThemes(convs []types.ParsedConversation, threshold, highThreshold int) []types.MemoryCandidate {
	if threshold <= 0 {
		threshold = DefaultThemeThreshold
	}
	if highThreshold <= 0 {
		highThreshold = DefaultThemeHighThreshold
	}

	counts := make(map[string]int)
	for i := range convs {
		conv := &convs[i]
		tokens := tokenize(conv.Title)
		for _, text := range conv.UserTexts() {
			tokens = append(tokens, tokenize(text)...)
		}
		for gram := range ngrams(tokens) {
			counts[gram]++
		}
	}

	type themeCount struct {
		gram  string
		count int
	}
	var promoted []themeCount
	for gram, count := range counts {
		if count >= threshold {
			promoted = append(promoted, themeCount{gram, count})
		}
	}

	// Count descending; ties break on the n-gram text so output is stable
	// across runs regardless of map iteration order.
	sort.Slice(promoted, func(i, j int) bool {
		if promoted[i].count != promoted[j].count {
			return promoted[i].count > promoted[j].count
		}
		return promoted[i].gram < promoted[j].gram
	})

	var out []types.MemoryCandidate
	for seq, tc := range promoted {
		confidence := types.ConfidenceMedium
		if tc.count >= highThreshold {
			confidence = types.ConfidenceHigh
		}
		out = append(out, types.MemoryCandidate{
			ID:          fmt.Sprintf("theme-%d", seq),
			Text:        fmt.Sprintf("Recurring interest: \"%s\" (appeared in %d conversations)", tc.gram, tc.count),
			Category:    types.CategoryTheme,
			Confidence:  confidence,
			SourceTitle: types.CorpusSourceTitle,
			Status:      types.StatusPending,
		})
	}
	return out
}
