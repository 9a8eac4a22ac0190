package extract

import (
	"fmt"
	"regexp"

	"github.com/grifmang/memsift/pkg/types"
)

// DefaultTermThreshold is the number of distinct conversations a
// vocabulary term must appear in before it is promoted to a candidate.
const DefaultTermThreshold = 3

// stackRules match explicit descriptions of the user's technology stack.
var stackRules = []rule{
	{regexp.MustCompile(`(?i)\bmy stack is\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI use\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bwe use\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI build with\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI work with\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI develop with\b`), types.ConfidenceHigh},
}

// ExtractTechnical runs two passes over the corpus and concatenates the
// results: an explicit stack-phrase pass (one candidate per matching
// message) and a vocabulary-frequency pass that promotes any technology
// mentioned in at least termThreshold distinct conversations. Pass
// termThreshold <= 0 to use DefaultTermThreshold.
func ExtractTechnical(convs []types.ParsedConversation, termThreshold int) []types.MemoryCandidate {
	if termThreshold <= 0 {
		termThreshold = DefaultTermThreshold
	}

	p := &patternExtractor{
		idPrefix: "tech",
		category: types.CategoryTechnical,
		rules:    stackRules,
	}
	out := p.extract(convs)
	seq := len(out)

	// Mentions within a conversation count once: build the per-conversation
	// term set, then tally distinct conversations per term.
	counts := make(map[string]int)
	for i := range convs {
		texts := convs[i].UserTexts()
		for _, term := range techVocabulary {
			for _, text := range texts {
				if term.pattern.MatchString(text) {
					counts[term.name]++
					break
				}
			}
		}
	}

	// Vocabulary order keeps the frequency candidates deterministic.
	for _, term := range techVocabulary {
		count := counts[term.name]
		if count < termThreshold {
			continue
		}
		out = append(out, types.MemoryCandidate{
			ID:          fmt.Sprintf("tech-%d", seq),
			Text:        fmt.Sprintf("Frequently uses %s (mentioned in %d conversations)", term.name, count),
			Category:    types.CategoryTechnical,
			Confidence:  types.ConfidenceHigh,
			SourceTitle: types.CorpusSourceTitle,
			Status:      types.StatusPending,
		})
		seq++
	}
	return out
}
