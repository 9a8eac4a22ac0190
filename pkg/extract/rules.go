package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/grifmang/memsift/pkg/types"
)

// minSentenceWords is the noise floor for pattern matches: shorter
// sentences carry too little context to be worth surfacing.
const minSentenceWords = 5

// rule pairs a trigger phrase with the confidence assigned to sentences
// it matches. Rules are evaluated in declaration order; the first match
// in a message wins.
type rule struct {
	pattern    *regexp.Regexp
	confidence types.Confidence
}

// patternExtractor is the shared engine behind the preference, project,
// identity, and technical stack-phrase extractors. It emits at most one
// candidate per user message.
type patternExtractor struct {
	idPrefix string
	category types.Category
	rules    []rule
}

// extract scans every user message in every conversation, applying the
// rule list in order. A message's first rule match either becomes a
// candidate or is dropped by the noise filters; either way no later rule
// is tried for that message.
func (p *patternExtractor) extract(convs []types.ParsedConversation) []types.MemoryCandidate {
	var out []types.MemoryCandidate
	seq := 0
	for i := range convs {
		conv := &convs[i]
		for _, msg := range conv.Messages {
			if msg.Role != types.RoleUser {
				continue
			}
			for _, r := range p.rules {
				loc := r.pattern.FindStringIndex(msg.Text)
				if loc == nil {
					continue
				}
				sentence := sentenceAt(msg.Text, loc[0])
				if usableSentence(sentence) {
					out = append(out, types.MemoryCandidate{
						ID:              fmt.Sprintf("%s-%d", p.idPrefix, seq),
						Text:            sentence,
						Category:        p.category,
						Confidence:      r.confidence,
						SourceTitle:     conv.Title,
						SourceTimestamp: messageTimestamp(conv, msg),
						Status:          types.StatusPending,
					})
					seq++
				}
				break
			}
		}
	}
	return out
}

// messageTimestamp attributes a candidate to its message's timestamp when
// the export carried one, otherwise to the conversation's creation time.
func messageTimestamp(conv *types.ParsedConversation, msg types.ParsedMessage) *int64 {
	if msg.Timestamp != nil {
		return msg.Timestamp
	}
	ts := conv.CreatedAt
	return &ts
}

// interrogativeLead matches sentences that open with an interrogative
// auxiliary ("Do I ...", "Should we ...") and so read as questions even
// without a trailing question mark.
var interrogativeLead = regexp.MustCompile(`(?i)^(do|does|did|is|are|was|were|am|can|could|should|would|will|what|when|where|which|who|whom|why|how)\b`)

// usableSentence applies the noise filters: at least minSentenceWords
// words, and not a question. Questions describe uncertainty, not facts.
func usableSentence(s string) bool {
	if len(strings.Fields(s)) < minSentenceWords {
		return false
	}
	return !isQuestion(s)
}

func isQuestion(s string) bool {
	t := strings.TrimSpace(s)
	return strings.HasSuffix(t, "?") || interrogativeLead.MatchString(t)
}
