package llmextract

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/grifmang/memsift/pkg/types"
)

// DefaultTranscriptTokenCap bounds how much of a single conversation's
// transcript is rendered into the prompt. Long conversations are
// truncated rather than dropped.
const DefaultTranscriptTokenCap = 2000

// promptInstructions is the extraction contract sent with every batch.
// The five categories are named verbatim; the response must be a bare
// JSON array of {text, category, confidence} objects.
const promptInstructions = `You are extracting long-term memory statements from a user's chat history.

Analyze the conversations below and extract short, self-contained facts about the user worth remembering across sessions.

Rules:
- Extract only facts the user stated or strongly implied. Assistant messages are context, never source material.
- Each fact's category must be exactly one of: preference, technical, project, identity, theme.
- Each fact's confidence must be exactly one of: high, medium, low.
- Deduplicate: one statement per distinct fact, phrased concisely.
- If nothing is worth extracting, return an empty array.

Respond with ONLY a JSON array of objects with keys "text", "category", and "confidence". No markdown, no commentary.`

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// transcriptEncoding lazily loads the cl100k_base tokenizer. A nil return
// means the encoding data was unavailable and callers fall back to a
// byte-based approximation.
func transcriptEncoding() *tiktoken.Tiktoken {
	encodingOnce.Do(func() {
		encoding, _ = tiktoken.GetEncoding("cl100k_base")
	})
	return encoding
}

// buildPrompt renders a batch of conversations as labeled transcripts
// under the extraction instructions. Each transcript is truncated to
// tokenCap tokens; tokenCap <= 0 disables truncation.
func buildPrompt(batch []types.ParsedConversation, tokenCap int) string {
	var sb strings.Builder
	sb.WriteString(promptInstructions)
	sb.WriteString("\n")

	for i := range batch {
		conv := &batch[i]
		var tb strings.Builder
		for _, msg := range conv.Messages {
			fmt.Fprintf(&tb, "[%s]: %s\n", msg.Role, msg.Text)
		}
		fmt.Fprintf(&sb, "\n## Conversation: %s\n\n%s", conv.Title, truncateTokens(tb.String(), tokenCap))
	}
	return sb.String()
}

// truncateTokens trims s to at most tokenCap tokens, marking the cut.
func truncateTokens(s string, tokenCap int) string {
	if tokenCap <= 0 {
		return s
	}
	if enc := transcriptEncoding(); enc != nil {
		tokens := enc.Encode(s, nil, nil)
		if len(tokens) <= tokenCap {
			return s
		}
		return enc.Decode(tokens[:tokenCap]) + "\n[transcript truncated]\n"
	}

	// Rough four-bytes-per-token approximation when the encoding data
	// cannot be loaded.
	limit := tokenCap * 4
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "\n[transcript truncated]\n"
}
