package extract

import (
	"regexp"

	"github.com/grifmang/memsift/pkg/types"
)

// preferenceRules has two tiers: imperative/absolute phrasing is trusted
// at high confidence, hedged phrasing only at medium. Order matters —
// the high tier is tried first for every message.
var preferenceRules = []rule{
	{regexp.MustCompile(`(?i)\bI always\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI never\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\balways use\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bnever use\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI prefer\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI hate\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI can'?t stand\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI refuse to\b`), types.ConfidenceHigh},

	{regexp.MustCompile(`(?i)\bI like\b`), types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bI love\b`), types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bI enjoy\b`), types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bI dislike\b`), types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bI tend to\b`), types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bI usually\b`), types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bI'?d rather\b`), types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bmy favorite\b`), types.ConfidenceMedium},
}

// ExtractPreferences surfaces stated likes, dislikes, and habits from
// user messages. At most one candidate per message.
func ExtractPreferences(convs []types.ParsedConversation) []types.MemoryCandidate {
	p := &patternExtractor{
		idPrefix: "pref",
		category: types.CategoryPreference,
		rules:    preferenceRules,
	}
	return p.extract(convs)
}
