package extract

import (
	"regexp"

	"github.com/grifmang/memsift/pkg/types"
)

// identityRules target self-description: occupation, employer, background,
// and location. Single high-confidence tier.
var identityRules = []rule{
	{regexp.MustCompile(`(?i)\bI work (as|at|for)\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy job\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy role\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI'?m an?\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI am an?\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy background is\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\byears of experience\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI'?m based in\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI live in\b`), types.ConfidenceHigh},
}

// ExtractIdentities surfaces statements about who the user is.
func ExtractIdentities(convs []types.ParsedConversation) []types.MemoryCandidate {
	p := &patternExtractor{
		idPrefix: "ident",
		category: types.CategoryIdentity,
		rules:    identityRules,
	}
	return p.extract(convs)
}
