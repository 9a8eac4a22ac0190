package extract

import (
	"regexp"

	"github.com/grifmang/memsift/pkg/types"
)

// projectRules all carry high confidence: someone describing what they
// are building is rarely speaking hypothetically.
var projectRules = []rule{
	{regexp.MustCompile(`(?i)\bI'?m working on\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI am working on\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI'?m building\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bI am building\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy project\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy side project\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy app\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy startup\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bmy website\b`), types.ConfidenceHigh},
	{regexp.MustCompile(`(?i)\bworking on a\b`), types.ConfidenceHigh},
}

// ExtractProjects surfaces descriptions of what the user is building.
func ExtractProjects(convs []types.ParsedConversation) []types.MemoryCandidate {
	p := &patternExtractor{
		idPrefix: "proj",
		category: types.CategoryProject,
		rules:    projectRules,
	}
	return p.extract(convs)
}
