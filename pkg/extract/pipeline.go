// Package extract implements the heuristic memory extraction pipeline:
// pattern extractors for preferences, projects, identity, and technical
// stack statements, plus corpus-wide frequency analysis for technology
// keywords and recurring themes. All extractors are pure functions over
// the input conversations and never fail; unusable input degrades to an
// empty result.
package extract

import "github.com/grifmang/memsift/pkg/types"

// Pipeline bundles the tunable thresholds of the frequency-based
// extractors. The zero value selects the defaults.
type Pipeline struct {
	// TermThreshold is the distinct-conversation count at which a
	// vocabulary term is promoted. Default 3.
	TermThreshold int

	// ThemeThreshold is the distinct-conversation count at which an
	// n-gram is promoted. Default 3.
	ThemeThreshold int

	// ThemeHighThreshold is the count at which a theme candidate gets
	// high instead of medium confidence. Default 5.
	ThemeHighThreshold int
}

// ExtractAll runs the five heuristic extractors over the same input and
// concatenates their results in a fixed order: preference, technical,
// project, identity, theme. Deduplication is the caller's concern.
func (p Pipeline) ExtractAll(convs []types.ParsedConversation) []types.MemoryCandidate {
	var out []types.MemoryCandidate
	out = append(out, ExtractPreferences(convs)...)
	out = append(out, ExtractTechnical(convs, p.TermThreshold)...)
	out = append(out, ExtractProjects(convs)...)
	out = append(out, ExtractIdentities(convs)...)
	out = append(out, ExtractThemes(convs, p.ThemeThreshold, p.ThemeHighThreshold)...)
	return out
}

// ExtractAll runs the heuristic pipeline with default thresholds.
func ExtractAll(convs []types.ParsedConversation) []types.MemoryCandidate {
	return Pipeline{}.ExtractAll(convs)
}
