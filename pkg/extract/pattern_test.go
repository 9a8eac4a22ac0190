package extract

import (
	"testing"

	"github.com/grifmang/memsift/pkg/types"
)

// conv builds a conversation whose messages are all user-authored.
func conv(title string, userTexts ...string) types.ParsedConversation {
	c := types.ParsedConversation{
		ID:        "conv-" + title,
		Title:     title,
		CreatedAt: 1700000000,
	}
	for _, text := range userTexts {
		c.Messages = append(c.Messages, types.ParsedMessage{Role: types.RoleUser, Text: text})
	}
	return c
}

func TestExtractPreferencesHighConfidence(t *testing.T) {
	convs := []types.ParsedConversation{
		conv("Editors", "I prefer dark mode for all my editors."),
	}

	got := ExtractPreferences(convs)
	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}

	c := got[0]
	if c.Text != "I prefer dark mode for all my editors." {
		t.Errorf("Expected sentence verbatim, got %q", c.Text)
	}
	if c.Confidence != types.ConfidenceHigh {
		t.Errorf("Expected high confidence, got %s", c.Confidence)
	}
	if c.Category != types.CategoryPreference {
		t.Errorf("Expected preference category, got %s", c.Category)
	}
	if c.ID != "pref-0" {
		t.Errorf("Expected id pref-0, got %s", c.ID)
	}
	if c.Status != types.StatusPending {
		t.Errorf("Expected pending status, got %s", c.Status)
	}
	if c.SourceTitle != "Editors" {
		t.Errorf("Expected source title Editors, got %s", c.SourceTitle)
	}
}

func TestExtractPreferencesQuestionFiltered(t *testing.T) {
	convs := []types.ParsedConversation{
		conv("Editors", "Do I prefer dark mode or light mode?"),
	}

	if got := ExtractPreferences(convs); len(got) != 0 {
		t.Errorf("Expected question to be filtered, got %d candidates", len(got))
	}
}

func TestExtractPreferencesShortSentenceFiltered(t *testing.T) {
	convs := []types.ParsedConversation{
		conv("Short", "I prefer tabs."),
	}

	if got := ExtractPreferences(convs); len(got) != 0 {
		t.Errorf("Expected short sentence to be filtered, got %d candidates", len(got))
	}
}

func TestAtMostOneCandidatePerMessage(t *testing.T) {
	// Both a high-tier and a medium-tier phrase in one message; only the
	// first matching rule may emit.
	convs := []types.ParsedConversation{
		conv("Habits", "I always write tests first and I like short functions everywhere."),
	}

	got := ExtractPreferences(convs)
	if len(got) != 1 {
		t.Fatalf("Expected exactly 1 candidate per message, got %d", len(got))
	}
	if got[0].Confidence != types.ConfidenceHigh {
		t.Errorf("Expected first rule (high tier) to win, got %s", got[0].Confidence)
	}
}

func TestFilteredMatchIsNotReplaced(t *testing.T) {
	// The first matching rule hits a too-short sentence; a later rule
	// would match a usable one, but filtered matches are dropped, not
	// replaced.
	convs := []types.ParsedConversation{
		conv("Habits", "I always use vim. I tend to rebind every key I can find."),
	}

	if got := ExtractPreferences(convs); len(got) != 0 {
		t.Errorf("Expected filtered match to drop the whole message, got %d candidates", len(got))
	}
}

func TestAssistantMessagesNeverMatch(t *testing.T) {
	c := types.ParsedConversation{
		ID:    "mixed",
		Title: "Mixed roles",
		Messages: []types.ParsedMessage{
			{Role: types.RoleAssistant, Text: "I prefer dark mode for all my editors."},
			{Role: types.RoleAssistant, Text: "I'm working on a compiler for a new language."},
		},
	}

	if got := ExtractPreferences([]types.ParsedConversation{c}); len(got) != 0 {
		t.Errorf("Assistant text produced preference candidates: %v", got)
	}
	if got := ExtractProjects([]types.ParsedConversation{c}); len(got) != 0 {
		t.Errorf("Assistant text produced project candidates: %v", got)
	}
}

func TestExtractorsEmptyInput(t *testing.T) {
	if got := ExtractPreferences(nil); len(got) != 0 {
		t.Errorf("ExtractPreferences(nil) = %v, want empty", got)
	}
	if got := ExtractProjects(nil); len(got) != 0 {
		t.Errorf("ExtractProjects(nil) = %v, want empty", got)
	}
	if got := ExtractIdentities(nil); len(got) != 0 {
		t.Errorf("ExtractIdentities(nil) = %v, want empty", got)
	}
	if got := ExtractTechnical(nil, 0); len(got) != 0 {
		t.Errorf("ExtractTechnical(nil) = %v, want empty", got)
	}
	if got := ExtractThemes(nil, 0, 0); len(got) != 0 {
		t.Errorf("ExtractThemes(nil) = %v, want empty", got)
	}
}

func TestExtractProjects(t *testing.T) {
	convs := []types.ParsedConversation{
		conv("Side work", "I'm building a recipe organizer app for my family."),
		conv("Unrelated", "What is the capital of France?"),
	}

	got := ExtractProjects(convs)
	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if got[0].Category != types.CategoryProject {
		t.Errorf("Expected project category, got %s", got[0].Category)
	}
	if got[0].ID != "proj-0" {
		t.Errorf("Expected id proj-0, got %s", got[0].ID)
	}
}

func TestExtractIdentities(t *testing.T) {
	convs := []types.ParsedConversation{
		conv("About me", "For context: I work as a data engineer at a logistics company."),
	}

	got := ExtractIdentities(convs)
	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if got[0].Category != types.CategoryIdentity {
		t.Errorf("Expected identity category, got %s", got[0].Category)
	}
	if got[0].Confidence != types.ConfidenceHigh {
		t.Errorf("Expected high confidence, got %s", got[0].Confidence)
	}
}

func TestCandidateIDsIncrementWithinRun(t *testing.T) {
	convs := []types.ParsedConversation{
		conv("One", "I prefer dark mode for all my editors."),
		conv("Two", "I like writing small focused commits every day."),
	}

	got := ExtractPreferences(convs)
	if len(got) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(got))
	}
	if got[0].ID != "pref-0" || got[1].ID != "pref-1" {
		t.Errorf("Expected ids pref-0, pref-1, got %s, %s", got[0].ID, got[1].ID)
	}

	// A fresh invocation restarts the counter.
	again := ExtractPreferences(convs[:1])
	if again[0].ID != "pref-0" {
		t.Errorf("Expected counter to reset per run, got %s", again[0].ID)
	}
}
