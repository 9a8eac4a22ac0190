// Package types defines the shared data model for the memsift extraction
// pipeline: parsed conversations flowing in, memory candidates flowing out.
package types

import "fmt"

// Role identifies the author of a parsed message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Category classifies the kind of information a memory candidate encodes.
type Category string

const (
	CategoryPreference Category = "preference"
	CategoryTechnical  Category = "technical"
	CategoryProject    Category = "project"
	CategoryIdentity   Category = "identity"
	CategoryTheme      Category = "theme"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategoryPreference,
	CategoryTechnical,
	CategoryProject,
	CategoryIdentity,
	CategoryTheme,
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPreference, CategoryTechnical, CategoryProject, CategoryIdentity, CategoryTheme:
		return true
	}
	return false
}

// Confidence is a coarse three-level estimate of how strongly a candidate
// reflects a real, stated fact. No numeric score is exposed.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether cf is one of the three known confidence levels.
func (cf Confidence) Valid() bool {
	switch cf {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Rank orders confidence levels for survivor selection: high > medium > low.
// Unknown values rank below low.
func (cf Confidence) Rank() int {
	switch cf {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// Status tracks a candidate through the review lifecycle. The extraction
// core only ever emits StatusPending; approval and rejection belong to the
// review surface downstream.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParsedMessage is a single message from an exported conversation.
// Immutable once produced by the parsing collaborator.
type ParsedMessage struct {
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp *int64 `json:"timestamp"`
}

// ParsedConversation is one exported conversation, already flattened from
// the export container format by an upstream collaborator.
type ParsedConversation struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Model     string          `json:"model"`
	CreatedAt int64           `json:"createdAt"`
	GizmoID   string          `json:"gizmoId"`
	Messages  []ParsedMessage `json:"messages"`
}

// UserTexts returns the text of every user-authored message in order.
// Assistant text is never source material for a memory.
func (c *ParsedConversation) UserTexts() []string {
	var texts []string
	for _, m := range c.Messages {
		if m.Role == RoleUser {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// MemoryCandidate is one extracted, unreviewed memory statement.
type MemoryCandidate struct {
	ID              string     `json:"id"`
	Text            string     `json:"text"`
	Category        Category   `json:"category"`
	Confidence      Confidence `json:"confidence"`
	SourceTitle     string     `json:"sourceTitle"`
	SourceTimestamp *int64     `json:"sourceTimestamp"`
	Status          Status     `json:"status"`
}

// Validate ensures a candidate satisfies the pipeline invariants.
func (m *MemoryCandidate) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("types: missing candidate ID")
	}
	if m.Text == "" {
		return fmt.Errorf("types: empty candidate text")
	}
	if !m.Category.Valid() {
		return fmt.Errorf("types: invalid category %q", m.Category)
	}
	if !m.Confidence.Valid() {
		return fmt.Errorf("types: invalid confidence %q", m.Confidence)
	}
	return nil
}

// CorpusSourceTitle marks candidates synthesized from the whole corpus
// rather than a single conversation.
const CorpusSourceTitle = "multiple"
