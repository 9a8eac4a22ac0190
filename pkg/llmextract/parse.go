package llmextract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grifmang/memsift/pkg/types"
)

// responseItem is the shape of one element in the model's JSON array.
type responseItem struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Confidence string `json:"confidence"`
}

// ParseResponse turns a raw model response into candidates attributed to
// the given source. Malformed output is "no facts found", never an
// error: invalid JSON or a non-array yields an empty list, and invalid
// elements are dropped individually.
func ParseResponse(raw, sourceTitle string, sourceTimestamp *int64) []types.MemoryCandidate {
	seq := 0
	return parseResponse(raw, sourceTitle, sourceTimestamp, &seq)
}

// parseResponse is ParseResponse with an externally owned id counter, so
// candidates from consecutive batches in one extraction run share an id
// space.
func parseResponse(raw, sourceTitle string, sourceTimestamp *int64, seq *int) []types.MemoryCandidate {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &items); err != nil {
		return nil
	}

	var out []types.MemoryCandidate
	for _, rawItem := range items {
		var item responseItem
		if err := json.Unmarshal(rawItem, &item); err != nil {
			continue
		}
		text := strings.TrimSpace(item.Text)
		category := types.Category(item.Category)
		confidence := types.Confidence(item.Confidence)
		if text == "" || !category.Valid() || !confidence.Valid() {
			continue
		}
		out = append(out, types.MemoryCandidate{
			ID:              fmt.Sprintf("api-%d", *seq),
			Text:            text,
			Category:        category,
			Confidence:      confidence,
			SourceTitle:     sourceTitle,
			SourceTimestamp: sourceTimestamp,
			Status:          types.StatusPending,
		})
		*seq++
	}
	return out
}

// stripCodeFence removes an optional surrounding markdown code fence
// (```json ... ``` or ``` ... ```) from a model response.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
