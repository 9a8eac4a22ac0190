// Package llmextract implements the LLM-assisted extraction mode: an
// alternative to the heuristic pipeline that batches conversations,
// prompts a generative text service, and validates its structured
// response into memory candidates.
package llmextract

import (
	"context"
	"fmt"

	"github.com/grifmang/memsift/pkg/llm"
	"github.com/grifmang/memsift/pkg/types"
)

// DefaultBatchSize is the number of conversations sent per request.
const DefaultBatchSize = 5

// ProgressFunc is invoked before each batch's request is issued, with the
// 1-based batch number and the total batch count.
type ProgressFunc func(batch, total int)

// Extractor runs batched LLM extraction through an llm.Provider.
type Extractor struct {
	provider           llm.Provider
	batchSize          int
	transcriptTokenCap int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBatchSize overrides the conversations-per-request batch size.
func WithBatchSize(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithTranscriptTokenCap overrides the per-conversation transcript token
// budget used by the prompt builder. Zero disables truncation.
func WithTranscriptTokenCap(n int) Option {
	return func(e *Extractor) {
		e.transcriptTokenCap = n
	}
}

// New creates an Extractor backed by the given provider.
func New(provider llm.Provider, opts ...Option) *Extractor {
	e := &Extractor{
		provider:           provider,
		batchSize:          DefaultBatchSize,
		transcriptTokenCap: DefaultTranscriptTokenCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes the conversations in fixed-size batches, strictly
// sequentially. onProgress may be nil.
//
// Extract is all-or-nothing: the first failed batch aborts the call and
// candidates already collected from earlier batches are discarded.
// Non-success upstream responses surface as *llm.APIError; transport
// errors propagate verbatim. Malformed content inside a successful
// response is not an error — that batch just contributes no candidates.
func (e *Extractor) Extract(ctx context.Context, convs []types.ParsedConversation, onProgress ProgressFunc) ([]types.MemoryCandidate, error) {
	if len(convs) == 0 {
		return nil, nil
	}

	total := (len(convs) + e.batchSize - 1) / e.batchSize
	out := make([]types.MemoryCandidate, 0)
	seq := 0

	for i := 0; i < total; i++ {
		start := i * e.batchSize
		end := start + e.batchSize
		if end > len(convs) {
			end = len(convs)
		}
		batch := convs[start:end]

		if onProgress != nil {
			onProgress(i+1, total)
		}

		text, err := e.provider.Complete(ctx, buildPrompt(batch, e.transcriptTokenCap))
		if err != nil {
			return nil, err
		}

		title, ts := batchAttribution(batch, i+1)
		out = append(out, parseResponse(text, title, ts, &seq)...)
	}
	return out, nil
}

// batchAttribution picks the source title and timestamp for a batch's
// candidates: a single-conversation batch keeps that conversation's own
// identity, a multi-conversation batch gets a synthesized title and the
// first conversation's creation time.
func batchAttribution(batch []types.ParsedConversation, batchNumber int) (string, *int64) {
	if len(batch) == 1 {
		ts := batch[0].CreatedAt
		return batch[0].Title, &ts
	}
	ts := batch[0].CreatedAt
	return fmt.Sprintf("batch %d (%d conversations)", batchNumber, len(batch)), &ts
}
