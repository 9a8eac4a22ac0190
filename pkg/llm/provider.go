// Package llm provides the provider abstraction the LLM-assisted
// extraction mode talks through.
//
// Example usage:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//	    "os"
//
//	    "github.com/grifmang/memsift/pkg/llm/anthropic"
//	)
//
//	func main() {
//	    provider, err := anthropic.NewProvider(
//	        os.Getenv("ANTHROPIC_API_KEY"),
//	        anthropic.WithModel("claude-sonnet-4-20250514"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    text, err := provider.Complete(context.Background(), "Say hello.")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(text)
//	}
package llm

import (
	"context"
	"fmt"
)

// Provider is the synchronous completion interface the extraction
// pipeline needs. Batches are small and processed sequentially, so there
// is no streaming surface here.
//
// Complete returns *APIError for a non-success upstream response and the
// underlying transport error, unwrapped, when the request itself fails.
// Retry, backoff, and timeout policy are the caller's concern.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)

	// GetModel returns the model name being used.
	GetModel() string
}

// APIError is a non-success HTTP response from the upstream service. The
// message carries the numeric status and the raw response body so callers
// can distinguish rate limiting from server faults.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.Status, e.Body)
}
