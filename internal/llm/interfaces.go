// Package llm is the AI suggestion adapter: it asks an external
// text-generation service for a (category, subcategory) suggestion
// given the user's notes and a condensed reference-table listing, and
// degrades to a typed "no suggestion" failure on any service problem.
package llm

import "context"

// TextGenerator is the interface for LLM text completion. All
// suggestion prompts use single-string completion style (not chat).
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	GetModel() string
}
