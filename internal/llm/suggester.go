package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/brookeadam/vms-helper/internal/reference"
	"github.com/brookeadam/vms-helper/pkg/types"
)

// FailureKind distinguishes the recoverable suggestion failure modes.
// Callers branch on the kind, never on error-message text.
type FailureKind int

const (
	// FailureUnavailable covers network errors, provider 5xx responses
	// and an open circuit breaker.
	FailureUnavailable FailureKind = iota

	// FailureRateLimited means the provider returned HTTP 429.
	FailureRateLimited

	// FailureMalformed means the response carried no parseable
	// structured payload.
	FailureMalformed

	// FailureNoCredentials means no provider is configured at all.
	FailureNoCredentials
)

// SuggestionFailure is the typed recoverable failure returned by
// Suggest. The pipeline continues in manual-selection mode; Advisory
// supplies the user-visible explanation.
type SuggestionFailure struct {
	Kind FailureKind
	Err  error
}

func (f *SuggestionFailure) Error() string {
	return fmt.Sprintf("suggestion failed (%s): %v", f.kindString(), f.Err)
}

func (f *SuggestionFailure) Unwrap() error { return f.Err }

func (f *SuggestionFailure) kindString() string {
	switch f.Kind {
	case FailureRateLimited:
		return "rate limited"
	case FailureMalformed:
		return "malformed response"
	case FailureNoCredentials:
		return "no credentials"
	default:
		return "unavailable"
	}
}

// Advisory returns the message shown to the user when the suggestion
// is skipped. Rate limiting is called out distinctly so the user knows
// a retry will help.
func (f *SuggestionFailure) Advisory() string {
	switch f.Kind {
	case FailureRateLimited:
		return "The AI service is busy right now — try again shortly, or pick the category manually."
	case FailureMalformed:
		return "The AI response could not be understood. Pick the category manually."
	case FailureNoCredentials:
		return "AI suggestions are not configured. Pick the category manually."
	default:
		return "The AI service is unavailable. Pick the category manually."
	}
}

// Suggester asks the external service for a (category, subcategory)
// suggestion. Each call is a single attempt triggered by explicit user
// action: no retries, no polling, no background work.
type Suggester struct {
	gen          TextGenerator
	includeRules bool
}

// NewSuggester creates a Suggester over gen. A nil generator is legal
// and yields FailureNoCredentials on every call, modeling a deployment
// without a configured provider.
func NewSuggester(gen TextGenerator, includeRules bool) *Suggester {
	return &Suggester{gen: gen, includeRules: includeRules}
}

// Suggest runs one suggestion attempt. The returned pair is NOT
// validated against the table here; the selection resolver absorbs a
// suggested value that does not exist. On failure the error is always
// a *SuggestionFailure.
func (s *Suggester) Suggest(ctx context.Context, taskText string, tbl *reference.Table) (*types.ClassificationResult, error) {
	if s.gen == nil {
		return nil, &SuggestionFailure{Kind: FailureNoCredentials, Err: ErrNoCredentials}
	}

	prompt := SuggestionPrompt(taskText, tbl, s.includeRules)

	raw, err := s.gen.Complete(ctx, prompt)
	if err != nil {
		return nil, &SuggestionFailure{Kind: classifyCompletionError(err), Err: err}
	}

	result, err := ParseSuggestionResponse(raw)
	if err != nil {
		return nil, &SuggestionFailure{Kind: FailureMalformed, Err: err}
	}
	return result, nil
}

// classifyCompletionError maps a provider error to a failure kind
// using the typed status, not message contents.
func classifyCompletionError(err error) FailureKind {
	if IsRateLimited(err) {
		return FailureRateLimited
	}
	if errors.Is(err, ErrNoCredentials) {
		return FailureNoCredentials
	}
	return FailureUnavailable
}
