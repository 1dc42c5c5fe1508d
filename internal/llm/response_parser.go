package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brookeadam/vms-helper/pkg/types"
)

// suggestionResponse is the structured payload the service is asked to
// return.
type suggestionResponse struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Reasoning   string `json:"reasoning,omitempty"`
}

// extractJSON extracts the first valid JSON object from a string that
// may contain extra text. This handles cases where LLMs add
// explanations before/after the JSON despite instructions.
func extractJSON(text string) string {
	// Remove common markdown code block markers.
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	if start == -1 {
		return text // no JSON found, return as-is and let the parser fail
	}

	// Find the matching closing brace, skipping braces inside strings.
	braceCount := 0
	inString := false
	escape := false

	for i := start; i < len(text); i++ {
		char := text[i]

		if escape {
			escape = false
			continue
		}
		if char == '\\' {
			escape = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}

		if !inString {
			switch char {
			case '{':
				braceCount++
			case '}':
				braceCount--
				if braceCount == 0 {
					return text[start : i+1]
				}
			}
		}
	}

	return text // no complete JSON found
}

// ParseSuggestionResponse scans raw service output for the first
// well-formed JSON object and parses it into a ClassificationResult.
// Parse failure is a recoverable error, never a panic; a payload
// missing both category and subcategory is treated as malformed.
func ParseSuggestionResponse(raw string) (*types.ClassificationResult, error) {
	cleanJSON := extractJSON(raw)

	var resp suggestionResponse
	if err := json.Unmarshal([]byte(cleanJSON), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion JSON: %w", err)
	}

	resp.Category = strings.TrimSpace(resp.Category)
	resp.Subcategory = strings.TrimSpace(resp.Subcategory)
	if resp.Category == "" && resp.Subcategory == "" {
		return nil, fmt.Errorf("suggestion JSON carries neither category nor subcategory")
	}

	return &types.ClassificationResult{
		Category:    resp.Category,
		Subcategory: resp.Subcategory,
		Reasoning:   resp.Reasoning,
	}, nil
}
