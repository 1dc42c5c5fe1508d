package llm

import (
	"testing"
)

// ============================================================================
// FuzzParseSuggestionResponse - fuzzes suggestion JSON parsing
// ============================================================================

func FuzzParseSuggestionResponse(f *testing.F) {
	// Seed corpus with interesting inputs
	f.Add(`{"category": "Field Research", "subcategory": "Field Research – AAMN", "reasoning": "bird count"}`)
	f.Add(``)
	f.Add(`not json at all`)
	f.Add(`{"category": "", "subcategory": ""}`)
	f.Add(`{"category": null, "subcategory": null}`)
	f.Add(`{"category": "Other"}`)
	f.Add(`{"subcategory": "Other – AAMN"}`)
	f.Add(`{"category": 7, "subcategory": []}`)
	f.Add("```json\n{\"category\": \"Advanced Training\", \"subcategory\": \"TMN Tuesday\"}\n```")
	f.Add(`Text before {"category": "Other", "subcategory": "Other – AAMN"} text after`)
	f.Add(`{"category": "Notes say \"bird count\"", "subcategory": "x"}`)
	f.Add(`{"category": "Résumé with éàü", "subcategory": "Pöint"}`)
	f.Add(`{"category": "` + string(make([]byte, 1000)) + `", "subcategory": "x"}`)
	f.Add(`{"category": "a", "subcategory": "b", "extra": "field", "another": 123}`)
	f.Add(`{"nested": {"category": "a", "subcategory": "b"}}`)
	f.Add(`Multiple {"category": "a", "subcategory": "b"} and {"category": "c", "subcategory": "d"}`)
	f.Add(`{{{`)
	f.Add(`}}}`)
	f.Add(`{"category": "Field Res`)
	f.Add(`{"category": "a", "subcategory": "b", "reasoning": null}`)

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseSuggestionResponse panicked on input %q: %v", input, r)
			}
		}()
		_, _ = ParseSuggestionResponse(input)
	})
}

// ============================================================================
// FuzzExtractJSON - fuzzes the JSON extraction helper function
// ============================================================================

func FuzzExtractJSON(f *testing.F) {
	// Seed corpus with interesting inputs
	f.Add(`{"key": "value"}`)
	f.Add(``)
	f.Add(`just plain text`)
	f.Add("```json\n{\"key\": \"value\"}\n```")
	f.Add("```\n{\"key\": \"value\"}\n```")
	f.Add(`Text before {"key": "value"} text after`)
	f.Add(`{"outer": {"inner": "value"}}`)
	f.Add(`{"text": "He said \"hello\""}`)
	f.Add(`{"path": "C:\\Users\\test"}`)
	f.Add(`{`)
	f.Add(`}`)
	f.Add(`{{{`)
	f.Add(`}}}`)
	f.Add(`{"key": "value"}{"another": "object"}`)
	f.Add("```json\nincomplete json")
	f.Add(`{"unicode": "😀🎉🔥"}`)
	f.Add(`{"": ""}`)
	f.Add(`{"key": {"nested": {"deeply": {"object": "value"}}}}`)
	f.Add(string(make([]byte, 10000)))

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("extractJSON panicked on input %q: %v", input, r)
			}
		}()
		_ = extractJSON(input)
	})
}
