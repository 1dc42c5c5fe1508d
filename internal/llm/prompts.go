package llm

import (
	"fmt"

	"github.com/brookeadam/vms-helper/internal/reference"
)

// SuggestionPrompt builds a strict JSON-only categorization prompt
// embedding the condensed reference listing and the user's notes. The
// category and subcategory in the response must be copied verbatim
// from the listing; the parser downstream tolerates surrounding prose
// anyway.
func SuggestionPrompt(taskText string, tbl *reference.Table, includeRules bool) string {
	return fmt.Sprintf(`TASK: Categorize a volunteer activity against the VMS code reference.
OUTPUT: ONLY valid JSON. NO markdown. NO code blocks. NO backticks.

REFERENCE (one "category | subcategory | keywords" entry per line):
%s
ACTIVITY NOTES:
%s

REQUIRED JSON STRUCTURE:
Your response MUST start with { and end with }
{"category":"<category copied verbatim from the reference>","subcategory":"<subcategory copied verbatim from the reference>","reasoning":"<one short sentence>"}

VALIDATION (STRICT):
1. Start with { - End with }
2. category and subcategory MUST be copied exactly from a reference line
3. Both MUST come from the same line
4. reasoning is optional but MUST be a string when present
5. No extra fields, no trailing commas, valid JSON syntax`,
		tbl.Condensed(includeRules), taskText)
}
