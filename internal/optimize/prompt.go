package optimize

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an Excel formula optimization expert. " +
	"Your task is to analyze and improve Excel formulas."

const userPromptTemplate = `Given this Excel formula:
%s

Beautified version:
%s

Please provide:
1. A simplified/optimized version of this formula using modern Excel best practices
2. A brief explanation of what improvements you made and why

Guidelines:
- Use modern Excel functions when possible (IFS instead of nested IF, XLOOKUP instead of VLOOKUP/INDEX-MATCH, LET for clarity, etc.)
- Simplify complex nested structures
- Improve readability and maintainability
- Keep the same logical behavior
- If the formula is already optimal, say so and suggest minor improvements if any

Format your response EXACTLY as follows:
SIMPLIFIED:
[put the optimized formula here, on a single line, starting with =]

COMMENT:
[put your explanation here]

Important:
- The SIMPLIFIED formula must be a valid Excel formula on a single line
- Start the simplified formula with =
- Be concise in your explanation (2-3 sentences max)
- If no optimization is possible, return the original formula and explain why it's already optimal`

func userPrompt(formula, beautified string) string {
	return fmt.Sprintf(userPromptTemplate, formula, beautified)
}

// parseReply extracts the SIMPLIFIED and COMMENT sections from a model
// reply. The simplified formula is the first non-empty line of its section;
// comment lines are joined with single spaces. Missing sections fall back to
// explanatory placeholders rather than failing.
func parseReply(text string) Result {
	var simplified, comment string
	section := ""

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		switch line {
		case "SIMPLIFIED:":
			section = "simplified"
			continue
		case "COMMENT:":
			section = "comment"
			continue
		}
		if line == "" {
			continue
		}

		switch section {
		case "simplified":
			if simplified == "" {
				simplified = line
			}
		case "comment":
			if comment == "" {
				comment = line
			} else {
				comment += " " + line
			}
		}
	}

	if simplified != "" && !strings.HasPrefix(simplified, "=") {
		simplified = "=" + simplified
	}
	if simplified == "" {
		simplified = "Unable to parse response"
	}
	if comment == "" {
		comment = "Unable to parse optimization explanation"
	}

	return Result{Simplified: simplified, Comment: comment}
}
