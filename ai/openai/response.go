package openai

import "strings"

// stripCodeFences removes a surrounding markdown code fence from an LLM
// response, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// repairJSON fixes the most common malformation in model-produced JSON:
// object keys missing their opening quote, e.g. `{budget": "low"}`.
// Well-formed input passes through unchanged.
func repairJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	runes := []rune(s)
	inString := false
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inString {
			b.WriteRune(ch)
			if ch == '"' && (i == 0 || runes[i-1] != '\\') {
				inString = false
			}
			continue
		}

		b.WriteRune(ch)
		if ch == '"' {
			inString = true
			continue
		}

		if ch != '{' && ch != ',' {
			continue
		}

		// Look ahead past whitespace for a bare identifier followed by ":
		j := i + 1
		for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t' || runes[j] == '\n') {
			b.WriteRune(runes[j])
			j++
		}
		start := j
		for j < len(runes) && (isIdentRune(runes[j]) || runes[j] == ' ') {
			j++
		}
		if j > start && j+1 < len(runes) && runes[j] == '"' && runes[j+1] == ':' {
			b.WriteRune('"')
			b.WriteString(strings.TrimRight(string(runes[start:j]), " "))
			i = j - 1 // resume at the existing closing quote
		} else {
			i = start - 1
		}
	}
	return b.String()
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
