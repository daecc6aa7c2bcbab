package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// braceScan greedily matches from the first '{' to the last '}'. It is not
// brace-depth aware: an unrelated '{' earlier in the text widens the match.
// Kept as-is for compatibility with the established extraction behavior.
var braceScan = regexp.MustCompile(`(?s)\{.*\}`)

// extractStrategy pulls a JSON candidate string out of free-form model
// output. Returns the candidate and whether the strategy applied.
type extractStrategy func(text string) (string, bool)

// extractStrategies are tried in order: an explicit ```json fence, any fence
// whose content parses as JSON, then the brace scan as last resort.
var extractStrategies = []extractStrategy{
	extractJSONFence,
	extractAnyFence,
	extractBraceScan,
}

// ExtractJSON excavates a JSON object from text that may wrap it in prose or
// markdown fencing. Fails with ErrInvalidResponse when no strategy yields a
// candidate that parses as a JSON object.
func ExtractJSON(text string) (json.RawMessage, error) {
	candidate := text
	for _, strategy := range extractStrategies {
		if c, ok := strategy(text); ok {
			candidate = c
			break
		}
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, &ErrInvalidResponse{
			Content: json.RawMessage(candidate),
			Err:     err,
		}
	}

	return json.RawMessage(candidate), nil
}

// extractJSONFence takes the content of a ```json fenced block. The content
// is not pre-validated; a malformed block fails the whole extraction rather
// than falling through, matching the established precedence.
func extractJSONFence(text string) (string, bool) {
	_, after, found := strings.Cut(text, "```json")
	if !found {
		return "", false
	}
	content, _, closed := strings.Cut(after, "```")
	if !closed {
		return "", false
	}
	return strings.TrimSpace(content), true
}

// extractAnyFence takes the first generic fenced block, but only when its
// content actually parses as JSON.
func extractAnyFence(text string) (string, bool) {
	_, after, found := strings.Cut(text, "```")
	if !found {
		return "", false
	}
	content, _, closed := strings.Cut(after, "```")
	if !closed {
		return "", false
	}
	candidate := strings.TrimSpace(content)
	if !json.Valid([]byte(candidate)) {
		return "", false
	}
	return candidate, true
}

func extractBraceScan(text string) (string, bool) {
	match := braceScan.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}
