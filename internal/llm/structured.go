package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks an extracted value after decoding. A nil return accepts it.
type Validator[T any] func(T) error

// ExtractJSON pulls the first JSON object out of raw model text and decodes
// it into T. Models wrap output in code fences and prose despite instructions,
// so the extractor scans for the first balanced brace block instead of
// trusting the whole response.
func ExtractJSON[T any](raw string, validate Validator[T]) (T, error) {
	var zero T

	block := firstJSONObject(stripFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validate != nil {
		if err := validate(result); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

func stripFences(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// firstJSONObject returns the first balanced { ... } block, tracking string
// literals so braces inside values do not miscount.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
