package suggest

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractOutputText pulls the generated text out of a Responses API body.
// It handles the documented shapes (output_text, output[].content[]) and,
// when the shape is unrecognized, falls back to the first substantial
// string found anywhere in the structure.
func ExtractOutputText(data any) string {
	obj, ok := data.(map[string]any)
	if !ok {
		return ""
	}

	if text, ok := obj["output_text"].(string); ok {
		return text
	}

	if output, ok := obj["output"].([]any); ok && len(output) > 0 {
		if first, ok := output[0].(map[string]any); ok {
			if content, ok := first["content"].([]any); ok {
				for _, part := range content {
					p, ok := part.(map[string]any)
					if !ok {
						continue
					}
					if p["type"] == "output_text" {
						if text, ok := p["text"].(string); ok {
							return text
						}
					}
					if text, ok := p["content"].(string); ok {
						return text
					}
				}
			}
			if text, ok := first["text"].(string); ok {
				return text
			}
		}
	}

	return findFirstText(obj)
}

// findFirstText walks a decoded JSON value for the first string long enough
// to plausibly be model output.
func findFirstText(value any) string {
	switch v := value.(type) {
	case string:
		if len(v) > 10 {
			return v
		}
	case []any:
		for _, item := range v {
			if s := findFirstText(item); s != "" {
				return s
			}
		}
	case map[string]any:
		for _, item := range v {
			if s := findFirstText(item); s != "" {
				return s
			}
		}
	}
	return ""
}

var objPattern = regexp.MustCompile(`\{[^{}]+\}`)

// ExtractJSONArray salvages a JSON array of suggestions from free-form model
// output. Fallback chain: strict parse, then the outermost bracketed slice,
// then harvesting individual objects and wrapping them. Returns nil when
// nothing usable is found.
func ExtractJSONArray(raw string) []Suggestion {
	cleaned := strings.TrimSpace(raw)

	// Tier 1: the whole output is the array
	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err == nil {
		return suggestions
	}

	// Tier 2: array embedded in prose or markdown fences
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start != -1 && end > start {
		suggestions = nil
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &suggestions); err == nil {
			return suggestions
		}
	}

	// Tier 3: harvest flat objects and wrap them
	objs := objPattern.FindAllString(cleaned, -1)
	if len(objs) > 0 {
		suggestions = nil
		wrapped := "[" + strings.Join(objs, ",") + "]"
		if err := json.Unmarshal([]byte(wrapped), &suggestions); err == nil {
			return suggestions
		}
	}

	return nil
}
