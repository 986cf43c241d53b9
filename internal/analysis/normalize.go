// Package analysis turns raw model completions into one composite record
// per deck: best-effort JSON recovery, field-name reconciliation across
// historical prompt revisions, rubric scoring and the final merge.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ParseError indicates model output that is not recoverable as a JSON
// object even after brace extraction. Raw carries the original response
// text for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse JSON from model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Normalize parses raw model output as a JSON object. Models sometimes wrap
// the object in prose or code fences, so on a failed strict parse it
// retries on the substring between the first '{' and the last '}'. No
// bracket-balance validation happens beyond that outermost pair; malformed
// JSON inside still fails, surfaced as a ParseError rather than a guessed
// object.
func Normalize(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)

	if obj, err := parseObject(trimmed); err == nil {
		return obj, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, &ParseError{Raw: raw, Err: errors.New("no JSON object found in response")}
	}

	obj, err := parseObject(trimmed[start : end+1])
	if err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return obj, nil
}

func parseObject(s string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, err
	}
	// "null" unmarshals successfully into a nil map; that is not an object.
	if obj == nil {
		return nil, errors.New("response is valid JSON but not an object")
	}
	return obj, nil
}
