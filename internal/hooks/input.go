package hooks

import (
	"encoding/json"
	"fmt"
	"io"
)

// ToolInput represents the input to a tool from Claude Code.
type ToolInput struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	parsed    map[string]interface{}
}

// ParseToolInput reads and parses tool input JSON from a reader.
// Only malformed JSON is an error; events with missing or unexpected
// fields parse successfully so that rules can skip them.
func ParseToolInput(reader io.Reader) (*ToolInput, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("Invalid JSON input: %w", err)
	}

	var input ToolInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("Invalid JSON input: %w", err)
	}

	if len(input.ToolInput) > 0 {
		var parsed map[string]interface{}
		// A non-object tool_input just means no arguments to look up.
		if err := json.Unmarshal(input.ToolInput, &parsed); err == nil {
			input.parsed = parsed
		}
	}

	return &input, nil
}

// GetStringArg retrieves a string argument from the tool input.
// Returns the value and true if found, empty string and false if not found.
func (t *ToolInput) GetStringArg(name string) (string, bool) {
	if t.parsed == nil {
		return "", false
	}

	value, ok := t.parsed[name]
	if !ok {
		return "", false
	}

	strValue, ok := value.(string)
	if !ok {
		return "", false
	}

	return strValue, true
}
