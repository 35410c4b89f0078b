package hooks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolInput(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErr      bool
		errContains  string
		wantToolName string
	}{
		{
			name:         "valid input with command",
			input:        `{"tool_name": "Bash", "tool_input": {"command": "ls"}}`,
			wantToolName: "Bash",
		},
		{
			name:         "extra fields are ignored",
			input:        `{"tool_name": "Bash", "tool_input": {"command": "ls", "timeout": 5}, "session_id": "abc", "cwd": "/tmp"}`,
			wantToolName: "Bash",
		},
		{
			name:         "missing tool_name parses successfully",
			input:        `{"tool_input": {"command": "ls"}}`,
			wantToolName: "",
		},
		{
			name:         "missing tool_input parses successfully",
			input:        `{"tool_name": "Bash"}`,
			wantToolName: "Bash",
		},
		{
			name:         "non-object tool_input parses successfully",
			input:        `{"tool_name": "Bash", "tool_input": "not an object"}`,
			wantToolName: "Bash",
		},
		{
			name:        "invalid JSON returns error",
			input:       `{invalid json}`,
			wantErr:     true,
			errContains: "Invalid JSON input",
		},
		{
			name:        "truncated JSON returns error",
			input:       `{"tool_name": "Bash", "tool_input": {"comma`,
			wantErr:     true,
			errContains: "Invalid JSON input",
		},
		{
			name:        "empty input returns error",
			input:       ``,
			wantErr:     true,
			errContains: "Invalid JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToolInput(strings.NewReader(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToolName, got.ToolName)
		})
	}
}

func TestToolInput_GetStringArg(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		arg       string
		wantValue string
		wantOK    bool
	}{
		{
			name:      "returns existing string argument",
			input:     `{"tool_name": "Bash", "tool_input": {"command": "git status"}}`,
			arg:       "command",
			wantValue: "git status",
			wantOK:    true,
		},
		{
			name:   "missing argument returns false",
			input:  `{"tool_name": "Bash", "tool_input": {"command": "ls"}}`,
			arg:    "description",
			wantOK: false,
		},
		{
			name:   "non-string argument returns false",
			input:  `{"tool_name": "Bash", "tool_input": {"command": 42}}`,
			arg:    "command",
			wantOK: false,
		},
		{
			name:   "missing tool_input returns false",
			input:  `{"tool_name": "Bash"}`,
			arg:    "command",
			wantOK: false,
		},
		{
			name:   "non-object tool_input returns false",
			input:  `{"tool_name": "Bash", "tool_input": [1, 2]}`,
			arg:    "command",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := ParseToolInput(strings.NewReader(tt.input))
			require.NoError(t, err)

			value, ok := input.GetStringArg(tt.arg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
