package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		input     string
		wantCmd   command
		wantField string
	}{
		{"d3", cmdMove, "d3"},
		{"D3", cmdMove, "d3"},
		{"  a1  ", cmdMove, "a1"},
		{"h8", cmdMove, "h8"},
		{"help", cmdHelp, ""},
		{"HELP", cmdHelp, ""},
		{"actions", cmdActions, ""},
		{"rules", cmdRules, ""},
		{"debug", cmdDebug, ""},
		{"exit", cmdExit, ""},
		{"", cmdUnknown, ""},
		{"i1", cmdUnknown, ""},
		{"a9", cmdUnknown, ""},
		{"d33", cmdUnknown, ""},
		{"quit", cmdUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, field := parseInput(tt.input)
			require.Equal(t, tt.wantCmd, cmd)
			require.Equal(t, tt.wantField, field)
		})
	}
}
