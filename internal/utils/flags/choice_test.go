package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "default_highlighted_first",
			defaultChoice:  "structured",
			choices:        []string{"structured", "console"},
			description:    "Log output format.",
			expectedOutput: "`<STRUCTURED|console>` Log output format.",
		},
		{
			name:           "default_highlighted_second",
			defaultChoice:  "console",
			choices:        []string{"structured", "console"},
			description:    "Log output format.",
			expectedOutput: "`<structured|CONSOLE>` Log output format.",
		},
		{
			name:           "empty_description_omits_trailer",
			defaultChoice:  "info",
			choices:        []string{"info", "debug"},
			description:    "",
			expectedOutput: "`<INFO|debug>`",
		},
		{
			name:           "duplicates_collapsed",
			defaultChoice:  "debug",
			choices:        []string{"debug", "debug", "info", "info"},
			description:    "Logging verbosity.",
			expectedOutput: "`<DEBUG|info>` Logging verbosity.",
		},
		{
			name:           "whitespace_trimmed",
			defaultChoice:  "error",
			choices:        []string{" error ", " warn "},
			description:    "Minimum level.",
			expectedOutput: "`<ERROR|warn>` Minimum level.",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			formattedUsage := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, formattedUsage)
		})
	}
}
