package pathutils

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHomeExpanderExpand(t *testing.T) {
	homeDirectory := filepath.Join("/", "home", "tester")

	testCases := []struct {
		name          string
		provider      HomeDirectoryProvider
		candidatePath string
		expectedPath  string
	}{
		{
			name:          "bare_tilde_resolves_to_home",
			provider:      func() (string, error) { return homeDirectory, nil },
			candidatePath: "~",
			expectedPath:  homeDirectory,
		},
		{
			name:          "tilde_slash_prefix_joined",
			provider:      func() (string, error) { return homeDirectory, nil },
			candidatePath: "~/projects/widget",
			expectedPath:  filepath.Join(homeDirectory, "projects", "widget"),
		},
		{
			name:          "absolute_path_untouched",
			provider:      func() (string, error) { return homeDirectory, nil },
			candidatePath: "/var/tmp/widget",
			expectedPath:  "/var/tmp/widget",
		},
		{
			name:          "tilde_user_form_untouched",
			provider:      func() (string, error) { return homeDirectory, nil },
			candidatePath: "~tester/projects",
			expectedPath:  "~tester/projects",
		},
		{
			name:          "lookup_failure_returns_input",
			provider:      func() (string, error) { return "", errors.New("no home") },
			candidatePath: "~/projects",
			expectedPath:  "~/projects",
		},
		{
			name:          "empty_path_untouched",
			provider:      func() (string, error) { return homeDirectory, nil },
			candidatePath: "",
			expectedPath:  "",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			expander := NewHomeExpanderWithProvider(testCase.provider)
			require.Equal(t, testCase.expectedPath, expander.Expand(testCase.candidatePath))
		})
	}
}

func TestHomeExpanderCachesLookup(t *testing.T) {
	lookupCount := 0
	expander := NewHomeExpanderWithProvider(func() (string, error) {
		lookupCount++
		return "/home/tester", nil
	})

	_ = expander.Expand("~/one")
	_ = expander.Expand("~/two")

	require.Equal(t, 1, lookupCount)
}
