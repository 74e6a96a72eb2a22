package githubauth

import (
	"os"
	"strings"
)

// Environment variable names recognized when resolving GitHub credentials,
// in descending preference order.
const (
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubCLIToken = "GH_TOKEN"
	EnvGitHubAPIToken = "GITHUB_API_TOKEN"
)

var tokenPreference = []string{
	EnvGitHubToken,
	EnvGitHubCLIToken,
	EnvGitHubAPIToken,
}

// ResolveToken returns the first non-empty GitHub token found, consulting the
// supplied environment map before the process environment. A nil map skips
// straight to the process environment.
func ResolveToken(environment map[string]string) (string, bool) {
	for _, variableName := range tokenPreference {
		if tokenValue, found := nonEmptyValue(environment[variableName]); found {
			return tokenValue, true
		}
	}
	for _, variableName := range tokenPreference {
		if tokenValue, found := nonEmptyValue(os.Getenv(variableName)); found {
			return tokenValue, true
		}
	}
	return "", false
}

func nonEmptyValue(rawValue string) (string, bool) {
	trimmedValue := strings.TrimSpace(rawValue)
	return trimmedValue, len(trimmedValue) > 0
}
