package tests

import (
	"os"
	"testing"
)

// The integration suite never reaches the real GitHub API, but commands that
// resolve credentials must find a token in the environment.
func TestMain(m *testing.M) {
	_ = os.Setenv("GITHUB_TOKEN", "test-token")
	_ = os.Setenv("GH_TOKEN", "test-token")
	os.Exit(m.Run())
}
