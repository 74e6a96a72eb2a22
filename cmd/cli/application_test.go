package cli_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/gitship/gitship/cmd/cli"
)

func applicationRootForTesting(t *testing.T, application *cli.Application, outputBuffer *bytes.Buffer) *cobra.Command {
	t.Helper()

	rootCommand := application.RootCommand()
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	return rootCommand
}

func TestNewApplicationRegistersSubcommands(t *testing.T) {
	application := cli.NewApplication()

	outputBuffer := &bytes.Buffer{}
	rootCommand := applicationRootForTesting(t, application, outputBuffer)

	registeredNames := make(map[string]bool)
	for _, registeredCommand := range rootCommand.Commands() {
		registeredNames[registeredCommand.Name()] = true
	}

	for _, expectedName := range []string{"launch", "create-remote", "publish", "commit-push"} {
		require.True(t, registeredNames[expectedName], "expected subcommand %s", expectedName)
	}
}

func TestRootCommandPrintsHelpWithoutArguments(t *testing.T) {
	application := cli.NewApplication()

	outputBuffer := &bytes.Buffer{}
	rootCommand := applicationRootForTesting(t, application, outputBuffer)
	rootCommand.SetArgs([]string{})

	require.NoError(t, application.Execute())
	require.Contains(t, outputBuffer.String(), "launch")
	require.Contains(t, outputBuffer.String(), "commit-push")
}

func TestRootCommandRejectsUnknownLogFormat(t *testing.T) {
	application := cli.NewApplication()

	outputBuffer := &bytes.Buffer{}
	rootCommand := applicationRootForTesting(t, application, outputBuffer)
	rootCommand.SetArgs([]string{"--log-format", "xml"})

	executionError := application.Execute()
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "unsupported log format")
}
