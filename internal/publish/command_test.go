package publish_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/gitship/gitship/internal/publish"
)

func buildTestCommandBuilder(t *testing.T, executor publish.CommandExecutor, configuration *publish.CommandConfiguration) *publish.CommandBuilder {
	t.Helper()

	builder := &publish.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Executor:       executor,
	}
	if configuration != nil {
		builder.ConfigurationProvider = func() publish.CommandConfiguration { return *configuration }
	}
	return builder
}

func TestCommandRejectsPositionalArguments(t *testing.T) {
	executor := &recordingExecutor{}
	command, buildError := buildTestCommandBuilder(t, executor, nil).Build()
	require.NoError(t, buildError)

	command.SetArgs([]string{"unexpected", "--remote-url", testRemoteURLConstant})
	command.SetContext(context.Background())

	executionError := command.Execute()
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "positional arguments")
	require.Empty(t, executor.executedDetails)
}

func TestCommandRunsPublishSequence(t *testing.T) {
	executor := &recordingExecutor{}
	command, buildError := buildTestCommandBuilder(t, executor, nil).Build()
	require.NoError(t, buildError)

	command.SetArgs([]string{"--remote-url", testRemoteURLConstant, "--directory", testWorkingDirectoryConstant})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Len(t, executor.executedDetails, 6)
	require.Equal(t, testWorkingDirectoryConstant, executor.executedDetails[0].WorkingDirectory)
}

func TestCommandAppliesConfigurationDefaults(t *testing.T) {
	executor := &recordingExecutor{}
	configuration := &publish.CommandConfiguration{
		BranchName:    "trunk",
		RemoteName:    "upstream",
		CommitMessage: "Bootstrap project",
	}
	command, buildError := buildTestCommandBuilder(t, executor, configuration).Build()
	require.NoError(t, buildError)

	command.SetArgs([]string{"--remote-url", testRemoteURLConstant})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Len(t, executor.executedDetails, 6)
	require.Equal(t, []string{"commit", "-m", "Bootstrap project"}, executor.executedDetails[2].Arguments)
	require.Equal(t, []string{"branch", "-M", "trunk"}, executor.executedDetails[3].Arguments)
	require.Equal(t, []string{"remote", "add", "upstream", testRemoteURLConstant}, executor.executedDetails[4].Arguments)
}

func TestCommandFlagsOverrideConfiguration(t *testing.T) {
	executor := &recordingExecutor{}
	configuration := &publish.CommandConfiguration{BranchName: "trunk"}
	command, buildError := buildTestCommandBuilder(t, executor, configuration).Build()
	require.NoError(t, buildError)

	command.SetArgs([]string{"--remote-url", testRemoteURLConstant, "--branch", "release"})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Equal(t, []string{"branch", "-M", "release"}, executor.executedDetails[3].Arguments)
}

func TestCommandRequiresRemoteURL(t *testing.T) {
	executor := &recordingExecutor{}
	command, buildError := buildTestCommandBuilder(t, executor, nil).Build()
	require.NoError(t, buildError)

	command.SetArgs([]string{})
	command.SetContext(context.Background())

	executionError := command.Execute()
	require.ErrorIs(t, executionError, publish.ErrRemoteURLRequired)
	require.Empty(t, executor.executedDetails)
}
