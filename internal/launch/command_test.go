package launch_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/gitship/gitship/internal/execshell"
	"github.com/gitship/gitship/internal/launch"
)

type recordingExecutor struct {
	executedDetails []execshell.CommandDetails
}

func (executor *recordingExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.executedDetails = append(executor.executedDetails, details)
	return execshell.ExecutionResult{}, nil
}

func TestLaunchCommandRunsFullWorkflow(t *testing.T) {
	provisioner := &stubProvisioner{}
	executor := &recordingExecutor{}
	builder := &launch.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Provisioner:    provisioner,
		Executor:       executor,
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetArgs([]string{
		"--owner", testOwnerConstant,
		"--repository", testRepositoryConstant,
		"--description", "Widget service",
		"--private",
		"--ssh",
	})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())

	require.Len(t, provisioner.receivedOptions, 1)
	require.True(t, provisioner.receivedOptions[0].Private)
	require.Len(t, executor.executedDetails, 6)
	require.Equal(t,
		[]string{"remote", "add", "origin", "git@github.com:octocat/widget.git"},
		executor.executedDetails[4].Arguments,
	)
	require.Contains(t, outputBuffer.String(), "git@github.com:octocat/widget.git")
}

func TestLaunchCommandUsesConfigurationDefaults(t *testing.T) {
	provisioner := &stubProvisioner{}
	executor := &recordingExecutor{}
	builder := &launch.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		ConfigurationProvider: func() launch.CommandConfiguration {
			return launch.CommandConfiguration{
				Owner:          testOwnerConstant,
				RepositoryName: testRepositoryConstant,
			}
		},
		Provisioner: provisioner,
		Executor:    executor,
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetOut(&bytes.Buffer{})
	command.SetArgs([]string{})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Len(t, provisioner.receivedOptions, 1)
	require.Equal(t, testOwnerConstant, provisioner.receivedOptions[0].Owner)
	require.Equal(t,
		[]string{"remote", "add", "origin", "https://github.com/octocat/widget.git"},
		executor.executedDetails[4].Arguments,
	)
}

func TestLaunchCommandRejectsPositionalArguments(t *testing.T) {
	builder := &launch.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Provisioner:    &stubProvisioner{},
		Executor:       &recordingExecutor{},
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetArgs([]string{"unexpected"})
	command.SetContext(context.Background())

	executionError := command.Execute()
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "positional arguments")
}

func TestCreateRemoteCommandPrintsDerivedURL(t *testing.T) {
	provisioner := &stubProvisioner{}
	builder := &launch.CreateRemoteCommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Provisioner:    provisioner,
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetArgs([]string{
		"--owner", testOwnerConstant,
		"--repository", testRepositoryConstant,
	})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Len(t, provisioner.receivedOptions, 1)
	require.Contains(t, outputBuffer.String(), "https://github.com/octocat/widget.git")
}

func TestCreateRemoteCommandRequiresRepositoryName(t *testing.T) {
	provisioner := &stubProvisioner{}
	builder := &launch.CreateRemoteCommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Provisioner:    provisioner,
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetArgs([]string{"--owner", testOwnerConstant, "--repository", "   "})
	command.SetContext(context.Background())

	executionError := command.Execute()
	require.Error(t, executionError)

	var configurationError launch.ConfigurationError
	require.True(t, errors.As(executionError, &configurationError))
	require.Contains(t, executionError.Error(), "repository name")
	require.Empty(t, provisioner.receivedOptions)
}

func TestCreateRemoteCommandRequiresOwner(t *testing.T) {
	builder := &launch.CreateRemoteCommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Provisioner:    &stubProvisioner{},
	}

	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetArgs([]string{"--repository", testRepositoryConstant})
	command.SetContext(context.Background())

	executionError := command.Execute()
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "owner")
}
