package autocommit_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/gitship/gitship/internal/autocommit"
	"github.com/gitship/gitship/internal/execshell"
)

func TestCommandReportsCleanRepository(t *testing.T) {
	executor := newScriptedGitExecutor()
	executor.script("rev-parse --is-inside-work-tree", execshell.ExecutionResult{StandardOutput: "true\n"}, nil)

	builder := &autocommit.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Executor:       executor,
	}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetArgs([]string{})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Contains(t, outputBuffer.String(), "No changes detected")
}

func TestCommandDryRunPrintsPlannedCommit(t *testing.T) {
	executor := newScriptedGitExecutor()
	scriptRepositoryWithChanges(executor)

	builder := &autocommit.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Executor:       executor,
	}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetArgs([]string{"--dry-run"})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Contains(t, outputBuffer.String(), "Dry run: 2 files would be committed")
	require.NotContains(t, executor.executedArguments(), "add .")
}

func TestCommandShortMessageFlag(t *testing.T) {
	executor := newScriptedGitExecutor()
	scriptRepositoryWithChanges(executor)
	executor.script("remote get-url origin", execshell.ExecutionResult{StandardOutput: testRemoteURLConstant + "\n"}, nil)

	builder := &autocommit.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Executor:       executor,
	}
	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetOut(&bytes.Buffer{})
	command.SetArgs([]string{"-m", "chore: sync"})
	command.SetContext(context.Background())

	require.NoError(t, command.Execute())
	require.Contains(t, executor.executedArguments(), "commit -m chore: sync")
}

func TestCommandRejectsPositionalArguments(t *testing.T) {
	builder := &autocommit.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zaptest.NewLogger(t) },
		Executor:       newScriptedGitExecutor(),
	}
	command, buildError := builder.Build()
	require.NoError(t, buildError)
	command.SetArgs([]string{"unexpected"})
	command.SetContext(context.Background())

	executionError := command.Execute()
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "positional arguments")
}
