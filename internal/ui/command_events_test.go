package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gitship/gitship/internal/execshell"
	"github.com/gitship/gitship/internal/ui"
)

func TestConsoleCommandEventLoggerEmitsMessages(t *testing.T) {
	pushCommand := execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        []string{"push", "-u", "origin", "main"},
			WorkingDirectory: "/srv/widget",
		},
	}
	testCases := []struct {
		name            string
		invoke          func(logger *ui.ConsoleCommandEventLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name: "command_started",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandStarted(pushCommand)
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Pushing main to origin from /srv/widget",
		},
		{
			name: "command_completed_success",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandCompleted(pushCommand, execshell.ExecutionResult{ExitCode: 0})
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Pushed main to origin from /srv/widget",
		},
		{
			name: "command_completed_failure",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandCompleted(pushCommand, execshell.ExecutionResult{ExitCode: 128, StandardError: "fatal: repository not found"})
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: "Failed: Pushing main to origin from /srv/widget (exit code 128: fatal: repository not found)",
		},
		{
			name: "command_execution_failure",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandExecutionFailed(pushCommand, errors.New("executable file not found"))
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: "Unable to run: Pushing main to origin from /srv/widget: executable file not found",
		},
	}

	genericCommand := execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"gc", "--aggressive"}, WorkingDirectory: "/srv/widget"},
	}
	testCases = append(testCases, struct {
		name            string
		invoke          func(logger *ui.ConsoleCommandEventLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		name: "unrecognized_command_uses_generic_message",
		invoke: func(logger *ui.ConsoleCommandEventLogger) {
			logger.CommandStarted(genericCommand)
		},
		expectedLevel:   zapcore.InfoLevel,
		expectedMessage: "Running git gc --aggressive (in /srv/widget)",
	})

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			observerCore, observedEntries := observer.New(zapcore.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observerCore))

			testCase.invoke(eventLogger)

			loggedEntries := observedEntries.All()
			require.Len(t, loggedEntries, 1)
			require.Equal(t, testCase.expectedLevel, loggedEntries[0].Level)
			require.Equal(t, testCase.expectedMessage, loggedEntries[0].Message)
		})
	}
}
