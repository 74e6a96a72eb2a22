package utils_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitship/gitship/internal/utils"
)

const loggerFactoryTestMessage = "logger_factory_probe"

func captureStderr(t *testing.T, action func()) []byte {
	t.Helper()

	pipeReader, pipeWriter, pipeError := os.Pipe()
	require.NoError(t, pipeError)

	originalStderr := os.Stderr
	os.Stderr = pipeWriter
	action()
	os.Stderr = originalStderr

	require.NoError(t, pipeWriter.Close())
	capturedOutput, readError := io.ReadAll(pipeReader)
	require.NoError(t, readError)
	require.NoError(t, pipeReader.Close())

	return bytes.TrimSpace(capturedOutput)
}

func TestLoggerFactoryCreateLogger(t *testing.T) {
	testCases := []struct {
		name               string
		requestedLogLevel  utils.LogLevel
		requestedLogFormat utils.LogFormat
		expectJSONOutput   bool
	}{
		{
			name:               "debug_structured_emits_json",
			requestedLogLevel:  utils.LogLevelDebug,
			requestedLogFormat: utils.LogFormatStructured,
			expectJSONOutput:   true,
		},
		{
			name:               "info_structured_emits_json",
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormatStructured,
			expectJSONOutput:   true,
		},
		{
			name:               "info_console_emits_plain_text",
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormatConsole,
			expectJSONOutput:   false,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			loggerFactory := utils.NewLoggerFactory()

			capturedOutput := captureStderr(t, func() {
				logger, creationError := loggerFactory.CreateLogger(testCase.requestedLogLevel, testCase.requestedLogFormat)
				require.NoError(t, creationError)
				require.NotNil(t, logger)

				logger.Info(loggerFactoryTestMessage)
				if syncError := logger.Sync(); syncError != nil {
					require.True(t, errors.Is(syncError, syscall.ENOTSUP) || errors.Is(syncError, syscall.EINVAL))
				}
			})

			require.Contains(t, string(capturedOutput), loggerFactoryTestMessage)
			require.Equal(t, testCase.expectJSONOutput, json.Valid(capturedOutput))
		})
	}
}

func TestLoggerFactoryRejectsUnknownSettings(t *testing.T) {
	testCases := []struct {
		name               string
		requestedLogLevel  utils.LogLevel
		requestedLogFormat utils.LogFormat
		expectedMessage    string
	}{
		{
			name:               "unknown_level",
			requestedLogLevel:  utils.LogLevel("verbose"),
			requestedLogFormat: utils.LogFormatStructured,
			expectedMessage:    "unsupported log level: verbose",
		},
		{
			name:               "unknown_format",
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormat("xml"),
			expectedMessage:    "unsupported log format: xml",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			logger, creationError := utils.NewLoggerFactory().CreateLogger(testCase.requestedLogLevel, testCase.requestedLogFormat)
			require.Nil(t, logger)
			require.EqualError(t, creationError, testCase.expectedMessage)
		})
	}
}
