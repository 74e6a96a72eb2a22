package githubapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitship/gitship/internal/githubapi"
)

const (
	testTokenConstant          = "test-token"
	testOwnerConstant          = "octocat"
	testRepositoryNameConstant = "widget"
	testDescriptionConstant    = "Widget service"
)

func TestNewClientValidation(t *testing.T) {
	testCases := []struct {
		name          string
		token         string
		expectedError error
	}{
		{
			name:          "empty_token",
			token:         "",
			expectedError: githubapi.ErrTokenRequired,
		},
		{
			name:          "whitespace_token",
			token:         "   ",
			expectedError: githubapi.ErrTokenRequired,
		},
		{
			name:  "valid_token",
			token: testTokenConstant,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			client, constructionError := githubapi.NewClient(testCase.token)
			if testCase.expectedError != nil {
				require.ErrorIs(t, constructionError, testCase.expectedError)
				require.Nil(t, client)
				return
			}
			require.NoError(t, constructionError)
			require.NotNil(t, client)
		})
	}
}

func TestCreateRepositorySendsExpectedRequest(t *testing.T) {
	var capturedAuthorization string
	var capturedMethod string
	var capturedPath string
	var capturedBody map[string]any

	testServer := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		capturedAuthorization = request.Header.Get("Authorization")
		capturedMethod = request.Method
		capturedPath = request.URL.Path
		bodyBytes, readError := io.ReadAll(request.Body)
		require.NoError(t, readError)
		require.NoError(t, json.Unmarshal(bodyBytes, &capturedBody))

		responseWriter.Header().Set("Content-Type", "application/json")
		responseWriter.WriteHeader(http.StatusCreated)
		_, _ = responseWriter.Write([]byte(`{
			"name": "widget",
			"owner": {"login": "octocat"},
			"clone_url": "https://github.com/octocat/widget.git",
			"ssh_url": "git@github.com:octocat/widget.git",
			"html_url": "https://github.com/octocat/widget"
		}`))
	}))
	defer testServer.Close()

	client, constructionError := githubapi.NewClient(testTokenConstant, githubapi.WithAPIBaseURL(testServer.URL))
	require.NoError(t, constructionError)

	descriptor, creationError := client.CreateRepository(context.Background(), githubapi.ProvisionOptions{
		Owner:          testOwnerConstant,
		RepositoryName: testRepositoryNameConstant,
		Description:    testDescriptionConstant,
		Private:        true,
	})
	require.NoError(t, creationError)

	require.Equal(t, "token "+testTokenConstant, capturedAuthorization)
	require.Equal(t, http.MethodPost, capturedMethod)
	require.Equal(t, "/user/repos", capturedPath)
	require.Equal(t, map[string]any{
		"name":        testRepositoryNameConstant,
		"private":     true,
		"description": testDescriptionConstant,
	}, capturedBody)

	require.Equal(t, testOwnerConstant, descriptor.Owner)
	require.Equal(t, testRepositoryNameConstant, descriptor.Name)
	require.Equal(t, "https://github.com/octocat/widget.git", descriptor.CloneURL)
	require.Equal(t, "git@github.com:octocat/widget.git", descriptor.SSHURL)
}

func TestCreateRepositoryReportsStatusFailures(t *testing.T) {
	testCases := []struct {
		name           string
		statusCode     int
		responseBody   string
		expectedStatus int
	}{
		{
			name:           "name_already_exists",
			statusCode:     http.StatusUnprocessableEntity,
			responseBody:   `{"message": "Repository creation failed.", "errors": [{"message": "name already exists on this account"}]}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "bad_credentials",
			statusCode:     http.StatusUnauthorized,
			responseBody:   `{"message": "Bad credentials"}`,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testServer := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
				responseWriter.Header().Set("Content-Type", "application/json")
				responseWriter.WriteHeader(testCase.statusCode)
				_, _ = responseWriter.Write([]byte(testCase.responseBody))
			}))
			defer testServer.Close()

			client, constructionError := githubapi.NewClient(testTokenConstant, githubapi.WithAPIBaseURL(testServer.URL))
			require.NoError(t, constructionError)

			_, creationError := client.CreateRepository(context.Background(), githubapi.ProvisionOptions{
				Owner:          testOwnerConstant,
				RepositoryName: testRepositoryNameConstant,
			})
			require.Error(t, creationError)

			var provisioningError githubapi.ProvisioningError
			require.True(t, errors.As(creationError, &provisioningError))
			require.Equal(t, testCase.expectedStatus, provisioningError.StatusCode)
			require.Equal(t, testRepositoryNameConstant, provisioningError.Repository)
		})
	}
}

func TestCreateRepositoryRequiresRepositoryName(t *testing.T) {
	client, constructionError := githubapi.NewClient(testTokenConstant)
	require.NoError(t, constructionError)

	_, creationError := client.CreateRepository(context.Background(), githubapi.ProvisionOptions{Owner: testOwnerConstant})
	require.ErrorIs(t, creationError, githubapi.ErrRepositoryNameRequired)
}
