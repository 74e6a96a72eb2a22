package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"
)

const (
	tokenRequiredMessageConstant             = "github token must be provided"
	repositoryNameRequiredMessageConstant    = "repository name must be provided"
	invalidBaseURLTemplateConstant           = "invalid api base url %q: %w"
	provisioningErrorTemplateConstant        = "repository provisioning for %s/%s failed with status %d"
	provisioningRequestErrorTemplateConstant = "repository provisioning request for %s/%s failed: %w"
	tokenTypeConstant                        = "token"
	baseURLSuffixConstant                    = "/"
)

// ProvisionOptions describes the repository to create on the hosting platform.
type ProvisionOptions struct {
	Owner          string
	RepositoryName string
	Description    string
	Private        bool
}

// RemoteDescriptor captures details of a freshly provisioned repository.
type RemoteDescriptor struct {
	Owner    string
	Name     string
	CloneURL string
	SSHURL   string
	HTMLURL  string
}

// RepositoryProvisioner creates repositories on a hosting platform.
type RepositoryProvisioner interface {
	CreateRepository(executionContext context.Context, options ProvisionOptions) (RemoteDescriptor, error)
}

// Sentinel errors surfaced during client construction and validation.
var (
	ErrTokenRequired          = errors.New(tokenRequiredMessageConstant)
	ErrRepositoryNameRequired = errors.New(repositoryNameRequiredMessageConstant)
)

// ProvisioningError reports a non-success response from the repository creation endpoint.
type ProvisioningError struct {
	Owner      string
	Repository string
	StatusCode int
}

// Error describes the provisioning failure.
func (provisioningError ProvisioningError) Error() string {
	return fmt.Sprintf(provisioningErrorTemplateConstant, provisioningError.Owner, provisioningError.Repository, provisioningError.StatusCode)
}

// ClientOption customizes Client construction.
type ClientOption func(client *Client) error

// WithHTTPClient overrides the HTTP client used for API calls. The token-based
// transport is skipped when an explicit client is supplied.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *Client) error {
		client.httpClient = httpClient
		return nil
	}
}

// WithAPIBaseURL points the client at a non-default API endpoint, typically a
// test server or an enterprise host.
func WithAPIBaseURL(baseURL string) ClientOption {
	return func(client *Client) error {
		normalizedBaseURL := baseURL
		if !strings.HasSuffix(normalizedBaseURL, baseURLSuffixConstant) {
			normalizedBaseURL += baseURLSuffixConstant
		}
		parsedBaseURL, parseError := url.Parse(normalizedBaseURL)
		if parseError != nil {
			return fmt.Errorf(invalidBaseURLTemplateConstant, baseURL, parseError)
		}
		client.apiBaseURL = parsedBaseURL
		return nil
	}
}

// Client provisions repositories through the GitHub REST API.
type Client struct {
	githubClient *github.Client
	httpClient   *http.Client
	apiBaseURL   *url.URL
}

// NewClient constructs a provisioning client authenticated with the supplied token.
// The Authorization header uses the legacy "token" scheme accepted by GitHub.
func NewClient(token string, options ...ClientOption) (*Client, error) {
	trimmedToken := strings.TrimSpace(token)
	if len(trimmedToken) == 0 {
		return nil, ErrTokenRequired
	}

	client := &Client{}
	for _, option := range options {
		if optionError := option(client); optionError != nil {
			return nil, optionError
		}
	}

	if client.httpClient == nil {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: trimmedToken, TokenType: tokenTypeConstant})
		client.httpClient = oauth2.NewClient(context.Background(), tokenSource)
	}

	client.githubClient = github.NewClient(client.httpClient)
	if client.apiBaseURL != nil {
		client.githubClient.BaseURL = client.apiBaseURL
	}

	return client, nil
}

// CreateRepository issues one authenticated POST to the "create repository for
// the authenticated user" endpoint. The body carries exactly the repository
// name, privacy flag, and description.
func (client *Client) CreateRepository(executionContext context.Context, options ProvisionOptions) (RemoteDescriptor, error) {
	trimmedRepositoryName := strings.TrimSpace(options.RepositoryName)
	if len(trimmedRepositoryName) == 0 {
		return RemoteDescriptor{}, ErrRepositoryNameRequired
	}

	repositoryRequest := &github.Repository{
		Name:        github.Ptr(trimmedRepositoryName),
		Private:     github.Ptr(options.Private),
		Description: github.Ptr(options.Description),
	}

	createdRepository, response, creationError := client.githubClient.Repositories.Create(executionContext, "", repositoryRequest)
	if creationError != nil {
		if response != nil {
			return RemoteDescriptor{}, ProvisioningError{
				Owner:      options.Owner,
				Repository: trimmedRepositoryName,
				StatusCode: response.StatusCode,
			}
		}
		return RemoteDescriptor{}, fmt.Errorf(provisioningRequestErrorTemplateConstant, options.Owner, trimmedRepositoryName, creationError)
	}

	descriptor := RemoteDescriptor{
		Owner: options.Owner,
		Name:  trimmedRepositoryName,
	}
	if createdRepository != nil {
		if ownerLogin := createdRepository.GetOwner().GetLogin(); len(ownerLogin) > 0 {
			descriptor.Owner = ownerLogin
		}
		descriptor.CloneURL = createdRepository.GetCloneURL()
		descriptor.SSHURL = createdRepository.GetSSHURL()
		descriptor.HTMLURL = createdRepository.GetHTMLURL()
	}

	return descriptor, nil
}
