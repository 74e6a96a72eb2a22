package launch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/githubapi"
	"github.com/gitship/gitship/internal/gitrepo"
	"github.com/gitship/gitship/internal/publish"
)

const (
	loggerMissingMessageConstant          = "launch logger not configured"
	provisionerMissingMessageConstant     = "repository provisioner not configured"
	publisherMissingMessageConstant       = "repository publisher not configured"
	ownerRequiredMessageConstant          = "repository owner must be provided"
	repositoryRequiredMessageConstant     = "repository name must be provided"
	configurationErrorTemplateConstant    = "configuration invalid: %s"
	provisioningErrorTemplateConstant     = "remote provisioning failed: %s"
	localToolErrorTemplateConstant        = "local git workflow failed: %s"
	logMessageRemoteProvisionedConstant   = "Remote repository provisioned"
	logMessageLaunchCompletedConstant     = "Repository launched"
	logFieldOwnerConstant                 = "owner"
	logFieldRepositoryConstant            = "repository"
	logFieldRemoteURLConstant             = "remote_url"
	logFieldPrivateConstant               = "private"
)

// RepositoryPublisher pushes a local directory to a provisioned remote.
type RepositoryPublisher interface {
	Publish(executionContext context.Context, options publish.PublishOptions) (publish.PublishResult, error)
}

// Sentinel errors surfaced during service construction.
var (
	ErrLoggerMissing      = errors.New(loggerMissingMessageConstant)
	ErrProvisionerMissing = errors.New(provisionerMissingMessageConstant)
	ErrPublisherMissing   = errors.New(publisherMissingMessageConstant)
)

// ConfigurationError reports invalid or incomplete launch inputs.
type ConfigurationError struct {
	Cause error
}

// Error describes the configuration failure.
func (configurationError ConfigurationError) Error() string {
	return fmt.Sprintf(configurationErrorTemplateConstant, configurationError.Cause)
}

// Unwrap exposes the underlying cause.
func (configurationError ConfigurationError) Unwrap() error {
	return configurationError.Cause
}

// RemoteProvisioningError reports a failure while creating the remote repository.
type RemoteProvisioningError struct {
	Cause error
}

// Error describes the provisioning failure.
func (provisioningError RemoteProvisioningError) Error() string {
	return fmt.Sprintf(provisioningErrorTemplateConstant, provisioningError.Cause)
}

// Unwrap exposes the underlying cause.
func (provisioningError RemoteProvisioningError) Unwrap() error {
	return provisioningError.Cause
}

// LocalToolError reports a failure in the local git publish sequence.
type LocalToolError struct {
	Cause error
}

// Error describes the local tool failure.
func (toolError LocalToolError) Error() string {
	return fmt.Sprintf(localToolErrorTemplateConstant, toolError.Cause)
}

// Unwrap exposes the underlying cause.
func (toolError LocalToolError) Unwrap() error {
	return toolError.Cause
}

// ServiceDependencies describes required collaborators for the launch workflow.
type ServiceDependencies struct {
	Logger      *zap.Logger
	Provisioner githubapi.RepositoryProvisioner
	Publisher   RepositoryPublisher
}

// LaunchOptions configures one launch run.
type LaunchOptions struct {
	WorkingDirectory  string
	Owner             string
	RepositoryName    string
	Description       string
	Private           bool
	UseSSH            bool
	RemoteHost        string
	RemoteName        string
	BranchName        string
	CommitMessage     string
	ContinueOnFailure bool
}

// LaunchResult captures the observable outcomes of a launch run.
type LaunchResult struct {
	RemoteURL        string
	RemoteDescriptor githubapi.RemoteDescriptor
	PublishResult    publish.PublishResult
}

// Service orchestrates remote provisioning followed by the local publish sequence.
type Service struct {
	logger      *zap.Logger
	provisioner githubapi.RepositoryProvisioner
	publisher   RepositoryPublisher
}

// NewService constructs a launch Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, ErrLoggerMissing
	}
	if dependencies.Provisioner == nil {
		return nil, ErrProvisionerMissing
	}
	if dependencies.Publisher == nil {
		return nil, ErrPublisherMissing
	}

	return &Service{
		logger:      dependencies.Logger,
		provisioner: dependencies.Provisioner,
		publisher:   dependencies.Publisher,
	}, nil
}

// Launch provisions the remote repository, derives its clone URL, and publishes
// the local directory to it. Provisioning happens before any local mutation so
// a remote failure leaves the directory untouched.
func (service *Service) Launch(executionContext context.Context, options LaunchOptions) (LaunchResult, error) {
	normalizedOptions, validationError := normalizeLaunchOptions(options)
	if validationError != nil {
		return LaunchResult{}, ConfigurationError{Cause: validationError}
	}

	descriptor, provisioningError := service.provisioner.CreateRepository(executionContext, githubapi.ProvisionOptions{
		Owner:          normalizedOptions.Owner,
		RepositoryName: normalizedOptions.RepositoryName,
		Description:    normalizedOptions.Description,
		Private:        normalizedOptions.Private,
	})
	if provisioningError != nil {
		return LaunchResult{}, RemoteProvisioningError{Cause: provisioningError}
	}

	service.logger.Info(
		logMessageRemoteProvisionedConstant,
		zap.String(logFieldOwnerConstant, normalizedOptions.Owner),
		zap.String(logFieldRepositoryConstant, normalizedOptions.RepositoryName),
		zap.Bool(logFieldPrivateConstant, normalizedOptions.Private),
	)

	remoteURL, derivationError := gitrepo.DeriveRemoteURL(
		normalizedOptions.RemoteHost,
		normalizedOptions.Owner,
		normalizedOptions.RepositoryName,
		normalizedOptions.UseSSH,
	)
	if derivationError != nil {
		return LaunchResult{}, ConfigurationError{Cause: derivationError}
	}

	publishResult, publishError := service.publisher.Publish(executionContext, publish.PublishOptions{
		WorkingDirectory:  normalizedOptions.WorkingDirectory,
		RemoteURL:         remoteURL,
		RemoteName:        normalizedOptions.RemoteName,
		BranchName:        normalizedOptions.BranchName,
		CommitMessage:     normalizedOptions.CommitMessage,
		ContinueOnFailure: normalizedOptions.ContinueOnFailure,
	})
	result := LaunchResult{
		RemoteURL:        remoteURL,
		RemoteDescriptor: descriptor,
		PublishResult:    publishResult,
	}
	if publishError != nil {
		return result, LocalToolError{Cause: publishError}
	}

	service.logger.Info(
		logMessageLaunchCompletedConstant,
		zap.String(logFieldRepositoryConstant, normalizedOptions.RepositoryName),
		zap.String(logFieldRemoteURLConstant, remoteURL),
	)

	return result, nil
}

func normalizeLaunchOptions(options LaunchOptions) (LaunchOptions, error) {
	normalized := options

	normalized.Owner = strings.TrimSpace(options.Owner)
	if len(normalized.Owner) == 0 {
		return LaunchOptions{}, errors.New(ownerRequiredMessageConstant)
	}

	normalized.RepositoryName = strings.TrimSpace(options.RepositoryName)
	if len(normalized.RepositoryName) == 0 {
		return LaunchOptions{}, errors.New(repositoryRequiredMessageConstant)
	}

	normalized.Description = strings.TrimSpace(options.Description)
	normalized.RemoteHost = strings.TrimSpace(options.RemoteHost)

	return normalized, nil
}
