package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitship/gitship/internal/githubapi"
	"github.com/gitship/gitship/internal/gitrepo"
)

const (
	createRemoteCommandUseConstant                = "create-remote"
	createRemoteCommandShortConstant              = "Create a remote repository without touching the local directory"
	createRemoteCommandLongConstant               = "create-remote provisions a repository on GitHub and prints the URL to push to."
	createRemoteExecutionErrorTemplateConstant    = "create-remote failed: %w"
	createRemoteOwnerRequiredMessageConstant      = "repository owner must be provided"
	createRemoteRepositoryRequiredMessageConstant = "repository name must be provided"
)

// CreateRemoteCommandBuilder assembles the Cobra command for remote-only provisioning.
type CreateRemoteCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Provisioner           githubapi.RepositoryProvisioner
}

// Build constructs the create-remote command.
func (builder *CreateRemoteCommandBuilder) Build() (*cobra.Command, error) {
	configuration := builder.resolveConfiguration()

	command := &cobra.Command{
		Use:   createRemoteCommandUseConstant,
		Short: createRemoteCommandShortConstant,
		Long:  createRemoteCommandLongConstant,
		RunE:  builder.run,
	}

	registerProvisionFlags(command, configuration)

	return command, nil
}

func (builder *CreateRemoteCommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	configuration := builder.resolveConfiguration()
	ownerValue := stringOption(command, flagOwnerNameConstant, configuration.Owner)
	repositoryValue := stringOption(command, flagRepositoryNameConstant, configuration.RepositoryName)
	descriptionValue := stringOption(command, flagDescriptionNameConstant, configuration.Description)
	privateValue := boolOption(command, flagPrivateNameConstant, configuration.Private)
	useSSHValue := boolOption(command, flagUseSSHNameConstant, configuration.UseSSH)
	remoteHostValue := stringOption(command, flagRemoteHostNameConstant, configuration.RemoteHost)

	trimmedOwner := strings.TrimSpace(ownerValue)
	if len(trimmedOwner) == 0 {
		return ConfigurationError{Cause: errors.New(createRemoteOwnerRequiredMessageConstant)}
	}
	trimmedRepository := strings.TrimSpace(repositoryValue)
	if len(trimmedRepository) == 0 {
		return ConfigurationError{Cause: errors.New(createRemoteRepositoryRequiredMessageConstant)}
	}

	provisioner, provisionerError := builder.resolveProvisioner()
	if provisionerError != nil {
		return provisionerError
	}

	logger := builder.resolveLogger()

	_, provisioningError := provisioner.CreateRepository(command.Context(), githubapi.ProvisionOptions{
		Owner:          trimmedOwner,
		RepositoryName: trimmedRepository,
		Description:    descriptionValue,
		Private:        privateValue,
	})
	if provisioningError != nil {
		return fmt.Errorf(createRemoteExecutionErrorTemplateConstant, RemoteProvisioningError{Cause: provisioningError})
	}

	remoteURL, derivationError := gitrepo.DeriveRemoteURL(remoteHostValue, trimmedOwner, trimmedRepository, useSSHValue)
	if derivationError != nil {
		return ConfigurationError{Cause: derivationError}
	}

	logger.Info(
		logMessageRemoteProvisionedConstant,
		zap.String(logFieldOwnerConstant, trimmedOwner),
		zap.String(logFieldRepositoryConstant, trimmedRepository),
		zap.Bool(logFieldPrivateConstant, privateValue),
	)

	fmt.Fprintln(command.OutOrStdout(), remoteURL)
	return nil
}

func (builder *CreateRemoteCommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CreateRemoteCommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CreateRemoteCommandBuilder) resolveProvisioner() (githubapi.RepositoryProvisioner, error) {
	if builder.Provisioner != nil {
		return builder.Provisioner, nil
	}
	return resolveTokenProvisioner()
}
