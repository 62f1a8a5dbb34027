package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/temirov/systemcalls/internal/utils"
)

const (
	configurationCommandUseConstant              = "config"
	configurationCommandShortDescriptionConstant = "Print the effective configuration"
	configurationCommandLongDescriptionConstant  = "config prints the merged configuration (embedded defaults, configuration file, environment) as YAML, preceded by a comment naming the configuration file in use."
	configurationFileCommentTemplateConstant     = "# config file: %s\n"
	configurationFileEmbeddedLabelConstant       = "embedded defaults"
	configurationEncodeErrorTemplateConstant     = "unable to encode configuration: %w"
	configurationEncoderIndentConstant           = 2
	configurationMetadataMissingMessageConstant  = "configuration metadata provider not configured"
)

// ConfigurationMetadataProvider yields the configuration resolved during command initialization.
type ConfigurationMetadataProvider func() utils.LoadedConfiguration

// ConfigurationCommandBuilder assembles the config command.
type ConfigurationCommandBuilder struct {
	MetadataProvider ConfigurationMetadataProvider
}

// Build constructs the config command.
func (builder *ConfigurationCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   configurationCommandUseConstant,
		Short: configurationCommandShortDescriptionConstant,
		Long:  configurationCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *ConfigurationCommandBuilder) run(command *cobra.Command, arguments []string) error {
	if builder.MetadataProvider == nil {
		return errors.New(configurationMetadataMissingMessageConstant)
	}

	metadata := builder.MetadataProvider()
	configurationFile := metadata.ConfigFileUsed
	if contextFile, found := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); found && len(contextFile) > 0 {
		configurationFile = contextFile
	}
	if len(configurationFile) == 0 {
		configurationFile = configurationFileEmbeddedLabelConstant
	}

	writer := utils.NewFlushingWriter(command.OutOrStdout())
	if _, writeError := fmt.Fprintf(writer, configurationFileCommentTemplateConstant, configurationFile); writeError != nil {
		return writeError
	}

	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(configurationEncoderIndentConstant)
	if encodeError := encoder.Encode(metadata.Settings); encodeError != nil {
		return fmt.Errorf(configurationEncodeErrorTemplateConstant, encodeError)
	}
	return encoder.Close()
}
