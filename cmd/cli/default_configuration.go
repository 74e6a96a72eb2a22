package cli

import _ "embed"

//go:embed default_config.yaml
var embeddedConfigurationDocument []byte

// EmbeddedDefaultConfiguration returns a copy of the built-in configuration
// document together with its format identifier. Callers receive a copy so the
// embedded bytes stay pristine across repeated loads.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	configurationCopy := append([]byte(nil), embeddedConfigurationDocument...)
	return configurationCopy, configurationTypeConstant
}
