package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nspcc-dev/txdump/pkg/payload"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Version is the version of the tool, set at build time with
// -ldflags "-X github.com/nspcc-dev/txdump/pkg/config.Version=...".
var Version = "dev"

// Config is the top level configuration structure.
type Config struct {
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
	// Schemas are additional transaction schemas, they override builtin
	// ones with the same tag.
	Schemas []payload.Schema `yaml:"Schemas"`
}

// ApplicationConfiguration contains logging and output settings.
type ApplicationConfiguration struct {
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
	Output   string `yaml:"Output"`
}

// Default returns configuration used when no file is given.
func Default() Config {
	return Config{
		ApplicationConfiguration: ApplicationConfiguration{
			LogLevel: "info",
			Output:   OutputText,
		},
	}
}

// LoadFile loads config from the provided path. Unset values get defaults.
func LoadFile(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config '%s' doesn't exist", configPath)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks configuration values. Schemas are checked when building
// the Table.
func (c Config) Validate() error {
	switch c.ApplicationConfiguration.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.ApplicationConfiguration.Output)
	}
	return nil
}

// Table returns the builtin schema table extended with configured schemas.
func (c Config) Table() (*payload.Table, error) {
	if len(c.Schemas) == 0 {
		return payload.DefaultTable(), nil
	}
	return payload.DefaultTable().With(c.Schemas...)
}
