package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/swift-import-lint/pkg/utils"
)

// ConfigFileName is the config file searched upward from the lint target.
const ConfigFileName = ".swift-import-lint.yml"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for overrides.
const envPrefix = "SIL"

// recognizedKeys is the full set of keys a config file may carry. Anything
// else fails the load with ErrUnknownConfiguration.
var recognizedKeys = map[string]bool{
	"ignore_case":       true,
	"ignore_duplicated": true,
	"ignore_order":      true,
	"ignore_position":   true,
	"severity":          true,
}

// Load reads configuration from file, env vars, and defaults. If configPath
// is non-empty it is used as the explicit config file path; otherwise the
// file is searched upward from startDir. A missing config file is not an
// error; defaults are used.
func Load(configPath, startDir string) (*Validation, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()

	if configPath == "" {
		configPath = utils.FindConfigFile(startDir, ConfigFileName)
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)

		readErr := viperCfg.ReadInConfig()
		if readErr != nil {
			var parseErr viper.ConfigParseError
			if errors.As(readErr, &parseErr) {
				// The file exists but is not a recognized key-value structure.
				return nil, fmt.Errorf("%w: %v", ErrUnknownConfiguration, readErr)
			}
			return nil, fmt.Errorf("read config: %w", readErr)
		}

		keysErr := checkRecognizedKeys(viperCfg.AllKeys())
		if keysErr != nil {
			return nil, keysErr
		}
	}

	var cfg Validation

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownConfiguration, unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	def := Default()

	viperCfg.SetDefault("ignore_case", def.IgnoreCase)
	viperCfg.SetDefault("ignore_duplicated", def.IgnoreDuplicatedImports)
	viperCfg.SetDefault("ignore_order", def.IgnoreImportsOrder)
	viperCfg.SetDefault("ignore_position", def.IgnoreImportsPosition)
	viperCfg.SetDefault("severity", def.Severity)
}

func checkRecognizedKeys(keys []string) error {
	for _, key := range keys {
		if !recognizedKeys[strings.ToLower(key)] {
			return fmt.Errorf("%w: unrecognized key %q", ErrUnknownConfiguration, key)
		}
	}
	return nil
}
