package config

import (
	"fmt"

	"github.com/spf13/viper"
)

func SetDefaults(v *viper.Viper) {
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (PlotConfiguration, error) {
	var config PlotConfiguration
	if err := v.Unmarshal(&config); err != nil {
		return PlotConfiguration{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return PlotConfiguration{}, err
	}
	return config, nil
}

// ReadConfigurationFile reads a JSON or YAML configuration file on top of the
// defaults.
func ReadConfigurationFile(path string) (PlotConfiguration, error) {
	v := viper.New()
	SetDefaults(v)

	if err := ReadInto(v, path); err != nil {
		return PlotConfiguration{}, err
	}

	return Load(v)
}

// ReadInto merges the JSON or YAML file at path into v.
func ReadInto(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration %s: %w", path, err)
	}
	return nil
}
