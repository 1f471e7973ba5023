package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for fforge configuration.
const envPrefix = "FFORGE"

// FileConfig mirrors the flag surface for the optional --config file.
// The file is loaded and reported at debug level but consumed by no pipeline
// stage; it exists as a reserved override mechanism.
type FileConfig struct {
	// Template is the default template set.
	Template string `mapstructure:"template"`

	// Dependencies overrides the default dependency list.
	Dependencies []string `mapstructure:"dependencies"`

	// PostGenHooks are additional post-generation hook commands.
	PostGenHooks []string `mapstructure:"post_gen_hooks"`
}

// Loader handles loading the optional configuration file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with env bindings.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("template", "FFORGE_TEMPLATE")
	_ = v.BindEnv("dependencies", "FFORGE_DEPENDENCIES")

	return &Loader{v: v}
}

// Load reads the configuration file at path. A missing file is not an error;
// an empty path returns an empty config.
func (l *Loader) Load(path string) (*FileConfig, error) {
	if path == "" {
		return &FileConfig{}, nil
	}

	expandedPath, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
