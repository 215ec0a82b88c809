package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

// Config holds the CLI configuration. Values come from, in increasing
// precedence: defaults, typedpath.yaml, TYPEDPATH_* environment variables and
// command-line flags.
type Config struct {
	Grammar   string `mapstructure:"grammar"`
	Format    string `mapstructure:"format"`
	LogLevel  string `mapstructure:"log_level"`
	MaxLength int    `mapstructure:"max_length"`
}

// loadConfig reads the configuration into v. An explicit file must exist;
// otherwise typedpath.yaml is looked up in $HOME/.config/typedpath, $HOME and
// the working directory, and a missing file is not an error.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	v.SetDefault("grammar", grammar.NamePosix)
	v.SetDefault("format", FormatText)
	v.SetDefault("log_level", "warn")
	v.SetDefault("max_length", 0)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("typedpath")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "typedpath"))
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TYPEDPATH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
