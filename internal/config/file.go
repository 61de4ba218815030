package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the base name of the project configuration file.
const FileName = ".tsorder"

// EnvPrefix prefixes environment overrides, e.g. TSORDER_WORKERS.
const EnvPrefix = "TSORDER"

// Project holds the project wide settings: CLI defaults and the default sort
// options every container starts from.
type Project struct {
	Check      bool     `mapstructure:"check"`
	Write      bool     `mapstructure:"write"`
	Recursive  bool     `mapstructure:"recursive"`
	Extensions []string `mapstructure:"extensions"`
	Exclude    []string `mapstructure:"exclude"`
	Workers    int      `mapstructure:"workers"`
	Format     string   `mapstructure:"format"`
	Kinds      []string `mapstructure:"kinds"`
	CacheFile  string   `mapstructure:"cache-file"`
	Sort       Options  `mapstructure:"sort"`
}

// SortDefaults resolves the project sort options against the built-in defaults.
func (p Project) SortDefaults() (SortConfig, error) {
	return p.Sort.Resolve()
}

// Load reads the project configuration. An explicit path must exist; without
// one, .tsorder.{yaml,yml,toml,json} is looked up in each dir and a missing
// file is not an error. Flags that were set on the command line override the
// file, environment variables override both.
func Load(path string, dirs []string, flags *pflag.FlagSet) (Project, string, error) {
	v := viper.New()

	v.SetDefault("recursive", true)
	v.SetDefault("extensions", []string{".ts", ".tsx"})
	v.SetDefault("format", "text")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Project{}, "", fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Project{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	var p Project
	if err := v.Unmarshal(&p, viper.DecodeHook(DecodeHook())); err != nil {
		return Project{}, "", fmt.Errorf("decode config %s: %w", v.ConfigFileUsed(), err)
	}
	return p, v.ConfigFileUsed(), nil
}
