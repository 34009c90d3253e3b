// Package config registers the configuration keys and loads them through viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mediagrab/mediagrab/constant"
	"github.com/mediagrab/mediagrab/filesystem"
	"github.com/mediagrab/mediagrab/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads the config
// file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Mediagrab)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Mediagrab)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for _, field := range fields {
		viper.SetDefault(field.Key, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Path is where the config file lives.
func Path() string {
	return filepath.Join(where.Config(), fmt.Sprintf("%s.%s", constant.Mediagrab, "toml"))
}

// Write saves the current settings, creating the file when missing.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(Path())
	}

	return err
}

// Set parses values for k, applies them and saves the config file.
func Set(k string, values []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	value, err := field.Parse(values)
	if err != nil {
		return nil, err
	}

	viper.Set(k, value)
	return value, Write()
}

// Reset restores k, or every key when k is empty, and saves the config file.
func Reset(k string) error {
	if k == "" {
		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}
		return Write()
	}

	field, err := Lookup(k)
	if err != nil {
		return err
	}

	viper.Set(k, field.Value)
	return Write()
}
