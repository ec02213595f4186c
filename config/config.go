// Package config owns the viper setup: the config file, environment bindings and factory defaults.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/tunesearch-cli/tunesearch/constant"
	"github.com/tunesearch-cli/tunesearch/filesystem"
	"github.com/tunesearch-cli/tunesearch/where"
)

// EnvKeyReplacer maps configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// FileType is the format of the config file.
const FileType = "toml"

// Setup registers defaults and environment bindings, then reads the config file if one exists.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType(FileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}
