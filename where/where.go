// Package where resolves the application's filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tunesearch-cli/tunesearch/constant"
	"github.com/tunesearch-cli/tunesearch/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "TUNESEARCH_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honouring EnvConfigPath before the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// ConfigFile resolves the path of the config file, whether or not it exists.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
