// Package config wires the registered defaults, the config file, .env overlays and environment variables into viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aschmelyun/tcut/constant"
	"github.com/aschmelyun/tcut/filesystem"
	"github.com/aschmelyun/tcut/where"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads configuration. A missing config file is not an error.
func Setup() error {
	if err := loadDotEnv(filepath.Join(where.Config(), ".env")); err != nil {
		return err
	}

	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
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

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// loadDotEnv exports variables from an optional .env file.
// Variables already present in the environment win.
func loadDotEnv(path string) error {
	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		return err
	}

	f, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return err
	}

	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	return nil
}
