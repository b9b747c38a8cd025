package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Configuration defaults
func init() {
	viper.SetTypeByDefaultValue(true)
	viper.SetConfigType("toml")
	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/noise")
	viper.AddConfigPath("$HOME/.config/noise")
	viper.SetEnvPrefix("NOISE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Read configuration. An explicit path wins over the search paths.
// A missing config file is not an error, the defaults and environment
// still apply.
func Read(path string) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return err
		}
		viper.SetConfigFile(path)
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}
