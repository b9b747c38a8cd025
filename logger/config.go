// Logger Configuration
//
// Example TOML:
// [log]
// level = "debug"
// logfile = "/var/log/noise.log"
// format = "json"
// console_output = true
//
// Environment Variables:
// NOISE_LOG_LEVEL = "info"
// NOISE_LOG_LOGFILE = "/var/log/noise.log"
// NOISE_LOG_FORMAT = "json"
//
// CLI Flags:
// -l/--log-level info

package logger

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	vLevel         = "log.level"
	vFormat        = "log.format"
	vLogFile       = "log.logfile"
	vConsoleOutput = "log.console_output"
)

// Set logging configuration defaults
func init() {
	viper.BindEnv(vLevel)
	viper.SetDefault(vLevel, "info")
	viper.BindEnv(vFormat)
	viper.SetDefault(vFormat, "text")
	viper.BindEnv(vLogFile)
	viper.SetDefault(vLogFile, "")
	viper.SetDefault(vConsoleOutput, true)
}

// Logger configuration interface
type Configurer interface {
	Level() string
	Format() string
	LogFile() string
	ConsoleOutput() bool
}

// Allows us to bind a cli flag to a viper config option for log.level
func BindLogLevelFlag(flag *pflag.Flag) {
	viper.BindPFlag(vLevel, flag)
}

// A simple type for accessing logging configuration
type Config struct{}

// Returns the logging verbosity level
func (c Config) Level() string {
	return viper.GetString(vLevel)
}

// Returns absolute path to logfile, empty disables file logging
func (c Config) LogFile() string {
	return viper.GetString(vLogFile)
}

// Returns logging format to use, text or json
func (c Config) Format() string {
	return viper.GetString(vFormat)
}

// Returns console log output bool
func (c Config) ConsoleOutput() bool {
	return viper.GetBool(vConsoleOutput)
}

// Constructs a Config
func NewConfig() Config {
	return Config{}
}
