package logger

import (
	"io/ioutil"
	"strings"

	"noise/build"
	"noise/logger/hooks"

	"github.com/sirupsen/logrus"
)

// Construct a new global logger with default configuration
func init() {
	global = New(NewConfig())
}

// Global logger
var global *logger

// A short-form wrapper around logrus.Fields
type F logrus.Fields

// Common logger interface
type Logger interface {
	WithError(error) *logger
	WithField(string, interface{}) *logger
	WithFields(F) *logger
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
}

type logger struct {
	config Configurer
	entry  *logrus.Entry
	logger *logrus.Logger
}

// Re-applies configuration to the global logger, call after config is read
func Setup() { global.Setup() }
func (l *logger) Setup() {
	l.DeleteHooks()
	l.SetLevel(l.config.Level())
	l.ConsoleOutput(l.config.ConsoleOutput())
	l.LogToFile(l.config.LogFile())
	l.SetFormat(l.config.Format())
}

// Removes all hooks from the logger, called before each setup
func (l *logger) DeleteHooks() {
	for k := range l.logger.Hooks {
		delete(l.logger.Hooks, k)
	}
}

// Set the log level of the logger
func SetLevel(lvl string) { global.SetLevel(lvl) }
func (l *logger) SetLevel(lvl string) {
	switch strings.ToLower(lvl) {
	case "debug":
		l.logger.SetLevel(logrus.DebugLevel)
	case "warn":
		l.logger.SetLevel(logrus.WarnLevel)
	case "error":
		l.logger.SetLevel(logrus.ErrorLevel)
	default:
		l.logger.SetLevel(logrus.InfoLevel)
	}
}

// Enable or disable console output. Entries are always written through
// hooks, the logger's own output is discarded.
func ConsoleOutput(enable bool) { global.ConsoleOutput(enable) }
func (l *logger) ConsoleOutput(enable bool) {
	l.logger.Out = ioutil.Discard
	if enable {
		l.logger.Hooks.Add(hooks.NewConsoleHook())
	}
}

// Log to a file
func LogToFile(path string) { global.LogToFile(path) }
func (l *logger) LogToFile(path string) {
	if path != "" {
		l.logger.Hooks.Add(hooks.NewFileHook(path))
	}
}

// Set the format of the logger
func SetFormat(fmt string) { global.SetFormat(fmt) }
func (l *logger) SetFormat(fmt string) {
	switch fmt {
	case "json":
		l.logger.Formatter = &logrus.JSONFormatter{}
	default:
		l.logger.Formatter = &logrus.TextFormatter{
			FullTimestamp: true,
		}
	}
}

func (l *logger) with(entry *logrus.Entry) *logger {
	return &logger{
		config: l.config,
		entry:  entry,
		logger: l.logger,
	}
}

// Tags entries with the package that wrote them, e.g. "stream" or "audio"
func Component(name string) *logger { return global.Component(name) }
func (l *logger) Component(name string) *logger {
	return l.WithField("component", name)
}

// Adds a hook, kept until the next Setup
func (l *logger) AddHook(hook logrus.Hook) {
	l.logger.Hooks.Add(hook)
}

// Log a field and value
func WithField(k string, v interface{}) *logger { return global.WithField(k, v) }
func (l *logger) WithField(k string, v interface{}) *logger {
	return l.with(l.entry.WithField(k, v))
}

// Log with multiple fields
func WithFields(fields F) *logger { return global.WithFields(fields) }
func (l *logger) WithFields(fields F) *logger {
	return l.with(l.entry.WithFields(logrus.Fields(fields)))
}

// Log an error
func WithError(err error) *logger { return global.WithError(err) }
func (l *logger) WithError(err error) *logger {
	return l.with(l.entry.WithError(err))
}

// Log a debug message
func Debug(msg string, v ...interface{}) { global.Debug(msg, v...) }
func (l *logger) Debug(msg string, v ...interface{}) {
	l.entry.Debugf(msg, v...)
}

// Log an info message
func Info(msg string, v ...interface{}) { global.Info(msg, v...) }
func (l *logger) Info(msg string, v ...interface{}) {
	l.entry.Infof(msg, v...)
}

// Log a warning message
func Warn(msg string, v ...interface{}) { global.Warn(msg, v...) }
func (l *logger) Warn(msg string, v ...interface{}) {
	l.entry.Warnf(msg, v...)
}

// Log an error message
func Error(msg string, v ...interface{}) { global.Error(msg, v...) }
func (l *logger) Error(msg string, v ...interface{}) {
	l.entry.Errorf(msg, v...)
}

// Log a fatal error, this causes the application to exit
func Fatal(msg string, v ...interface{}) { global.Fatal(msg, v...) }
func (l *logger) Fatal(msg string, v ...interface{}) {
	l.entry.Fatalf(msg, v...)
}

// Constructs a logger from a Configurer
func New(config Configurer) *logger {
	log := logrus.New()
	l := &logger{
		config: config,
		logger: log,
		entry: logrus.NewEntry(log).WithFields(logrus.Fields{
			"app":       "noise",
			"component": "main",
			"version":   build.Version(),
			"buildTime": build.TimeStr(),
		}),
	}
	l.Setup()
	return l
}

// Replaces the global logger, returning the previous one
func SetGlobalLogger(l *logger) *logger {
	prev := global
	global = l
	return prev
}
