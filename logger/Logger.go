package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}

type Logger struct {
	entry   *logrus.Entry
	console io.Writer
	sink    *lumberjack.Logger
}

type properties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
	console     bool
}

func readLoggerProperties(dir string) (properties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 7)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Debug")
	v.SetDefault("console", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return properties{}, fmt.Errorf("logger config: %w", err)
		}
	}

	return properties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
		console:     cast.ToBool(v.Get("console")),
	}, nil
}

// Init reads logger.properties from dir and routes logrus into a rotating file.
func (l *Logger) Init(dir string) error {
	p, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}

	l.sink = &lumberjack.Logger{
		Filename:   p.logFilename,
		MaxSize:    p.maxSize,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   p.compress,
	}

	base := logrus.StandardLogger()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(l.sink)
	base.SetLevel(parseLevel(p.level))

	l.entry = logrus.NewEntry(base)
	l.console = nil
	if p.console {
		l.console = os.Stdout
	}
	return nil
}

func parseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// WithSession tags every following entry with the game session id.
func (l *Logger) WithSession(id string) {
	l.entry = l.entry.WithField("session", id)
}

// WithField tags every following entry with key.
func (l *Logger) WithField(key string, value interface{}) {
	l.entry = l.entry.WithField(key, value)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.Close()
}

func (l *Logger) echo(level logrus.Level, name, message string) {
	if l.console != nil && l.entry.Logger.IsLevelEnabled(level) {
		fmt.Fprintln(l.console, name+":", message)
	}
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.echo(logrus.InfoLevel, "Info", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.echo(logrus.ErrorLevel, "Error", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.echo(logrus.DebugLevel, "Debug", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.echo(logrus.WarnLevel, "Warn", message)
}

func (l *Logger) Fatal(message string) {
	l.echo(logrus.FatalLevel, "Fatal", message)
	l.entry.Fatal(message)
}
