package log

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log struct singleton
type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var (
	logger Log
	mu     sync.RWMutex
)

var mapOfLogLevel = map[string]int{
	"DEBUG": 1,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 2,
}

// InitLogger initialize logger from Viper
func InitLogger(v *viper.Viper) {
	l := New(v)
	mu.Lock()
	logger = l
	mu.Unlock()
}

// GetLogger return singleton
func GetLogger() Log {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// New builds a logger without touching the singleton.
func New(v *viper.Viper) Log {
	levelStr := strings.ToUpper(v.GetString("log.level"))
	return Log{
		AppName:  v.GetString("app.name"),
		LogLevel: levelOf(levelStr),
		Logger:   newLogrusLogger(v, levelStr),
	}
}

// Discard is used by tests and by code paths that run before InitLogger.
func Discard() Log {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Log{AppName: "test", LogLevel: 1, Logger: l}
}

// SetLevel re-applies the level after a config reload.
func SetLevel(levelStr string) {
	levelStr = strings.ToUpper(levelStr)
	mu.Lock()
	defer mu.Unlock()
	if logger.Logger == nil {
		return
	}
	logger.LogLevel = levelOf(levelStr)
	if level, err := logrus.ParseLevel(levelStr); err == nil {
		logger.Logger.SetLevel(level)
	}
}

func levelOf(levelStr string) int {
	if lvl, ok := mapOfLogLevel[levelStr]; ok {
		return lvl
	}
	return 1
}

func newLogrusLogger(v *viper.Viper, levelStr string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if path := v.GetString("log.file.path"); path != "" {
		l.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    v.GetInt("log.file.max_size_mb"),
			MaxBackups: v.GetInt("log.file.max_backups"),
			MaxAge:     v.GetInt("log.file.max_age_days"),
			Compress:   v.GetBool("log.file.compress"),
		}))
	}
	return l
}

func (l Log) entry(context, scope, meta string) *logrus.Entry {
	lg := l.Logger
	if lg == nil {
		lg = logrus.StandardLogger()
	}
	return lg.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
	})
}

// -----------------------------
// Info
func (l Log) Info(context, message, scope, meta string) {
	if l.LogLevel <= 1 {
		_, file, line, _ := runtime.Caller(1)
		l.entry(context, scope, meta).WithFields(logrus.Fields{
			"file": file,
			"line": line,
		}).Info(message)
	}
}

// -----------------------------
// Warn
func (l Log) Warn(context, message, scope, meta string) {
	if l.LogLevel <= 2 {
		_, file, line, _ := runtime.Caller(1)
		l.entry(context, scope, meta).WithFields(logrus.Fields{
			"file": file,
			"line": line,
		}).Warn(message)
	}
}

// -----------------------------
// Error
func (l Log) Error(context, message, scope, meta string) {
	if l.LogLevel <= 2 {
		_, file, line, _ := runtime.Caller(1)
		_, file2, line2, _ := runtime.Caller(2)
		l.entry(context, scope, meta).WithFields(logrus.Fields{
			"file1": file,
			"line1": line,
			"file2": file2,
			"line2": line2,
		}).Error(message)
	}
}

// -----------------------------
// Slow
func (l Log) Slow(context, message, scope, meta string) {
	if l.LogLevel <= 1 {
		_, file, line, _ := runtime.Caller(2)
		l.entry(context, scope, meta).WithFields(logrus.Fields{
			"file": file,
			"line": line,
		}).Info("[SLOW] " + message)
	}
}
