package logging

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/runningwild/glop/glog"
)

type stdLogInterceptor interface {
	Printf(format string, v ...interface{})
}

type Logger interface {
	glog.Logger
	stdLogInterceptor
}

type editorLogger struct {
	glog.Logger
}

func (log *editorLogger) Printf(msg string, args ...interface{}) {
	log.Logger.Log(context.Background(), slog.LevelInfo, msg, args...)
}

var _ Logger = (*editorLogger)(nil)

var debugLogger *editorLogger
var infoLogger *editorLogger
var warnLogger *editorLogger
var errorLogger *editorLogger

// Records carry no source attr; glog can only shorten source paths inside
// glop checkouts and complains on slog's default logger otherwise.
func init() {
	debugLogger = &editorLogger{
		Logger: glog.New(&glog.Opts{
			DoNotAddSource: true,
			Level:          slog.LevelDebug,
		}),
	}
	infoLogger = &editorLogger{
		Logger: glog.New(&glog.Opts{
			DoNotAddSource: true,
			Level:          slog.LevelInfo,
		}),
	}
	warnLogger = &editorLogger{
		Logger: glog.New(&glog.Opts{
			DoNotAddSource: true,
			Level:          slog.LevelWarn,
		}),
	}
	errorLogger = &editorLogger{
		Logger: glog.New(&glog.Opts{
			DoNotAddSource: true,
			Level:          slog.LevelError,
		}),
	}
}

func DefaultLogger() Logger {
	return InfoLogger()
}

func DebugLogger() Logger {
	return debugLogger
}

func InfoLogger() Logger {
	return infoLogger
}

func WarnLogger() Logger {
	return warnLogger
}

func ErrorLogger() Logger {
	return errorLogger
}

// All of the package-level helpers go through the 'Default Logger' so that
// SetLogLevel controls what gets emitted.
func Trace(msg string, args ...interface{}) {
	doLog(glog.LevelTrace, msg, args...)
}

func Debug(msg string, args ...interface{}) {
	doLog(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...interface{}) {
	doLog(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...interface{}) {
	doLog(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...interface{}) {
	doLog(slog.LevelError, msg, args...)
}

func doLog(lvl slog.Level, msg string, args ...interface{}) {
	if !infoLogger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, doLog, <helper>]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	infoLogger.Handler().Handle(context.Background(), r)
}

// Call this to redirect all logging output to the given io.Writer. A cleanup
// function that undoes the redirect is returned.
func Redirect(newOut io.Writer) func() {
	oldDebugLogger := debugLogger
	debugLogger = &editorLogger{
		Logger: glog.WithRedirect(oldDebugLogger, newOut),
	}

	oldInfoLogger := infoLogger
	infoLogger = &editorLogger{
		Logger: glog.WithRedirect(oldInfoLogger, newOut),
	}

	oldWarnLogger := warnLogger
	warnLogger = &editorLogger{
		Logger: glog.WithRedirect(oldWarnLogger, newOut),
	}

	oldErrorLogger := errorLogger
	errorLogger = &editorLogger{
		Logger: glog.WithRedirect(oldErrorLogger, newOut),
	}
	return func() {
		debugLogger = oldDebugLogger
		infoLogger = oldInfoLogger
		warnLogger = oldWarnLogger
		errorLogger = oldErrorLogger
	}
}

// Tells the 'Default Logger' to changes its verbosity.
func SetLogLevel(lvl slog.Level) {
	infoLogger.Logger = glog.Relevel(infoLogger.Logger, lvl)
}

// Like SetLogLevel but returns a func to restore the previous verbosity.
func SetLoggingLevel(lvl slog.Level) func() {
	old := infoLogger.Logger
	infoLogger.Logger = glog.Relevel(old, lvl)
	return func() {
		infoLogger.Logger = old
	}
}
