package logsvc

import (
	"log"
	"os"

	"github.com/rollbar/rollbar-go"
)

// Logger is the application logger. Args may include errors or maps with
// extra context.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
}

func NewStd(prefix string) *log.Logger {
	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
}

type StdLogger struct {
	std   *log.Logger
	debug bool
}

var _ Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger, debug bool) *StdLogger {
	return &StdLogger{std: std, debug: debug}
}

func (l StdLogger) print(level, msg string, args []any) {
	l.std.Println(level, msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l StdLogger) Debug(msg string, args ...any) {
	if l.debug {
		l.print("DEBUG", msg, args)
	}
}

func (l StdLogger) Info(msg string, args ...any)  { l.print("INFO", msg, args) }
func (l StdLogger) Warn(msg string, args ...any)  { l.print("WARN", msg, args) }
func (l StdLogger) Error(msg string, args ...any) { l.print("ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...any) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}

// RollbarLogger reports to Rollbar and echoes locally.
type RollbarLogger struct {
	StdLogger
}

var _ Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, token, env string, debug bool) *RollbarLogger {
	rollbar.SetToken(token)
	rollbar.SetEnvironment(env)
	rollbar.SetServerRoot("mddrc-backend")
	return &RollbarLogger{StdLogger: StdLogger{std: std, debug: debug}}
}

func (l RollbarLogger) Debug(msg string, args ...any) {
	rollbar.Debug(append([]any{msg}, args...)...)
	l.StdLogger.Debug(msg, args...)
}

func (l RollbarLogger) Info(msg string, args ...any) {
	rollbar.Info(append([]any{msg}, args...)...)
	l.StdLogger.Info(msg, args...)
}

func (l RollbarLogger) Warn(msg string, args ...any) {
	rollbar.Warning(append([]any{msg}, args...)...)
	l.StdLogger.Warn(msg, args...)
}

func (l RollbarLogger) Error(msg string, args ...any) {
	rollbar.Error(append([]any{msg}, args...)...)
	l.StdLogger.Error(msg, args...)
}

func (l RollbarLogger) Fatal(msg string, args ...any) {
	rollbar.Critical(append([]any{msg}, args...)...)
	rollbar.Wait()
	l.StdLogger.Fatal(msg, args...)
}

// Close flushes pending Rollbar items.
func (l RollbarLogger) Close() {
	rollbar.Close()
}

// New picks Rollbar when a token is configured.
func New(token, env string, debug bool) Logger {
	std := NewStd("API : ")
	if token == "" {
		return NewStdLogger(std, debug)
	}
	return NewRollbarLogger(std, token, env, debug)
}
