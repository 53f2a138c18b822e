package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is the verbosity of the raytracer's loggers
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// current is the active backend; its level survives SetSink
var (
	current      logging.LeveledBackend
	currentLevel = Notice
)

// Logger is implemented by the named loggers returned from New
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a package. Every line it writes is tagged with name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends all log output to sink
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	current = logging.AddModuleLevel(formatted)
	current.SetLevel(backendLevels[currentLevel], "")
	logging.SetBackend(current)
}

// SetLevel hides every message below level. Unknown levels are ignored.
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		return
	}
	currentLevel = level
	current.SetLevel(backendLevel, "")
}

func init() {
	SetSink(os.Stdout)
}
