package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	nullWriter   = &NullWriter{}
	currentLevel = ERROR
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Loggers discard everything until Initialize is called so that
// packages can log from tests without any setup.
func init() {
	Error = log.New(nullWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(nullWriter, "WARN:  ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(nullWriter, "INFO:  ", log.Ldate|log.Ltime|log.Lshortfile)
	Debug = log.New(nullWriter, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
	Trace = log.New(nullWriter, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func Initialize(logLevel LogLevel) {
	InitializeWithWriters(logLevel, os.Stderr, os.Stdout)
}

func InitializeWithWriters(logLevel LogLevel, errorOut io.Writer, out io.Writer) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	currentLevel = logLevel

	Error = log.New(writerFor(logLevel, ERROR, errorOut), "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(writerFor(logLevel, WARN, out), "WARN:  ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(writerFor(logLevel, INFO, out), "INFO:  ", log.Ldate|log.Ltime|log.Lshortfile)
	Debug = log.New(writerFor(logLevel, DEBUG, out), "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
	Trace = log.New(writerFor(logLevel, TRACE, out), "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func writerFor(logLevel LogLevel, required LogLevel, writer io.Writer) io.Writer {
	if logLevel >= required {
		return writer
	}
	return nullWriter
}

func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}
