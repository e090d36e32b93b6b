package logging

import "io"

var logger = NewLogger(2)

func Debugf(format string, a ...interface{}) {
	logger.Debug(format, a...)
}

func Infof(format string, a ...interface{}) {
	logger.Info(format, a...)
}

func Warningf(format string, a ...interface{}) {
	logger.Warning(format, a...)
}

func Errorf(format string, a ...interface{}) {
	logger.Error(format, a...)
}

func Fatalf(format string, a ...interface{}) {
	logger.Fatal(format, a...)
}

// SetDebugLevel sets the global log level.
func SetDebugLevel(level int) {
	logger.Level = level
}

// SetOutput sets a new writer for the package logger, for example os.Stdout
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}
