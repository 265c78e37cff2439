package chaos

// Logger receives engine diagnostics. Hosts install one with SetLogger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

var EnableDebug = true

var logger Logger = nopLogger{}

// SetLogger installs the engine logger. Nil restores the silent default.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	logger = l
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		logger.Debugf(format, args...)
	}
}

// Infof logs a formatted informational message.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
