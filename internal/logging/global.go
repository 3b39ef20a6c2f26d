package logging

// Global is the logging system used by MustGetLogger.
var Global *Logging

func init() {
	l, err := New(Config{})
	if err != nil {
		// S256_LOG_LEVEL holds something unparsable.
		l, err = New(Config{Level: defaultLevel.String()})
		if err != nil {
			panic(err)
		}
	}
	Global = l
}

// Init applies c to the global logging system.
func Init(c Config) error {
	return Global.Apply(c)
}

// Reset restores the global logging system to its defaults.
func Reset() {
	Global.Apply(Config{})
}

// MustGetLogger creates a logger with the specified name from the global
// logging system.
func MustGetLogger(name string) *Logger {
	return Global.Logger(name)
}
