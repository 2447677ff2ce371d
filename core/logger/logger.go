package logger

// Logger exposes leveled logging to the core packages without binding them
// to a concrete backend.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// Infow logs a message with structured fields.
	Infow(msg string, fields map[string]any)
	// Warnw logs a warning with structured fields.
	Warnw(msg string, fields map[string]any)
}

// Nop implements Logger with no-op methods. Core packages accept it when the
// caller does not care about output, mostly in tests.
type Nop struct{}

func (Nop) Debugf(string, ...any)        {}
func (Nop) Infof(string, ...any)         {}
func (Nop) Warnf(string, ...any)         {}
func (Nop) Errorf(string, ...any)        {}
func (Nop) Infow(string, map[string]any) {}
func (Nop) Warnw(string, map[string]any) {}
