package ports

// LoggerPort takes optional slog-style key/value pairs after the message.
type LoggerPort interface {
	Info(msg string, args ...any)
	Warning(msg string, args ...any)
	Error(msg string, err error, args ...any)
	Close()
}
