package envspec

import "log/slog"

func defaultLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logResolved records where a field's raw value came from. Values are never logged.
func logResolved(l *slog.Logger, field, key, source string) {
	l.Debug("environment field resolved",
		slog.String("field", field),
		slog.String("key", key),
		slog.String("source", source),
	)
}
