package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ClientID records the gym client identifier under the key "client_id".
func ClientID(id int) slog.Attr {
	return slog.Int("client_id", id)
}

// RecordFormat records a serialization format under the key "format".
func RecordFormat(name string) slog.Attr {
	return slog.String("format", name)
}

// Fields records a list of field names under the key "fields".
// If names is empty, it returns an empty Attr.
func Fields(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
