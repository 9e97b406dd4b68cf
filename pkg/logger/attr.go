package logger

import "log/slog"

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// NotificationID records a notification identifier.
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// Severity records a notification severity.
func Severity(severity string) slog.Attr {
	return slog.String("severity", severity)
}

// Form records a form name.
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records a form field identifier.
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Feature records a page feature name.
func Feature(name string) slog.Attr {
	return slog.String("feature", name)
}

// Reason records why something happened, e.g. why a notification was removed.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}
