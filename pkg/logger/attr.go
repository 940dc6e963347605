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

// Event records the broadcaster name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Subscription records a registration id under the key "subscription".
func Subscription(id uint64) slog.Attr {
	return slog.Uint64("subscription", id)
}

// Subscribers records a subscriber count under the key "subscribers".
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}
