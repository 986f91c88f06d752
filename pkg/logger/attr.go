package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule kind under the key "rule".
func Rule(kind string) slog.Attr {
	return slog.String("rule", kind)
}

// Valid records a validity result under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Violations records the number of failed rules under the key "violations".
func Violations(n int) slog.Attr {
	return slog.Int("violations", n)
}

// Payload records a document type discriminator under the key "payload".
func Payload(kind string) slog.Attr {
	return slog.String("payload", kind)
}

// Command records the CLI command name under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}
