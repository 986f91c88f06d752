package cli

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formvalidator/pkg/logger"
	"github.com/dmitrymomot/formvalidator/pkg/validator"
)

type (
	sourceKey  struct{}
	payloadKey struct{}
)

// inputSource names where a command reads its document from.
func inputSource(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}
	return args[0]
}

func withPayload(ctx context.Context, kind validator.PayloadType) context.Context {
	return context.WithValue(ctx, payloadKey{}, kind)
}

// payloadFromContext adds the detected document type to log records.
func payloadFromContext(ctx context.Context) (slog.Attr, bool) {
	kind, ok := ctx.Value(payloadKey{}).(validator.PayloadType)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Payload(string(kind)), true
}
