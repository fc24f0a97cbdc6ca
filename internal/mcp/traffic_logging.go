package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			attrs := []any{"direction", direction, "method", method, "invocation_id", getInvocationID(ctx)}
			logger.Debug("mcp traffic", append(attrs, "stage", "request", "params", formatPayload(safeParams(req)))...)

			result, err := next(ctx, method, req)
			if strings.HasPrefix(method, "notifications/") {
				return result, err
			}
			attrs = append(attrs, "stage", "response", "result", formatPayload(result))
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			logger.Debug("mcp traffic", attrs...)

			return result, err
		}
	}
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	// Some notifications carry a typed nil params value.
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
