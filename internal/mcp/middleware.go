package mcp

import (
	"context"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const invocationIDKey contextKey = iota

// getInvocationID extracts the per-request invocation ID from context.
func getInvocationID(ctx context.Context) string {
	v, _ := ctx.Value(invocationIDKey).(string)
	return v
}

// invocationMiddleware tags every inbound request with a fresh invocation ID
// so its log lines can be correlated.
func invocationMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx = context.WithValue(ctx, invocationIDKey, uuid.NewString())
			return next(ctx, method, req)
		}
	}
}
