// Package testserver runs the commissions MCP server in-process for tests.
package testserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/commissions/internal/app"
	"github.com/rpggio/commissions/internal/config"
	"github.com/rpggio/commissions/internal/mcp"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	App     *app.App
	Session *sdkmcp.ClientSession
}

// New starts a server over an in-memory store and connects a client to it.
func New(t *testing.T) *TestServer {
	t.Helper()
	cfg := config.Default()
	cfg.DB.Backend = config.BackendMemory
	return NewWithConfig(t, cfg)
}

// NewWithConfig starts a server for cfg and connects a client to it.
func NewWithConfig(t *testing.T, cfg config.Config) *TestServer {
	t.Helper()

	a, err := app.New(cfg, nil)
	require.NoError(t, err)

	server := mcp.NewServer(mcp.Config{
		Commissions:  a.Commissions,
		Reports:      a.Reports,
		CurrentLimit: a.CurrentLimit,
	})

	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
		serverSession.Close()
		cancel()
		_ = a.Close()
	})

	return &TestServer{App: a, Session: session}
}

// CallTool invokes a tool that is expected to succeed and returns its
// structured output as JSON.
func (ts *TestServer) CallTool(t *testing.T, name string, args map[string]any) json.RawMessage {
	t.Helper()

	result := ts.call(t, name, args)
	require.False(t, result.IsError, "tool %s returned error: %s", name, resultText(result))

	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	return data
}

// CallToolError invokes a tool that is expected to fail and returns the error text.
func (ts *TestServer) CallToolError(t *testing.T, name string, args map[string]any) string {
	t.Helper()

	result := ts.call(t, name, args)
	require.True(t, result.IsError, "tool %s succeeded unexpectedly", name)
	return resultText(result)
}

func (ts *TestServer) call(t *testing.T, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if args == nil {
		args = map[string]any{}
	}
	result, err := ts.Session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	return result
}

func resultText(result *sdkmcp.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
