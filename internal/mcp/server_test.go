package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekit/leaguesettings/internal/testutil"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	server := NewServer("test", testutil.StubWorker(), nil)
	go func() { _ = server.Run(ctx, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, clientCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer clientCancel()
	session, err := client.Connect(clientCtx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func call[T any](t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (T, *mcp.CallToolResult) {
	t.Helper()
	var out T
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	if res.IsError {
		return out, res
	}
	b, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &out))
	return out, res
}

func TestListSettings(t *testing.T) {
	session := connect(t)

	out, res := call[ListOutput](t, session, "list_settings", map[string]any{"category": "Schedule"})
	require.False(t, res.IsError)
	require.NotEmpty(t, out.Settings)
	for _, s := range out.Settings {
		assert.Equal(t, "Schedule", s.Category)
	}
	assert.Equal(t, "numGames", out.Settings[0].Key)

	_, res = call[ListOutput](t, session, "list_settings", map[string]any{"category": "Nope"})
	assert.True(t, res.IsError)
}

func TestListSettingsSkipsHidden(t *testing.T) {
	session := connect(t)
	out, _ := call[ListOutput](t, session, "list_settings", map[string]any{})
	for _, s := range out.Settings {
		assert.NotEqual(t, "stopOnInjuryGames", s.Key)
	}
}

func TestValidateSettings(t *testing.T) {
	session := connect(t)
	dir := t.TempDir()

	good := testutil.WriteLeague(t, "good.json", `{"numActiveTeams": 30, "numGames": 70}`)
	out, _ := call[ValidateOutput](t, session, "validate_settings", map[string]any{"path": good})
	assert.True(t, out.Valid, out.Error)

	bad := testutil.WriteLeague(t, "bad.toml", "numActiveTeams = 30\nnumGames = 0\n")
	out, _ = call[ValidateOutput](t, session, "validate_settings", map[string]any{"path": bad})
	assert.False(t, out.Valid)
	assert.Equal(t, "numGames", out.Key)
	assert.Contains(t, out.Error, "# Games Per Season")

	out, _ = call[ValidateOutput](t, session, "validate_settings", map[string]any{"path": filepath.Join(dir, "missing.yaml")})
	assert.False(t, out.Valid)
	assert.Contains(t, out.Error, "missing.yaml")
}

func TestRunServerRunnerErrors(t *testing.T) {
	server := NewServer("test", &worker.Stub{}, nil)

	err := runServer(context.Background(), server, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runner is nil")

	err = runServer(context.Background(), server, func(context.Context, *mcp.Server) error { return errors.New("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run MCP server: boom")

	called := false
	require.NoError(t, runServer(context.Background(), server, func(context.Context, *mcp.Server) error {
		called = true
		return nil
	}))
	assert.True(t, called)
}
