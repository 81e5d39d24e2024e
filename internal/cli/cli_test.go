package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"parish-match/internal/app"
	"parish-match/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T) {
	t.Setenv("APP_NAME", "parish-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("AUTH_TOKEN_SECRET", "0123456789abcdef0123")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "parish-match version: ")
}

func TestTokenCommand(t *testing.T) {
	setEnv(t)
	id := uuid.New()

	out, err := execute(t, "token", id.String())
	require.NoError(t, err)

	svc := jwt.NewHMACService("0123456789abcdef0123", "parish-match", time.Hour)
	claims, err := svc.ValidateAccessToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID())
}

func TestTokenCommand_RejectsBadUserID(t *testing.T) {
	setEnv(t)
	_, err := execute(t, "token", "not-a-uuid")
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed", "token", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestServeCommand_FailsWithoutDatabase(t *testing.T) {
	setEnv(t)
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")

	cmd, _, err := rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, serveCmd, cmd)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	assert.Error(t, serve(ctx))
}

func TestServeListenAddr(t *testing.T) {
	addr, err := app.ListenAddr(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)
}
