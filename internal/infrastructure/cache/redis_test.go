package cache

import (
	"context"
	"testing"
	"time"

	"parish-match/internal/config"
	"parish-match/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ storage.KV = (*Redis)(nil)

func TestNewRedis_NoAddressBypasses(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRedis(config.RedisConfig{TTL: time.Minute}, zap.New(core))

	ctx := context.Background()
	assert.False(t, r.Enabled())
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)

	require.NoError(t, r.Put(ctx, "k", []byte("v")))
	v, ok, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "k"))
	require.NoError(t, r.DeleteByPattern(ctx, "matching:*"))
	require.NoError(t, r.Close())

	assert.Equal(t, 1, logs.FilterMessage("redis address not configured, cache bypassed").Len())
}

func TestNilRedisIsSafe(t *testing.T) {
	var r *Redis
	ctx := context.Background()
	assert.False(t, r.Enabled())

	_, ok, err := r.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, r.Put(ctx, "k", nil))
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
}
