package devicestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok, "missing key must report ok=false")

	require.NoError(t, s.Set(ctx, KeyToken, "tok"))
	require.NoError(t, s.Set(ctx, KeyUserID, "u1"))
	require.NoError(t, s.Set(ctx, KeyTheme, `{"mode":"dark"}`))

	v, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	require.NoError(t, s.Remove(ctx, KeyToken, KeyUserID))
	_, ok, _ = s.Get(ctx, KeyToken)
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, KeyUserID)
	assert.False(t, ok)

	v, ok, _ = s.Get(ctx, KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, `{"mode":"dark"}`, v)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemory())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "device.yaml")
	s, err := NewFile(path)
	require.NoError(t, err)
	exerciseStorage(t, s)

	reopened, err := NewFile(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(context.Background(), KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok, "values must survive reopening")
	assert.Equal(t, `{"mode":"dark"}`, v)
}

func TestRedisStorage(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s, err := NewRedis(RedisOptions{Client: client, Namespace: "test:device"})
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
	assert.True(t, mr.Exists("test:device:"+KeyTheme))
}

func TestOpenSelectsBackend(t *testing.T) {
	s, err := Open(config.Client{DeviceStore: "memory"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(config.Client{DeviceStore: "file", DeviceStorePath: filepath.Join(t.TempDir(), "d.yaml")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	_, err = Open(config.Client{DeviceStore: "sqlite"}, nil)
	assert.Error(t, err)
}
