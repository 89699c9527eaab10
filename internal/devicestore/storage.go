// Package devicestore persists small key/value settings on the device: the
// session token, the user id and UI preferences.
package devicestore

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
)

// Well-known keys.
const (
	KeyToken  = "token"
	KeyUserID = "userId"
	KeyTheme  = "theme-storage"
)

// Storage is durable key/value storage. Get reports ok=false for missing keys.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

// Open builds the Storage selected by cfg.DeviceStore.
func Open(cfg config.Client, logger *log.Logger) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.DeviceStore)) {
	case "", "file":
		return NewFile(cfg.DeviceStorePath)
	case "redis":
		return NewRedis(RedisOptions{URL: cfg.RedisURL, Namespace: "storefront:device", Logger: logger})
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown device store %q", cfg.DeviceStore)
	}
}
