// Package theme persists the light/dark preference and resolves the palette.
package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/Rajvenkat512/fruits-webapp/internal/devicestore"
	"github.com/Rajvenkat512/fruits-webapp/internal/store"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// persisted is the JSON document stored under devicestore.KeyTheme.
type persisted struct {
	State struct {
		Mode Mode `json:"mode"`
	} `json:"state"`
	Version int `json:"version"`
}

type Store struct {
	storage devicestore.Storage
	logger  *log.Logger

	mu   sync.RWMutex
	mode Mode

	notifier store.Notifier[Mode]
}

func New(storage devicestore.Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{storage: storage, logger: logger, mode: Light}
}

// Load reads the persisted mode. Missing or unreadable documents leave the
// default light mode in place.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.storage.Get(ctx, devicestore.KeyTheme)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	if !ok {
		return nil
	}
	var doc persisted
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Printf("theme store: ignoring stored value error=%v", err)
		return nil
	}
	if doc.State.Mode != Light && doc.State.Mode != Dark {
		return nil
	}
	s.set(doc.State.Mode)
	return nil
}

func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Store) IsDark() bool {
	return s.Mode() == Dark
}

// Toggle flips between light and dark and persists the result.
func (s *Store) Toggle(ctx context.Context) (Mode, error) {
	next := Dark
	if s.Mode() == Dark {
		next = Light
	}
	return next, s.SetMode(ctx, next)
}

func (s *Store) SetMode(ctx context.Context, m Mode) error {
	if m != Light && m != Dark {
		return fmt.Errorf("unknown theme mode %q", m)
	}
	s.set(m)
	var doc persisted
	doc.State.Mode = m
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, devicestore.KeyTheme, string(raw)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Palette returns the colors for the current mode.
func (s *Store) Palette() Palette {
	return PaletteFor(s.Mode())
}

func (s *Store) Subscribe(fn func(Mode)) func() {
	return s.notifier.Subscribe(fn)
}

func (s *Store) set(m Mode) {
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
	s.notifier.Publish(m)
}
