// Package watchlist keeps the wishlist in memory and mirrors changes to the API.
package watchlist

import (
	"context"
	"sync"

	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	"github.com/Rajvenkat512/fruits-webapp/internal/store"
)

type Service interface {
	List(ctx context.Context) ([]domain.WatchlistItem, error)
	Add(ctx context.Context, productID string) (*domain.WatchlistItem, error)
	Remove(ctx context.Context, itemID string) error
}

type State struct {
	Items   []domain.WatchlistItem
	Loading bool
	Err     string
}

type Store struct {
	svc Service

	mu     sync.RWMutex
	items  store.Ordered[string, domain.WatchlistItem]
	status store.Status

	notifier store.Notifier[State]
}

func itemKey(i domain.WatchlistItem) string { return i.ID }

func New(svc Service) *Store {
	return &Store{svc: svc, items: store.NewOrdered(itemKey, nil)}
}

func (s *Store) Fetch(ctx context.Context) error {
	s.begin()
	items, err := s.svc.List(ctx)
	s.finish(err, "Failed to fetch watchlist", func() {
		s.items = store.NewOrdered(itemKey, items)
	})
	return err
}

func (s *Store) Add(ctx context.Context, productID string) error {
	s.begin()
	item, err := s.svc.Add(ctx, productID)
	s.finish(err, "Failed to add to watchlist", func() {
		s.items, _ = s.items.Upsert(*item)
	})
	return err
}

func (s *Store) Remove(ctx context.Context, itemID string) error {
	s.begin()
	err := s.svc.Remove(ctx, itemID)
	s.finish(err, "Failed to remove from watchlist", func() {
		s.items, _ = s.items.Remove(itemID)
	})
	return err
}

// Contains reports whether productID is on the wishlist.
func (s *Store) Contains(productID string) bool {
	_, ok := s.ItemForProduct(productID)
	return ok
}

// ItemForProduct returns the wishlist entry holding productID.
func (s *Store) ItemForProduct(productID string) (domain.WatchlistItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Find(func(i domain.WatchlistItem) bool { return i.ProductID == productID })
}

// Toggle adds productID, or removes its entry when already present. It
// reports whether the product is on the wishlist afterwards.
func (s *Store) Toggle(ctx context.Context, productID string) (bool, error) {
	if item, ok := s.ItemForProduct(productID); ok {
		if err := s.Remove(ctx, item.ID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Add(ctx, productID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.status.ClearError()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

func (s *Store) Reset() {
	s.mu.Lock()
	s.items = store.NewOrdered(itemKey, nil)
	s.status.ClearError()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

func (s *Store) Subscribe(fn func(State)) func() {
	return s.notifier.Subscribe(fn)
}

func (s *Store) stateLocked() State {
	return State{Items: s.items.Values(), Loading: s.status.Loading(), Err: s.status.Err()}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.status.Begin()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

func (s *Store) finish(err error, fallback string, apply func()) {
	s.mu.Lock()
	if err != nil {
		s.status.Finish(apiclient.Message(err, fallback))
	} else {
		apply()
		s.status.Finish("")
	}
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}
