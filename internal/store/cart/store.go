// Package cart keeps the signed-in user's cart in memory and mirrors every
// change to the API.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	"github.com/Rajvenkat512/fruits-webapp/internal/store"
)

// ErrInvalidQuantity is returned for quantities below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Service is the cart API the store talks to.
type Service interface {
	List(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, productID string, quantity int) (*domain.CartItem, error)
	Update(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, itemID string) error
}

// State is a snapshot of the store.
type State struct {
	Items   []domain.CartItem
	Loading bool
	Err     string
}

type Store struct {
	svc Service

	mu     sync.RWMutex
	items  store.Ordered[string, domain.CartItem]
	status store.Status

	notifier store.Notifier[State]
}

func itemKey(i domain.CartItem) string { return i.ID }

func New(svc Service) *Store {
	return &Store{svc: svc, items: store.NewOrdered(itemKey, nil)}
}

// Fetch replaces the cart with the server's copy.
func (s *Store) Fetch(ctx context.Context) error {
	s.begin()
	items, err := s.svc.List(ctx)
	s.finish(err, "Failed to fetch cart", func() {
		s.items = store.NewOrdered(itemKey, items)
	})
	return err
}

// Add puts quantity units of a product in the cart. The server merges
// repeated adds into one line; the store upserts whatever line comes back.
func (s *Store) Add(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	s.begin()
	item, err := s.svc.Add(ctx, productID, quantity)
	s.finish(err, "Failed to add item", func() {
		s.items, _ = s.items.Upsert(*item)
	})
	return err
}

// UpdateQuantity sets the quantity of a line. Quantities below one remove it.
// The response replaces the line with itemID in place; lines not held
// locally are never added.
func (s *Store) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, itemID)
	}
	s.begin()
	item, err := s.svc.Update(ctx, itemID, quantity)
	s.finish(err, "Failed to update item", func() {
		updated := *item
		if updated.ID == "" {
			updated.ID = itemID
		}
		s.items, _ = s.items.Replace(itemID, updated)
	})
	return err
}

func (s *Store) Remove(ctx context.Context, itemID string) error {
	s.begin()
	err := s.svc.Remove(ctx, itemID)
	s.finish(err, "Failed to remove item", func() {
		s.items, _ = s.items.Remove(itemID)
	})
	return err
}

// Increment adds one unit to a line.
func (s *Store) Increment(ctx context.Context, itemID string) error {
	item, err := s.lookup(itemID)
	if err != nil {
		return err
	}
	return s.UpdateQuantity(ctx, itemID, item.Quantity+1)
}

// Decrement takes one unit off a line, removing it at quantity one.
func (s *Store) Decrement(ctx context.Context, itemID string) error {
	item, err := s.lookup(itemID)
	if err != nil {
		return err
	}
	if item.Quantity <= 1 {
		return s.Remove(ctx, itemID)
	}
	return s.UpdateQuantity(ctx, itemID, item.Quantity-1)
}

// TotalPrice sums price times quantity. Lines without a product snapshot
// count as zero.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, it := range s.items.Values() {
		total = total.Add(it.LineTotal())
	}
	return total
}

// TotalItems sums quantities.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items.Values() {
		n += it.Quantity
	}
	return n
}

// Items returns the cart lines in order.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Values()
}

func (s *Store) Item(itemID string) (domain.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Get(itemID)
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

// Reset empties the cart without calling the API, for sign-out.
func (s *Store) Reset() {
	s.mu.Lock()
	s.items = store.NewOrdered(itemKey, nil)
	s.status.ClearError()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

// Subscribe calls fn with a snapshot after every change.
func (s *Store) Subscribe(fn func(State)) func() {
	return s.notifier.Subscribe(fn)
}

func (s *Store) lookup(itemID string) (domain.CartItem, error) {
	item, ok := s.Item(itemID)
	if !ok {
		return domain.CartItem{}, fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
	}
	return item, nil
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
