// Package user holds the signed-in user's profile.
package user

import (
	"context"
	"sync"

	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	"github.com/Rajvenkat512/fruits-webapp/internal/store"
)

type Service interface {
	Profile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.UserProfile, error)
}

type State struct {
	Profile *domain.UserProfile
	Loading bool
	Err     string
}

type Store struct {
	svc Service

	mu      sync.RWMutex
	profile *domain.UserProfile
	status  store.Status

	notifier store.Notifier[State]
}

func New(svc Service) *Store {
	return &Store{svc: svc}
}

func (s *Store) Fetch(ctx context.Context) error {
	s.begin()
	p, err := s.svc.Profile(ctx)
	s.finish(p, err, "Failed to fetch profile")
	return err
}

// Update sends the set fields of in and replaces the profile with the
// server's copy.
func (s *Store) Update(ctx context.Context, in domain.ProfileUpdate) error {
	s.begin()
	p, err := s.svc.UpdateProfile(ctx, in)
	s.finish(p, err, "Failed to update profile")
	return err
}

func (s *Store) Profile() (domain.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return domain.UserProfile{}, false
	}
	return *s.profile, true
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
	s.profile = nil
	s.status.ClearError()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

func (s *Store) Subscribe(fn func(State)) func() {
	return s.notifier.Subscribe(fn)
}

func (s *Store) stateLocked() State {
	st := State{Loading: s.status.Loading(), Err: s.status.Err()}
	if s.profile != nil {
		p := *s.profile
		st.Profile = &p
	}
	return st
}

func (s *Store) begin() {
	s.mu.Lock()
	s.status.Begin()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

func (s *Store) finish(p *domain.UserProfile, err error, fallback string) {
	s.mu.Lock()
	if err != nil {
		s.status.Finish(apiclient.Message(err, fallback))
	} else {
		s.profile = p
		s.status.Finish("")
	}
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}
