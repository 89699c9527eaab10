// Package auth holds the session: login, registration, sign-out and restoring
// a persisted session at startup.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/devicestore"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	"github.com/Rajvenkat512/fruits-webapp/internal/store"
)

type Phase int

const (
	Unauthenticated Phase = iota
	Authenticating
	Authenticated
)

func (p Phase) String() string {
	switch p {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

const (
	msgUnreachable = "Cannot connect to server. Check API_URL in .env"
	msgTimeout     = "Request timeout. Server may be down"
)

type Service interface {
	Login(ctx context.Context, in domain.Credentials) (*domain.AuthResponse, error)
	Register(ctx context.Context, in domain.Registration) (*domain.AuthResponse, error)
}

type State struct {
	Phase   Phase
	Session domain.Session
	Loading bool
	Err     string
}

type Store struct {
	svc     Service
	storage devicestore.Storage
	logger  *log.Logger

	mu      sync.RWMutex
	phase   Phase
	session domain.Session
	status  store.Status

	notifier store.Notifier[State]
}

func New(svc Service, storage devicestore.Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{svc: svc, storage: storage, logger: logger}
}

// Login signs in and persists the token and user id on the device.
func (s *Store) Login(ctx context.Context, email, password string) error {
	prevPhase := s.beginAuth()
	resp, err := s.svc.Login(ctx, domain.Credentials{Email: email, Password: password})
	if err == nil {
		err = s.persist(ctx, resp)
	}
	if err != nil {
		s.fail(prevPhase, loginMessage(err))
		return err
	}
	user := resp.User
	s.complete(domain.Session{Token: resp.Token, UserID: user.ID, User: &user})
	return nil
}

// Register creates the account and then signs in with the same credentials.
// role is only sent when set.
func (s *Store) Register(ctx context.Context, email, password, name, role string) error {
	prevPhase := s.beginAuth()
	_, err := s.svc.Register(ctx, domain.Registration{Email: email, Password: password, Name: name, Role: role})
	if err != nil {
		s.fail(prevPhase, apiclient.Message(err, "Registration failed"))
		return err
	}
	s.mu.Lock()
	s.phase = prevPhase
	s.status.Finish("")
	s.mu.Unlock()
	return s.Login(ctx, email, password)
}

// Logout drops the session. Storage failures are logged, never returned.
func (s *Store) Logout(ctx context.Context) {
	if err := s.storage.Remove(ctx, devicestore.KeyToken, devicestore.KeyUserID); err != nil {
		s.logger.Printf("auth store: logout clear error=%v", err)
	}
	s.reset()
}

// Restore rehydrates the session from device storage without touching the
// network. Both a token and a user id must be present.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	token, okToken, err := s.storage.Get(ctx, devicestore.KeyToken)
	if err != nil {
		s.reset()
		return false, fmt.Errorf("restore token: %w", err)
	}
	userID, okUser, err := s.storage.Get(ctx, devicestore.KeyUserID)
	if err != nil {
		s.reset()
		return false, fmt.Errorf("restore user id: %w", err)
	}
	if !okToken || !okUser || token == "" || userID == "" {
		s.reset()
		return false, nil
	}
	s.complete(domain.Session{Token: token, UserID: userID})
	return true, nil
}

// Invalidate forgets the in-memory session. The API client calls it after a
// 401 has already cleared the persisted credentials.
func (s *Store) Invalidate() {
	s.reset()
}

func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase == Authenticated
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

func (s *Store) Subscribe(fn func(State)) func() {
	return s.notifier.Subscribe(fn)
}

func (s *Store) persist(ctx context.Context, resp *domain.AuthResponse) error {
	if resp.Token == "" || resp.User.ID == "" {
		return errors.New("login response is missing token or user id")
	}
	if err := s.storage.Set(ctx, devicestore.KeyToken, resp.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.storage.Set(ctx, devicestore.KeyUserID, resp.User.ID); err != nil {
		return fmt.Errorf("persist user id: %w", err)
	}
	return nil
}

func (s *Store) stateLocked() State {
	return State{Phase: s.phase, Session: s.session, Loading: s.status.Loading(), Err: s.status.Err()}
}

func (s *Store) beginAuth() Phase {
	s.mu.Lock()
	prev := s.phase
	s.phase = Authenticating
	s.status.Begin()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
	return prev
}

// fail restores prev unless the session was dropped while the request ran,
// as a 401 does through Invalidate.
func (s *Store) fail(prev Phase, msg string) {
	s.mu.Lock()
	if s.phase == Authenticating {
		s.phase = prev
	}
	s.status.Finish(msg)
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

func (s *Store) complete(session domain.Session) {
	s.mu.Lock()
	s.phase = Authenticated
	s.session = session
	s.status.Finish("")
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

func (s *Store) reset() {
	s.mu.Lock()
	s.phase = Unauthenticated
	s.session = domain.Session{}
	s.status.ClearError()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notifier.Publish(st)
}

// loginMessage picks the most specific explanation for a failed sign-in.
func loginMessage(err error) string {
	switch {
	case errors.Is(err, apiclient.ErrUnreachable):
		return msgUnreachable
	case errors.Is(err, apiclient.ErrTimeout):
		return msgTimeout
	}
	if msg, ok := apiclient.ServerMessage(err); ok {
		return msg
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Login failed"
}
