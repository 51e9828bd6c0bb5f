package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopwave/internal/domain"
	applog "shopwave/internal/log"
	"shopwave/internal/storage"
)

// SampleUser is the fixed identity every successful login resolves to.
// Authentication here is a stub: no credential verification exists anywhere
// in this repo, and none of this is suitable as a real auth layer.
var SampleUser = domain.User{ID: "user-1", Name: "John Doe", Email: "user@example.com"}

// AuthStore owns the current session. Single-session model: at most one
// user at a time, mirrored to durable storage on login/register and removed
// on logout.
type AuthStore struct {
	mu       sync.Mutex
	user     *domain.User
	records  storage.Store
	notifier Notifier
	delay    time.Duration
	observers
}

// NewAuthStore loads a persisted session if one exists. delay is the
// simulated network latency applied to Login and Register; pass 0 in tests.
func NewAuthStore(records storage.Store, notifier Notifier, delay time.Duration) *AuthStore {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	s := &AuthStore{records: records, notifier: notifier, delay: delay}

	raw, err := records.Get(storage.KeyUser)
	if err == nil {
		var u domain.User
		if jerr := json.Unmarshal(raw, &u); jerr != nil {
			applog.Warn(nil, "auth.load.corrupt", map[string]any{"err": jerr.Error()})
		} else {
			s.user = &u
		}
	} else if err != storage.ErrNotFound {
		applog.Error(nil, "auth.load", err, nil)
	}
	return s
}

// Login signs in with the sample identity after the simulated delay.
// It returns false (with a failure notification) when either field is
// empty, and a non-nil error only when ctx is cancelled mid-delay, in
// which case the user stays unset.
func (s *AuthStore) Login(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		s.notifier.Notify(Notification{
			Title:       "Login failed",
			Description: "Please enter both email and password",
			Failure:     true,
		})
		return false, nil
	}
	if err := wait(ctx, s.delay); err != nil {
		return false, err
	}

	u := SampleUser
	s.setUser(&u)
	s.notifier.Notify(Notification{Title: "Login successful", Description: "Welcome back, " + u.Name})
	s.broadcast()
	return true, nil
}

// Register creates a fresh user after the simulated delay. Same contract as
// Login: empty fields fail softly, cancellation aborts cleanly.
func (s *AuthStore) Register(ctx context.Context, name, email, password string) (bool, error) {
	if name == "" || email == "" || password == "" {
		s.notifier.Notify(Notification{
			Title:       "Registration failed",
			Description: "Please fill in all fields",
			Failure:     true,
		})
		return false, nil
	}
	if err := wait(ctx, s.delay); err != nil {
		return false, err
	}

	u := domain.User{ID: "user-" + uuid.NewString(), Name: name, Email: email}
	s.setUser(&u)
	s.notifier.Notify(Notification{Title: "Registration successful", Description: "Welcome, " + name + "!"})
	s.broadcast()
	return true, nil
}

func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	if err := s.records.Delete(storage.KeyUser); err != nil {
		applog.Error(nil, "auth.persist.clear", err, nil)
	}
	s.mu.Unlock()

	s.notifier.Notify(Notification{Title: "Logged out", Description: "You have been logged out successfully"})
	s.broadcast()
}

// User returns the current user, or nil when signed out.
func (s *AuthStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) IsAuthenticated() bool { return s.User() != nil }

// Subscribe registers fn to run after every session change.
func (s *AuthStore) Subscribe(fn func()) func() { return s.subscribe(fn) }

func (s *AuthStore) setUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	raw, err := json.Marshal(u)
	if err != nil {
		applog.Error(nil, "auth.persist.encode", err, nil)
		return
	}
	if err := s.records.Put(storage.KeyUser, raw); err != nil {
		applog.Error(nil, "auth.persist", err, nil)
	}
}

// wait sleeps for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
