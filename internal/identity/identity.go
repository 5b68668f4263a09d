// Package identity holds the authenticated principal for the running
// process and keeps the durable session (token + user record) in step
// with it.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medconnect/internal/auth"
	"medconnect/internal/model"
	"medconnect/internal/storage"
)

// Phase of the authentication state machine.
type Phase int

const (
	Anonymous Phase = iota
	Authenticating
	Authenticated
)

var (
	// ErrAuthInProgress rejects a login or registration started while
	// another one is mid-flight.
	ErrAuthInProgress = errors.New("authentication already in progress")
	// ErrTooManyAttempts reports that the per-email throttle tripped.
	ErrTooManyAttempts = errors.New("too many authentication attempts")
)

type Options struct {
	Verifier   auth.CredentialVerifier
	Secret     string
	AdminEmail string
	// AdminCredentialHash is the bcrypt hash of the reserved admin
	// credential.
	AdminCredentialHash string

	// Throttle on login/register attempts per email. Zero values fall
	// back to 0.5 attempts/sec with a burst of 5.
	AttemptRate  float64
	AttemptBurst int
}

type Store struct {
	mu    sync.Mutex
	phase Phase
	user  model.User
	token string

	verifier auth.CredentialVerifier
	kv       storage.Storage
	log      *zap.Logger
	limiter  *attemptLimiter
	opts     Options
}

// New builds the store and rehydrates any persisted session. A missing
// or corrupt session record means anonymous, never an error.
func New(ctx context.Context, kv storage.Storage, log *zap.Logger, opts Options) *Store {
	if opts.AttemptRate == 0 {
		opts.AttemptRate = 0.5
	}
	if opts.AttemptBurst == 0 {
		opts.AttemptBurst = 5
	}
	s := &Store{
		verifier: opts.Verifier,
		kv:       kv,
		log:      log,
		limiter:  newAttemptLimiter(opts.AttemptRate, opts.AttemptBurst),
		opts:     opts,
	}
	s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	tok, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("could not read session token", zap.Error(err))
		}
		s.clearSession(ctx)
		return
	}
	raw, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		s.clearSession(ctx)
		return
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn("discarding corrupt session record", zap.Error(err))
		s.clearSession(ctx)
		return
	}
	if _, err := auth.ParseToken(tok, s.opts.Secret); err != nil {
		s.log.Warn("discarding stale session token", zap.Error(err))
		s.clearSession(ctx)
		return
	}
	s.phase, s.user, s.token = Authenticated, u, tok
}

// Login verifies the credential via the external collaborator and, on
// success, derives the role from the privileged-account allowlist:
// the reserved email/credential pair yields admin, everything else
// yields patient.
func (s *Store) Login(ctx context.Context, email, credential string) (model.User, error) {
	if email == "" {
		return model.User{}, model.MissingField("email")
	}
	if credential == "" {
		return model.User{}, model.MissingField("credential")
	}
	if err := s.begin(); err != nil {
		return model.User{}, err
	}
	if !s.limiter.allow(email) {
		s.fail()
		return model.User{}, ErrTooManyAttempts
	}
	if err := s.verifier.Verify(ctx, email, credential); err != nil {
		s.fail()
		return model.User{}, err
	}

	u := s.principalFor(email, credential)
	return s.complete(ctx, u)
}

// Register always succeeds: no uniqueness check against existing users
// is made, and the role is always patient.
func (s *Store) Register(ctx context.Context, name, email, credential, phone string) (model.User, error) {
	if name == "" {
		return model.User{}, model.MissingField("name")
	}
	if email == "" {
		return model.User{}, model.MissingField("email")
	}
	if credential == "" {
		return model.User{}, model.MissingField("credential")
	}
	if err := s.begin(); err != nil {
		return model.User{}, err
	}
	if !s.limiter.allow(email) {
		s.fail()
		return model.User{}, ErrTooManyAttempts
	}

	u := model.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      model.RolePatient,
		CreatedAt: time.Now(),
	}
	return s.complete(ctx, u)
}

// Logout clears the durable session and resets to anonymous. It has no
// error conditions; storage failures are logged and swallowed.
func (s *Store) Logout(ctx context.Context) {
	s.clearSession(ctx)
	s.fail()
}

func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.phase == Authenticated
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// principalFor rebuilds the user record for a successful login. There is
// no user collection to consult: the admin identity is fixed and any
// other email gets a placeholder patient profile, as in the mock backend
// this simulates. Only the reserved pair yields admin; the admin email
// with a different accepted credential is an ordinary patient.
func (s *Store) principalFor(email, credential string) model.User {
	if email == s.opts.AdminEmail && auth.CheckPassword(s.opts.AdminCredentialHash, credential) {
		return model.User{
			ID:        "admin-1",
			Name:      "Admin User",
			Email:     email,
			Role:      model.RoleAdmin,
			CreatedAt: time.Now(),
		}
	}
	return model.User{
		ID:        uuid.New().String(),
		Name:      "John Doe",
		Email:     email,
		Role:      model.RolePatient,
		CreatedAt: time.Now(),
	}
}

func (s *Store) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == Authenticating {
		return ErrAuthInProgress
	}
	s.phase = Authenticating
	return nil
}

func (s *Store) fail() {
	s.mu.Lock()
	s.phase = Anonymous
	s.user, s.token = model.User{}, ""
	s.mu.Unlock()
}

func (s *Store) complete(ctx context.Context, u model.User) (model.User, error) {
	tok, err := auth.MakeToken(u.ID, u.Role, s.opts.Secret)
	if err != nil {
		s.fail()
		return model.User{}, err
	}
	raw, err := json.Marshal(u)
	if err != nil {
		s.fail()
		return model.User{}, err
	}
	// session persistence mirrors the in-memory transition; failures are
	// logged, not surfaced
	if err := s.kv.Set(ctx, storage.KeyToken, tok); err != nil {
		s.log.Warn("could not persist session token", zap.Error(err))
	}
	if err := s.kv.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		s.log.Warn("could not persist session user", zap.Error(err))
	}

	s.mu.Lock()
	s.phase, s.user, s.token = Authenticated, u, tok
	s.mu.Unlock()
	return u, nil
}

func (s *Store) clearSession(ctx context.Context) {
	for _, k := range []string{storage.KeyToken, storage.KeyUser} {
		if err := s.kv.Delete(ctx, k); err != nil {
			s.log.Warn("could not clear session key", zap.String("key", k), zap.Error(err))
		}
	}
}
