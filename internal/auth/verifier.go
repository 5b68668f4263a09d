package auth

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier is the external collaborator that decides whether an
// email/credential pair is acceptable. The identity store never inspects
// credentials itself.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, credential string) error
}

// MockVerifier accepts any non-empty pair, optionally after a simulated
// round-trip delay. It stands in for a real credential backend.
type MockVerifier struct {
	Delay time.Duration
}

func (v MockVerifier) Verify(ctx context.Context, email, credential string) error {
	if v.Delay > 0 {
		t := time.NewTimer(v.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	if email == "" || credential == "" {
		return ErrInvalidCredentials
	}
	return nil
}
