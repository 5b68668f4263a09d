package auth

import (
	"context"
	"testing"
	"time"

	"medconnect/internal/model"
)

const secret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("u-1", model.RoleAdmin, secret)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "u-1" {
		t.Errorf("uid mismatch: %s", claims.UserID)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("role mismatch: %s", claims.Role)
	}

	// session tokens last ~24h
	diff := time.Until(claims.ExpiresAt.Time)
	if diff < 23*time.Hour || diff > 25*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", diff)
	}
}

func TestParseTokenRejections(t *testing.T) {
	tok, _ := MakeToken("u-1", model.RolePatient, secret)

	if _, err := ParseToken(tok, "wrong-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
	if _, err := ParseToken("not.a.token", secret); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestPasswordHashing(t *testing.T) {
	h, err := HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(h, "s3cret-pw") {
		t.Error("correct password rejected")
	}
	if CheckPassword(h, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestMockVerifier(t *testing.T) {
	v := MockVerifier{}
	ctx := context.Background()

	if err := v.Verify(ctx, "a@b.com", "pw"); err != nil {
		t.Errorf("non-empty pair should verify: %v", err)
	}
	if err := v.Verify(ctx, "", "pw"); err == nil {
		t.Error("empty email should be rejected")
	}
}

func TestMockVerifierDelayCancellation(t *testing.T) {
	v := MockVerifier{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := v.Verify(ctx, "a@b.com", "pw"); err == nil {
		t.Error("cancelled context should abort the simulated call")
	}
}
