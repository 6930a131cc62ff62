package token_test

import (
	"testing"
	"time"

	"identity-server/internal/token"
)

func TestIssueAndValidate(t *testing.T) {
	m := token.NewJWTManager("test-secret", time.Hour, "identity-server")

	signed, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a non-empty token")
	}

	userID, err := m.Validate(signed)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("Validate returned %q, want %q", userID, "user-123")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := token.NewJWTManager("secret-a", time.Hour, "identity-server")
	verifier := token.NewJWTManager("secret-b", time.Hour, "identity-server")

	signed, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Validate(signed); err == nil {
		t.Fatal("expected validation to fail under a different secret")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := token.NewJWTManager("test-secret", -time.Minute, "identity-server")

	signed, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Validate(signed); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := token.NewJWTManager("test-secret", time.Hour, "identity-server")

	if _, err := m.Validate("not.a.token"); err == nil {
		t.Fatal("expected validation to fail for garbage input")
	}
}
