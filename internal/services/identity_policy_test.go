package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestResolveIdentityNormalizesEmail(t *testing.T) {
	verifier := NewStaticCodeVerifier("open-sesame")

	email, err := ResolveIdentity("  Hope@Example.COM ", " open-sesame ", verifier)
	if err != nil {
		t.Fatalf("ResolveIdentity() unexpected error: %v", err)
	}
	if email != "hope@example.com" {
		t.Fatalf("expected normalized email, got %q", email)
	}
}

func TestResolveIdentityRejectsMissingInput(t *testing.T) {
	verifier := NewStaticCodeVerifier("open-sesame")

	cases := []struct {
		name  string
		email string
		code  string
	}{
		{"empty email", "", "open-sesame"},
		{"empty code", "hope@example.com", ""},
		{"blank code", "hope@example.com", "   "},
		{"email without at sign", "hope.example.com", "open-sesame"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := ResolveIdentity(testCase.email, testCase.code, verifier); !errors.Is(err, ErrIdentityInputInvalid) {
				t.Fatalf("expected ErrIdentityInputInvalid, got %v", err)
			}
		})
	}
}

func TestResolveIdentityRejectsWrongCode(t *testing.T) {
	verifier := NewStaticCodeVerifier("open-sesame")

	if _, err := ResolveIdentity("hope@example.com", "not-the-code", verifier); !errors.Is(err, ErrAccessCodeRejected) {
		t.Fatalf("expected ErrAccessCodeRejected, got %v", err)
	}
}

func TestStaticCodeVerifierRejectsWhenUnconfigured(t *testing.T) {
	verifier := NewStaticCodeVerifier("")
	if verifier.Verify("") {
		t.Fatal("expected empty secret to reject everything, even empty input")
	}
}

func TestBcryptCodeVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash access code: %v", err)
	}

	verifier := NewBcryptCodeVerifier(string(hash))
	if !verifier.Verify("open-sesame") {
		t.Fatal("expected hashed code to verify")
	}
	if verifier.Verify("wrong") {
		t.Fatal("expected wrong code to be rejected")
	}
}
