package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIdentityInputInvalid = errors.New("identity input invalid")
	ErrAccessCodeRejected   = errors.New("access code rejected")
)

// CodeVerifier checks the shared access phrase. The secret stays
// configuration; the policy below never sees its value.
type CodeVerifier interface {
	Verify(code string) bool
}

// StaticCodeVerifier compares against a plaintext configured secret. This is
// a shared secret, not per-user authentication: anyone holding the code can
// act as any identity.
type StaticCodeVerifier struct {
	secret string
}

func NewStaticCodeVerifier(secret string) *StaticCodeVerifier {
	return &StaticCodeVerifier{secret: strings.TrimSpace(secret)}
}

func (verifier *StaticCodeVerifier) Verify(code string) bool {
	if verifier.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(verifier.secret), []byte(code)) == 1
}

// BcryptCodeVerifier compares against a bcrypt hash of the access code, for
// deployments that refuse to keep the secret in plaintext configuration.
type BcryptCodeVerifier struct {
	hash string
}

func NewBcryptCodeVerifier(hash string) *BcryptCodeVerifier {
	return &BcryptCodeVerifier{hash: strings.TrimSpace(hash)}
}

func (verifier *BcryptCodeVerifier) Verify(code string) bool {
	if verifier.hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(verifier.hash), []byte(code)) == nil
}

// NormalizeIdentityEmail lowercases and trims the raw email. Only "@"
// presence is required: the address is a storage key, not a mailbox.
func NormalizeIdentityEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !strings.Contains(email, "@") {
		return ""
	}
	return email
}

// ResolveIdentity validates a login attempt and returns the normalized email
// used as the storage key. ErrIdentityInputInvalid covers missing or
// malformed input; ErrAccessCodeRejected covers a wrong code.
func ResolveIdentity(emailRaw string, codeRaw string, verifier CodeVerifier) (string, error) {
	code := strings.TrimSpace(codeRaw)
	if strings.TrimSpace(emailRaw) == "" || code == "" {
		return "", ErrIdentityInputInvalid
	}

	email := NormalizeIdentityEmail(emailRaw)
	if email == "" {
		return "", ErrIdentityInputInvalid
	}

	if verifier == nil || !verifier.Verify(code) {
		return "", ErrAccessCodeRejected
	}

	return email, nil
}
