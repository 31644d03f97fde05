package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour)

	tok, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), -1*time.Second)

	tok, err := svc.Issue("bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue("carol")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), time.Hour)

	tok, err := svc.Issue("dave")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// 修改载荷中的一个字节，签名应当失效
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Verify(tampered); err == nil {
		t.Fatalf("expected error for tampered token, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)

	if _, err := svc.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
