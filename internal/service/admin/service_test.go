package admin

import (
	"errors"
	"testing"
)

func TestLoginAndAuthorize(t *testing.T) {
	svc := New("admin@shop.test", "s3cret")

	token, err := svc.Login("admin@shop.test", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if !svc.Authorize(token) {
		t.Fatalf("freshly issued token must authorize")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := New("admin@shop.test", "s3cret")

	if _, err := svc.Login("admin@shop.test", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, err := svc.Login("other@shop.test", "s3cret"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestLoginDisabledWithoutPassword(t *testing.T) {
	svc := New("admin@shop.test", "")
	if _, err := svc.Login("admin@shop.test", ""); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("empty configured password must disable login, got %v", err)
	}
}

func TestAuthorizeUnknownToken(t *testing.T) {
	svc := New("admin@shop.test", "s3cret")
	if svc.Authorize("bogus") {
		t.Fatalf("unknown token must not authorize")
	}
}
