package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-tasks/app/token"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestIssueVerify_RoundTrip(t *testing.T) {
	tokenString, err := token.Issue(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := token.Verify(tokenString, testSecret)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
}

func TestVerify_Expired(t *testing.T) {
	tokenString, err := token.Issue(42, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = token.Verify(tokenString, testSecret)
	if !errors.Is(err, token.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tokenString, err := token.Issue(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = token.Verify(tokenString, "other-secret")
	if !errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	_, err := token.Verify("not-a-token", testSecret)
	if !errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_RejectsNonHMAC(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsigned token: %v", err)
	}

	if _, err = token.Verify(tokenString, testSecret); !errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for alg=none token, got %v", err)
	}
}
