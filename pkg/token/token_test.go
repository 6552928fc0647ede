package token

import (
	"testing"
	"time"

	"grape_backend/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42, Login: "player"}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := VerifyToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.ID != "42" {
		t.Errorf("claims.ID = %q, want \"42\"", claims.ID)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := VerifyToken(tokenStr, []byte("wrong")); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := VerifyToken(tokenStr, secret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestRefreshToken(t *testing.T) {
	tok, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if tok == "" {
		t.Fatal("empty refresh token")
	}

	hash := HashRefreshToken(tok)
	if !VerifyRefreshToken(tok, hash) {
		t.Error("valid token did not verify")
	}
	if VerifyRefreshToken("other", hash) {
		t.Error("wrong token verified")
	}
}
