package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
	if _, err := NewManager("secret"); err != nil {
		t.Fatalf("expected manager, got %v", err)
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m, err := NewManager("secret")
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewAccessToken(42, "staff", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("expected token to parse, got %v", err)
	}
	if id, ok := claims["user_id"].(float64); !ok || int(id) != 42 {
		t.Fatalf("expected user_id 42 got %v", claims["user_id"])
	}
	if claims["role"] != "staff" {
		t.Fatalf("expected role staff got %v", claims["role"])
	}
}

func TestParseRejectsForeignKey(t *testing.T) {
	m, _ := NewManager("secret")
	other, _ := NewManager("different-secret")

	token, err := other.NewAccessToken(42, "student", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected parse to reject token signed with another key")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m, _ := NewManager("secret")

	token, err := m.NewAccessToken(42, "student", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected parse to reject expired token")
	}
}

func TestNewRefreshToken(t *testing.T) {
	m, _ := NewManager("secret")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars got %d", len(a))
	}
	if a == b {
		t.Fatal("expected distinct refresh tokens")
	}
}
