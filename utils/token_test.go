package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "test-secret")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", claims.UserID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "secret-a")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := ParseToken(token, "secret-b"); err == nil {
		t.Fatal("ParseToken() with wrong secret succeeded, want error")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token", "secret"); err == nil {
		t.Fatal("ParseToken() on garbage succeeded, want error")
	}
}
