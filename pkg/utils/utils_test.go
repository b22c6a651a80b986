package utils

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken(42, "user")
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Role != "user" {
		t.Fatalf("role = %q, want user", claims.Role)
	}

	id, err := claims.AccountID()
	if err != nil {
		t.Fatalf("decode subject: %v", err)
	}
	if id != 42 {
		t.Fatalf("account id = %d, want 42", id)
	}
}

func TestTokenUsesRuntimeSecret(t *testing.T) {
	// The secret arrives via .env after the package is initialized, so it
	// must be read at signing time, not captured at init.
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	token, err := CreateToken(7, "user")
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("validate with current secret: %v", err)
	}

	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed under the old secret must not validate")
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := ComparePasswords(hash, "hunter2"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := ComparePasswords(hash, "hunter3"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestValidationErrors(t *testing.T) {
	var violations ValidationErrors
	violations.Add("waveConditions.height", `unknown value "massive"`)
	violations.Add("date", "required")

	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(violations))
	}

	msg := violations.Error()
	for _, want := range []string{"waveConditions.height", "date"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error text %q missing field %q", msg, want)
		}
	}
}
