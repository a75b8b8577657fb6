package token

import (
	"strings"
	"testing"
	"time"
)

const secret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	tok, err := GenerateJWT("Officer Kim", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	claims, err := ValidateJWT(tok, secret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.OfficerName != "Officer Kim" {
		t.Errorf("OfficerName = %q", claims.OfficerName)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateJWT("Officer Kim", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	if _, err := ValidateJWT(tok, "other-secret"); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	tok, err := GenerateJWT("Officer Kim", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	_, err = ValidateJWT(tok, secret)
	if err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("ValidateJWT() error = %v, want expired", err)
	}
}

func TestGenerateRequiresInputs(t *testing.T) {
	if _, err := GenerateJWT("", secret, time.Hour); err == nil {
		t.Error("expected error for empty officer")
	}
	if _, err := GenerateJWT("Officer Kim", "", time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := ValidateJWT("", secret); err == nil {
		t.Error("expected error for empty token")
	}
}
