package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasherRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("dkjsnfkjbkafnk223")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "dkjsnfkjbkafnk223" {
		t.Fatal("hash must not be the plaintext")
	}

	if !hasher.Verify("dkjsnfkjbkafnk223", hash) {
		t.Error("Verify should accept the original password")
	}
	if hasher.Verify("wrong password", hash) {
		t.Error("Verify should reject a wrong password")
	}
	if hasher.Verify("dkjsnfkjbkafnk223", "not-a-bcrypt-hash") {
		t.Error("Verify should reject a malformed hash without panicking")
	}
}

func TestPasswordHasherSalts(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}
