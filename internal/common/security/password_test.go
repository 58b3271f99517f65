package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Fatalf("CheckPasswordHash rejected the original password")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Fatalf("CheckPasswordHash accepted a different password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPasswordHash("anything", "not-a-bcrypt-hash") {
		t.Fatalf("CheckPasswordHash accepted a malformed hash")
	}
}
