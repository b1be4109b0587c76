package password

import "testing"

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Secret123" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !CheckPassword(hash, "Secret123") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "secret123") {
		t.Error("CheckPassword() accepted the wrong password")
	}
}
