package credential

import "testing"

func TestHashVerifyRoundTrip(t *testing.T) {
	hash, err := Hash("password1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if hash == "password1" {
		t.Fatal("hash equals the plaintext password")
	}
	if !Verify("password1", hash) {
		t.Error("Verify rejected the password that produced the hash")
	}
	if Verify("password2", hash) {
		t.Error("Verify accepted a different password")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("password1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := Hash("password1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt is missing")
	}
	if !Verify("password1", first) || !Verify("password1", second) {
		t.Error("a salted hash no longer verifies against its input")
	}
}
