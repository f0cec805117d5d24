package auth

import "testing"

func TestHashPassword_UniqueDigests(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("two digests of the same plaintext must differ")
	}
	if !CheckPassword("pw", d1) || !CheckPassword("pw", d2) {
		t.Fatalf("both digests must verify for the original plaintext")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if CheckPassword("battery staple", digest) {
		t.Fatalf("mismatching plaintext must not verify")
	}
}

func TestCheckPassword_GarbageDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("garbage digest must not verify")
	}
}
