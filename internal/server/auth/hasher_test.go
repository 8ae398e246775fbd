package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

func newTestHasher(t *testing.T) *PasswordHasher {
	t.Helper()
	// Low-cost parameters to keep the suite fast.
	return NewPasswordHasher(1, 16*1024, 1)
}

func TestHashVerify_RoundTrip(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	encoded, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("s3cret-password", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify against its own hash")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	encoded, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("other-password", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for a different password")
	}
}

func TestHash_SaltRandomness(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}

	for _, encoded := range []string{a, b} {
		ok, err := h.Verify("same-password", encoded)
		if err != nil {
			t.Fatalf("Verify error: %v", err)
		}
		if !ok {
			t.Fatalf("both hashes must still verify the password")
		}
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	_, err := h.Hash("")
	if !errors.Is(err, common.ErrEmptyPassword) {
		t.Fatalf("want ErrEmptyPassword, got %v", err)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plain string", "not-a-hash"},
		{"foreign format", "$2a$10$abcdefghijklmnopqrstuv"},
		{"bad version", "$argon2id$vX$m=16384,t=1,p=1$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$nonsense$c2FsdA$aGFzaA"},
		{"zero iterations", "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA"},
		{"zero parallelism", "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA"},
		{"bad salt b64", "$argon2id$v=19$m=16384,t=1,p=1$!!!$aGFzaA"},
		{"bad hash b64", "$argon2id$v=19$m=16384,t=1,p=1$c2FsdA$!!!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Verify("whatever", tc.encoded)
			if !errors.Is(err, common.ErrMalformedHash) {
				t.Fatalf("want ErrMalformedHash, got %v", err)
			}
		})
	}
}

func TestNewPasswordHasher_ZeroCostsRaisedToMinimum(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher(0, 16*1024, 0)

	encoded, err := h.Hash("p")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	ok, err := h.Verify("p", encoded)
	if err != nil || !ok {
		t.Fatalf("hash from zero-cost constructor must verify: ok=%v err=%v", ok, err)
	}
}

func TestHash_EncodingShape(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	encoded, err := h.Hash("p")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=") {
		t.Fatalf("unexpected encoding prefix: %q", encoded)
	}
	if got := len(strings.Split(encoded, "$")); got != 6 {
		t.Fatalf("expected 6 segments, got %d (%q)", got, encoded)
	}
}
