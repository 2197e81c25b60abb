package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !Verify("correct horse battery staple", digest) {
		t.Fatalf("Verify must succeed for the original plaintext")
	}
	if Verify("correct horse battery stapl", digest) {
		t.Fatalf("Verify must fail for a different plaintext")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	d1, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two digests of the same plaintext must differ (random salt)")
	}
	if !Verify("same-secret", d1) || !Verify("same-secret", d2) {
		t.Fatalf("both digests must verify against the original plaintext")
	}
}

func TestHash_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	digest, err := Hash("visible-secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if strings.Contains(digest, "visible-secret") {
		t.Fatalf("digest must not embed the plaintext: %q", digest)
	}
}

func TestVerify_MalformedDigestFailsClosed(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$garbage"} {
		if Verify("anything", digest) {
			t.Fatalf("Verify must return false for malformed digest %q", digest)
		}
	}
}
