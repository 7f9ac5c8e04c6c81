package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// buildJWT assembles an HS256-shaped token with the given claims and a dummy
// signature. Claim peeking never verifies, so the signature content is moot.
func buildJWT(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	enc := func(v interface{}) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal segment: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + "." + base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := buildJWT(t, map[string]interface{}{"exp": exp.Unix()})

	got, ok := ExpiresAt(raw)
	if !ok {
		t.Fatal("exp claim not found")
	}
	if !got.Equal(exp) {
		t.Fatalf("ExpiresAt = %v, want %v", got, exp)
	}
}

func TestExpiresAtWithoutClaim(t *testing.T) {
	raw := buildJWT(t, map[string]interface{}{"sub": "u1"})
	if _, ok := ExpiresAt(raw); ok {
		t.Fatal("reported an exp claim that is not there")
	}
}

func TestExpiresAtMalformedToken(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b", "%%%.%%%.%%%"} {
		if _, ok := ExpiresAt(raw); ok {
			t.Fatalf("ExpiresAt(%q) reported ok", raw)
		}
	}
}

func TestExpired(t *testing.T) {
	past := buildJWT(t, map[string]interface{}{"exp": time.Now().Add(-time.Hour).Unix()})
	future := buildJWT(t, map[string]interface{}{"exp": time.Now().Add(time.Hour).Unix()})

	if !Expired(past) {
		t.Fatal("token with past exp not reported expired")
	}
	if Expired(future) {
		t.Fatal("token with future exp reported expired")
	}
	// Opaque tokens carry no readable exp; they are left for the upstream to judge.
	if Expired("T1") {
		t.Fatal("opaque token reported expired")
	}
}
