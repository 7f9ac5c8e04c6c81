package token

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Get(); ok {
		t.Fatal("empty store reported a token")
	}

	s.Set("T1", time.Hour)
	got, ok := s.Get()
	if !ok || got != "T1" {
		t.Fatalf("Get() = %q, %v, want T1, true", got, ok)
	}

	s.Remove()
	if _, ok := s.Get(); ok {
		t.Fatal("token survived Remove")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	s.Set("T1", -time.Second)
	if _, ok := s.Get(); ok {
		t.Fatal("expired token still readable")
	}
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore()
	s.Set("T1", 0)
	if _, ok := s.Get(); !ok {
		t.Fatal("token with zero ttl should persist")
	}
}

func TestMemoryStoreRemoveIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	s.Remove()
	s.Remove()
	if _, ok := s.Get(); ok {
		t.Fatal("empty store reported a token after Remove")
	}
}

func TestContextCarriesStore(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("bare context should carry no store")
	}

	s := NewMemoryStore()
	ctx := NewContext(context.Background(), s)
	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("store not found on context")
	}
	if got != Store(s) {
		t.Fatal("context returned a different store")
	}
}
