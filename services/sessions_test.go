package services

import (
	"testing"
	"time"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(time.Hour)
	catalog := testCatalog(t)

	id, selection := store.Create(catalog)
	if id == "" {
		t.Fatal("Create() returned empty session id")
	}
	if selection == nil {
		t.Fatal("Create() returned nil selection")
	}

	got, ok := store.Get(id)
	if !ok {
		t.Fatal("Get() did not find freshly created session")
	}
	if got != selection {
		t.Error("Get() returned a different selection instance")
	}
}

func TestSessionStore_UnknownID(t *testing.T) {
	store := NewSessionStore(time.Hour)
	if _, ok := store.Get("nope"); ok {
		t.Error("Get(unknown) reported a session")
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	catalog := testCatalog(t)

	current := time.Now()
	store.now = func() time.Time { return current }

	id, _ := store.Create(catalog)

	// Still alive just inside the TTL.
	current = current.Add(59 * time.Second)
	if _, ok := store.Get(id); !ok {
		t.Fatal("session expired before its TTL")
	}

	// Get refreshed the idle timer; push past it now.
	current = current.Add(2 * time.Minute)
	if _, ok := store.Get(id); ok {
		t.Error("session survived past its TTL")
	}
}

func TestSessionStore_CreatePrunesExpired(t *testing.T) {
	store := NewSessionStore(time.Minute)
	catalog := testCatalog(t)

	current := time.Now()
	store.now = func() time.Time { return current }

	store.Create(catalog)
	store.Create(catalog)
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	current = current.Add(2 * time.Minute)
	store.Create(catalog)

	if store.Len() != 1 {
		t.Errorf("Len() = %d after pruning create, want 1", store.Len())
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(time.Hour)
	id, _ := store.Create(testCatalog(t))

	store.Delete(id)
	if _, ok := store.Get(id); ok {
		t.Error("session still present after Delete")
	}
}

func TestSessionStore_ZeroTTLFallsBack(t *testing.T) {
	store := NewSessionStore(0)
	if store.ttl != DefaultSessionTTL {
		t.Errorf("ttl = %v, want DefaultSessionTTL", store.ttl)
	}
}
