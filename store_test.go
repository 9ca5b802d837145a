package main

import (
	"math/rand"
	"sync"
	"testing"
	"time"
)

func newStoredSession(t *testing.T, s *Store) *Session {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	return s.SaveSession(NewSession(Candidate{Title: "KISSA ISTUU MATOLLA"}, 3, 3, rng))
}

func TestStoreSaveAndGet(t *testing.T) {
	store := NewStore()
	sess := newStoredSession(t, store)

	if sess.ID == "" {
		t.Fatal("SaveSession must assign an ID")
	}
	if got := store.GetSession(sess.ID); got != sess {
		t.Fatal("GetSession returned a different session")
	}
	if store.GetSession("nonexistent") != nil {
		t.Fatal("unknown ID must return nil")
	}
}

func TestStoreIDsUnique(t *testing.T) {
	store := NewStore()
	seen := map[string]bool{}
	for range 100 {
		sess := newStoredSession(t, store)
		if seen[sess.ID] {
			t.Fatalf("duplicate session ID %s", sess.ID)
		}
		seen[sess.ID] = true
	}
}

func TestStoreSweep(t *testing.T) {
	store := NewStore()
	old := newStoredSession(t, store)
	old.CreatedAt = time.Now().Add(-2 * sessionTTL)
	fresh := newStoredSession(t, store)

	if n := store.Sweep(); n != 1 {
		t.Fatalf("swept %d sessions, want 1", n)
	}
	if store.GetSession(old.ID) != nil {
		t.Fatal("expired session survived the sweep")
	}
	if store.GetSession(fresh.ID) == nil {
		t.Fatal("fresh session was swept")
	}
}

func TestStoreConcurrent(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			sess := store.SaveSession(NewSession(Candidate{Title: "KISSA ISTUU"}, 2, 3, rng))
			if store.GetSession(sess.ID) == nil {
				t.Error("saved session not found")
			}
			store.Sweep()
		}(int64(i))
	}
	wg.Wait()
}
