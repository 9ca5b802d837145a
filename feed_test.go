package main

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Yle Uutiset | Pääuutiset</title>
    <link>https://yle.fi</link>
    <item>
      <title><![CDATA[Kotimaa | Kissa istui matolla koko päivän]]></title>
      <link>https://yle.fi/a/1</link>
    </item>
    <item>
      <title>Hallitus päätti uusista veroista</title>
      <link>https://yle.fi/a/2</link>
    </item>
    <item>
      <title>  </title>
      <link>https://yle.fi/a/3</link>
    </item>
  </channel>
</rss>`

func TestFetchParsesCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer ts.Close()

	fc := NewFeedClient(2 * time.Second)
	cands, err := fc.Fetch(context.Background(), Feed{ID: "test", URL: ts.URL})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates (empty title skipped), got %d: %v", len(cands), cands)
	}
	if cands[0].Title != "KISSA ISTUI MATOLLA KOKO PÄIVÄN" {
		t.Errorf("kicker not stripped / not upper-cased: %q", cands[0].Title)
	}
	if cands[0].Link != "https://yle.fi/a/1" {
		t.Errorf("link = %q", cands[0].Link)
	}
	if cands[1].Title != "HALLITUS PÄÄTTI UUSISTA VEROISTA" {
		t.Errorf("plain title mangled: %q", cands[1].Title)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer ts.Close()

	fc := NewFeedClient(2 * time.Second)
	if _, err := fc.Fetch(context.Background(), Feed{ID: "test", URL: ts.URL}); err == nil {
		t.Fatal("expected an error on a 500 response")
	}
}

func TestFetchUnreachable(t *testing.T) {
	fc := NewFeedClient(200 * time.Millisecond)
	if _, err := fc.Fetch(context.Background(), Feed{ID: "test", URL: "http://127.0.0.1:1/rss"}); err == nil {
		t.Fatal("expected an error for an unreachable feed")
	}
}

func TestLookupFeed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if f := lookupFeed("urheilu", rng); f.ID != "urheilu" {
		t.Errorf("lookup by ID = %q", f.ID)
	}
	// Empty and unknown IDs draw a random category from the table.
	for _, id := range []string{"", "eiole"} {
		f := lookupFeed(id, rng)
		found := false
		for _, known := range feeds {
			if known.ID == f.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("lookupFeed(%q) returned unknown feed %q", id, f.ID)
		}
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Kotimaa | Otsikko tässä", "OTSIKKO TÄSSÄ"},
		{"Pelkkä otsikko", "PELKKÄ OTSIKKO"},
		{"A | B | C", "C"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := cleanTitle(tt.in); got != tt.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
