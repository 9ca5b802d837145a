package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

// Feed is one selectable news category.
type Feed struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"-"`
}

// feeds is the built-in category table. Order matters: it is what the
// UI selector shows and what the random pick draws from.
var feeds = []Feed{
	{ID: "paauutiset", Name: "Pääuutiset", URL: "https://feeds.yle.fi/uutiset/v1/majorHeadlines/YLE_UUTISET.rss"},
	{ID: "tuoreimmat", Name: "Tuoreimmat", URL: "https://feeds.yle.fi/uutiset/v1/recent.rss?publisherIds=YLE_UUTISET"},
	{ID: "kotimaa", Name: "Kotimaa", URL: "https://feeds.yle.fi/uutiset/v1/recent.rss?publisherIds=YLE_UUTISET&concepts=18-34837"},
	{ID: "ulkomaat", Name: "Ulkomaat", URL: "https://feeds.yle.fi/uutiset/v1/recent.rss?publisherIds=YLE_UUTISET&concepts=18-34953"},
	{ID: "urheilu", Name: "Urheilu", URL: "https://feeds.yle.fi/urheilu/v1/recent.rss?publisherIds=YLE_URHEILU"},
}

// FeedClient retrieves and parses headline candidates from RSS feeds.
type FeedClient struct {
	http   *resty.Client
	parser *gofeed.Parser
}

// NewFeedClient creates a feed client with the given request timeout.
func NewFeedClient(timeout time.Duration) *FeedClient {
	return &FeedClient{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "uutisrulla/1.0"),
		parser: gofeed.NewParser(),
	}
}

// lookupFeed resolves a category ID, drawing a random category for an
// empty or unknown ID.
func lookupFeed(id string, rng *rand.Rand) Feed {
	for _, f := range feeds {
		if f.ID == id {
			return f
		}
	}
	return feeds[rng.Intn(len(feeds))]
}

// Fetch retrieves one feed and returns its headline candidates. Any
// retrieval or parse failure comes back as an error; callers recover by
// treating it as an empty candidate collection.
func (fc *FeedClient) Fetch(ctx context.Context, feed Feed) ([]Candidate, error) {
	resp, err := fc.http.R().SetContext(ctx).Get(feed.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feed.ID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch feed %s: status %d", feed.ID, resp.StatusCode())
	}

	parsed, err := fc.parser.ParseString(resp.String())
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feed.ID, err)
	}

	var cands []Candidate
	for _, item := range parsed.Items {
		title := cleanTitle(item.Title)
		if title == "" {
			continue
		}
		cands = append(cands, Candidate{Title: title, Link: item.Link})
	}
	return cands, nil
}

// cleanTitle upper-cases an item title and keeps the headline part of a
// "kicker | headline" pair.
func cleanTitle(title string) string {
	if idx := strings.LastIndex(title, "|"); idx != -1 {
		title = title[idx+1:]
	}
	return strings.ToUpper(strings.TrimSpace(title))
}
