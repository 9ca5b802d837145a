package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultFeedTimeout = 10 * time.Second

func main() {
	// Best effort; a missing .env just means plain environment config.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	timeout := defaultFeedTimeout
	if v := os.Getenv("FEED_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		} else {
			log.Printf("FEED_TIMEOUT virheellinen (%q), käytetään %s", v, timeout)
		}
	}

	hints := defaultHintBudget
	if v := os.Getenv("HINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			hints = n
		}
	}

	store := NewStore()
	srv := NewServer(store, NewFeedClient(timeout), hints)

	// Drop abandoned sessions in the background.
	go func() {
		for {
			time.Sleep(time.Hour)
			if n := store.Sweep(); n > 0 {
				log.Printf("siivottu %d vanhentunutta peliä", n)
			}
		}
	}()

	log.Printf("Palvelin käynnissä osoitteessa http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, srv); err != nil {
		log.Fatal(err)
	}
}
