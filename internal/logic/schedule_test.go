package logic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

const feedPayload = `{
	"events": [
		{
			"idEvent": "1001",
			"strHomeTeam": "Boston Celtics",
			"strAwayTeam": "Miami Heat",
			"dateEvent": "2026-03-16",
			"strTime": "19:30:00",
			"strVenue": "TD Garden"
		},
		{
			"idEvent": "1002",
			"strHomeTeam": "",
			"strAwayTeam": "Utah Jazz",
			"dateEvent": "2026-03-16",
			"strTime": "21:00:00",
			"strVenue": ""
		}
	]
}`

func TestUpcomingGamesFetchesAndCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(feedPayload))
	}))
	defer srv.Close()

	redis := NewMockRedis()
	svc := NewScheduleService(srv.URL, redis, zap.NewNop())

	games, err := svc.UpcomingGames(context.Background())
	if err != nil {
		t.Fatalf("UpcomingGames error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("games = %d, want 1 (incomplete events skipped)", len(games))
	}
	if games[0].HomeTeam != "Boston Celtics" || games[0].AwayTeam != "Miami Heat" {
		t.Errorf("game = %+v, want Celtics vs Heat", games[0])
	}
	if games[0].EventID != "1001" || games[0].Venue != "TD Garden" {
		t.Errorf("game metadata = %+v", games[0])
	}

	// Second call must come from the cache.
	if _, err := svc.UpcomingGames(context.Background()); err != nil {
		t.Fatalf("cached UpcomingGames error: %v", err)
	}
	if hits != 1 {
		t.Errorf("feed hits = %d, want 1", hits)
	}
}

func TestUpcomingGamesServesStaleCopyOnOutage(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(feedPayload))
	}))
	defer srv.Close()

	redis := NewMockRedis()
	svc := NewScheduleService(srv.URL, redis, zap.NewNop())

	if _, err := svc.UpcomingGames(context.Background()); err != nil {
		t.Fatalf("UpcomingGames error: %v", err)
	}

	// Fresh copy expires, then the feed goes down. The long-lived copy must
	// still serve a slate.
	delete(redis.Store, scheduleCacheKey)
	healthy = false

	games, err := svc.UpcomingGames(context.Background())
	if err != nil {
		t.Fatalf("UpcomingGames during outage error: %v", err)
	}
	if len(games) != 1 || games[0].HomeTeam != "Boston Celtics" {
		t.Errorf("stale games = %+v, want the previously fetched slate", games)
	}
}

func TestUpcomingGamesFeedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewScheduleService(srv.URL, NewMockRedis(), zap.NewNop())
	if _, err := svc.UpcomingGames(context.Background()); err == nil {
		t.Fatal("expected error when feed is down and cache is empty")
	}
}
