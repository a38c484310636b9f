package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gridironlabs/fantasy-dashboard/internal/platform/resilience"
)

func TestClientFetchLeague_SendsCookiesAndViews(t *testing.T) {
	t.Parallel()

	var sawLeagueCall, sawPoolCall bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2025/segments/0/leagues/111222" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if cookie, err := r.Cookie("espn_s2"); err != nil || cookie.Value != "secret-session" {
			t.Errorf("missing espn_s2 cookie")
		}
		if cookie, err := r.Cookie("SWID"); err != nil || cookie.Value != "{SWID-1}" {
			t.Errorf("missing SWID cookie")
		}

		views := r.URL.Query()["view"]
		switch {
		case len(views) == 1 && views[0] == "kona_player_info":
			sawPoolCall = true
			if r.Header.Get("X-Fantasy-Filter") == "" {
				t.Errorf("expected player pool filter header")
			}
			_, _ = w.Write([]byte(`{"players":[
				{"player":{"id":9001,"fullName":"Pool Runner","defaultPositionId":2,"proTeamId":9,"active":true}}
			]}`))
		default:
			sawLeagueCall = true
			_, _ = w.Write([]byte(`{
				"id":111222,
				"seasonId":2025,
				"scoringPeriodId":6,
				"status":{"currentMatchupPeriod":6,"isActive":true},
				"settings":{
					"name":"Backyard League",
					"size":2,
					"scheduleSettings":{"playoffTeamCount":2,"matchupPeriodCount":14},
					"scoringSettings":{"scoringItems":[{"statId":53,"points":0.5}]}
				},
				"members":[{"id":"{OWNER-1}","displayName":"casey"}],
				"teams":[
					{"id":1,"name":"Casey Crushers","owners":["{OWNER-1}"],
					 "record":{"overall":{"wins":4,"losses":2,"ties":0,"pointsFor":640.5,"pointsAgainst":600.1}},
					 "roster":{"entries":[
						{"lineupSlotId":0,"playerPoolEntry":{"player":{"id":8001,"fullName":"Franchise QB","defaultPositionId":1,"proTeamId":12,"active":true}}},
						{"lineupSlotId":20,"playerPoolEntry":{"player":{"id":8002,"fullName":"Bench Wideout","defaultPositionId":3,"proTeamId":21,"active":true}}}
					 ]}},
					{"id":2,"name":"Second Squad","owners":["{GHOST}"],
					 "record":{"overall":{"wins":2,"losses":4,"ties":0,"pointsFor":580.0,"pointsAgainst":612.4}},
					 "roster":{"entries":[]}}
				]
			}`))
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		LeagueID:   111222,
		SeasonYear: 2025,
		ESPNS2:     "secret-session",
		SWID:       "{SWID-1}",
		Timeout:    2 * time.Second,
	})

	bundle, err := client.FetchLeague(context.Background())
	if err != nil {
		t.Fatalf("fetch league: %v", err)
	}
	if !sawLeagueCall || !sawPoolCall {
		t.Fatalf("expected league and player pool calls, got league=%v pool=%v", sawLeagueCall, sawPoolCall)
	}

	if bundle.Settings.Name != "Backyard League" {
		t.Fatalf("unexpected league name %q", bundle.Settings.Name)
	}
	if bundle.Settings.ScoringType != "Half-PPR" {
		t.Fatalf("expected Half-PPR, got=%s", bundle.Settings.ScoringType)
	}
	if bundle.Settings.CurrentWeek != 6 {
		t.Fatalf("expected current week 6, got=%d", bundle.Settings.CurrentWeek)
	}
	if len(bundle.Teams) != 2 {
		t.Fatalf("expected two teams, got=%d", len(bundle.Teams))
	}
	if bundle.Teams[1].OwnerName != unknownOwnerName {
		t.Fatalf("expected fallback owner, got=%s", bundle.Teams[1].OwnerName)
	}
	// Two rostered players plus one free agent from the pool fetch.
	if len(bundle.Players) != 3 {
		t.Fatalf("expected three players, got=%d", len(bundle.Players))
	}
	if len(bundle.Roster) != 2 {
		t.Fatalf("expected two roster slots, got=%d", len(bundle.Roster))
	}
	if bundle.Roster[1].IsStarting {
		t.Fatalf("expected bench slot to sit")
	}
}

func TestClientFetchLeague_SurvivesPlayerPoolFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views := r.URL.Query()["view"]
		if len(views) == 1 && views[0] == "kona_player_info" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"id":5,"seasonId":2025,"settings":{"name":"Solo","size":1},"teams":[{"id":1,"name":"Only Team"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		LeagueID:   5,
		SeasonYear: 2025,
		Timeout:    2 * time.Second,
	})

	bundle, err := client.FetchLeague(context.Background())
	if err != nil {
		t.Fatalf("expected pool failure to be tolerated, got: %v", err)
	}
	if len(bundle.Teams) != 1 {
		t.Fatalf("expected one team, got=%d", len(bundle.Teams))
	}
}

func TestClientRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"schedule":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		LeagueID:   7,
		SeasonYear: 2025,
		MaxRetries: 2,
		Timeout:    2 * time.Second,
	})

	if _, err := client.FetchMatchupsByWeek(context.Background(), 1); err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected two attempts, got=%d", calls.Load())
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		LeagueID:   7,
		SeasonYear: 2025,
		MaxRetries: 3,
		Timeout:    2 * time.Second,
	})

	if err := client.ValidateAccess(context.Background()); err == nil {
		t.Fatalf("expected unauthorized error")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got=%d", calls.Load())
	}
}

func TestClientCircuitBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		LeagueID:   7,
		SeasonYear: 2025,
		Timeout:    2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchMatchupsByWeek(ctx, 1); err == nil {
			t.Fatalf("expected provider failure")
		}
	}

	if state := client.breaker.State(); state != resilience.CircuitStateOpen {
		t.Fatalf("expected open circuit, got=%s", state)
	}
}
