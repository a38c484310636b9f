package espn

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/logging"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/resilience"
	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

const (
	defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"

	// Player pool fetch is capped so a kona_player_info call stays a
	// single page.
	playerPoolLimit = 500
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	LeagueID       int64
	SeasonYear     int
	ESPNS2         string
	SWID           string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the ESPN fantasy v3 reads API. Private leagues need
// both the espn_s2 and SWID cookies.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	leagueID       int64
	seasonYear     int
	espnS2         string
	swid           string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		leagueID:       cfg.LeagueID,
		seasonYear:     cfg.SeasonYear,
		espnS2:         strings.TrimSpace(cfg.ESPNS2),
		swid:           strings.TrimSpace(cfg.SWID),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchLeague pulls settings, teams, and rosters in one call, then
// widens the player pool with the top free agents so waiver views have
// unrostered players to rank.
func (c *Client) FetchLeague(ctx context.Context) (usecase.ExternalLeagueBundle, error) {
	if c.leagueID <= 0 {
		return usecase.ExternalLeagueBundle{}, fmt.Errorf("league id must be greater than zero")
	}

	var envelope leagueEnvelope
	if err := c.doJSON(ctx, c.leaguePath(), []string{"mTeam", "mRoster", "mSettings"}, nil, &envelope); err != nil {
		return usecase.ExternalLeagueBundle{}, fmt.Errorf("fetch league league_id=%d: %w", c.leagueID, err)
	}

	players, slots := convertRosters(envelope)
	bundle := usecase.ExternalLeagueBundle{
		Settings: convertLeagueSettings(envelope),
		Teams:    convertTeams(envelope),
		Players:  players,
		Roster:   slots,
	}

	freeAgents, err := c.fetchPlayerPool(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return usecase.ExternalLeagueBundle{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fetch player pool failed, continuing with rostered players only",
			"league_id", c.leagueID,
			"error", err,
		)
	} else {
		bundle.Players = append(bundle.Players, freeAgents...)
	}

	return bundle, nil
}

// FetchMatchupsByWeek returns the head-to-head pairings for one week.
func (c *Client) FetchMatchupsByWeek(ctx context.Context, week int) ([]usecase.ExternalMatchup, error) {
	if week < 1 {
		return nil, fmt.Errorf("week must be greater than zero")
	}

	query := map[string]string{"scoringPeriodId": fmt.Sprintf("%d", week)}
	var envelope scoreboardEnvelope
	if err := c.doJSON(ctx, c.leaguePath(), []string{"mMatchup"}, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch scoreboard week=%d: %w", week, err)
	}

	return convertScoreboard(envelope, week, championshipWeekFromSchedule(envelope)), nil
}

// ValidateAccess confirms the configured league is reachable with the
// configured cookies.
func (c *Client) ValidateAccess(ctx context.Context) error {
	var envelope leagueEnvelope
	if err := c.doJSON(ctx, c.leaguePath(), []string{"mSettings"}, nil, &envelope); err != nil {
		return fmt.Errorf("validate league access league_id=%d: %w", c.leagueID, err)
	}
	if envelope.ID != c.leagueID {
		return fmt.Errorf("provider returned league %d, expected %d", envelope.ID, c.leagueID)
	}
	return nil
}

func (c *Client) fetchPlayerPool(ctx context.Context) ([]usecase.ExternalPlayer, error) {
	filter := fmt.Sprintf(
		`{"players":{"limit":%d,"sortPercOwned":{"sortAsc":false,"sortPriority":1}}}`,
		playerPoolLimit,
	)
	headers := map[string]string{"X-Fantasy-Filter": filter}

	var envelope struct {
		Players []struct {
			Player   playerItem `json:"player"`
			OnTeamID int64      `json:"onTeamId"`
		} `json:"players"`
	}
	if err := c.doJSONWithHeaders(ctx, c.leaguePath(), []string{"kona_player_info"}, nil, headers, &envelope); err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalPlayer, 0, len(envelope.Players))
	for _, item := range envelope.Players {
		converted, ok := convertPlayer(item.Player)
		if !ok {
			continue
		}
		out = append(out, converted)
	}
	return out, nil
}

func (c *Client) leaguePath() string {
	return fmt.Sprintf("/seasons/%d/segments/0/leagues/%d", c.seasonYear, c.leagueID)
}

func (c *Client) doJSON(ctx context.Context, path string, views []string, query map[string]string, target any) error {
	return c.doJSONWithHeaders(ctx, path, views, query, nil, target)
}

func (c *Client) doJSONWithHeaders(ctx context.Context, path string, views []string, query map[string]string, headers map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: fantasy data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	for _, view := range views {
		values.Add("view", view)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	flightKey := fullURL
	for key, value := range headers {
		flightKey += "|" + key + "=" + value
	}
	out, err, _ := c.flight.Do(flightKey, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL, headers)
		if c.circuitEnabled {
			if reqErr != nil && isESPNCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, headers map[string]string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		if c.espnS2 != "" {
			req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.espnS2})
		}
		if c.swid != "" {
			req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errESPNTransient, sanitizeSensitiveText(err.Error(), c.espnS2))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errESPNTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errESPNTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// championshipWeekFromSchedule is the latest winners-bracket round in
// the season schedule.
func championshipWeekFromSchedule(envelope scoreboardEnvelope) int {
	week := 0
	for _, item := range envelope.Schedule {
		if strings.EqualFold(item.PlayoffTierType, "WINNERS_BRACKET") && item.MatchupPeriodID > week {
			week = item.MatchupPeriodID
		}
	}
	return week
}

func sanitizeSensitiveText(value, secret string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if secret != "" {
		value = strings.ReplaceAll(value, secret, "REDACTED")
	}
	return value
}

func isESPNCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errESPNTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
