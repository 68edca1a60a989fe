package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hoopsight/risk-api/internal/models"
)

const (
	scheduleCacheKey = "upcoming_games"
	scheduleCacheTTL = 24 * time.Hour

	// A second copy outlives the fresh TTL so a feed outage after expiry can
	// still serve a slate instead of an error.
	scheduleStaleKey = "upcoming_games:stale"
	scheduleStaleTTL = 7 * 24 * time.Hour
)

// scheduleEvent mirrors the feed's event shape; only the fields the service
// reads are declared.
type scheduleEvent struct {
	EventID  string `json:"idEvent"`
	HomeTeam string `json:"strHomeTeam"`
	AwayTeam string `json:"strAwayTeam"`
	Date     string `json:"dateEvent"`
	Time     string `json:"strTime"`
	Venue    string `json:"strVenue"`
}

type scheduleFeed struct {
	Events []scheduleEvent `json:"events"`
}

type scheduleService struct {
	feedURL    string
	httpClient *http.Client
	redis      RedisClient
	logger     *zap.SugaredLogger
}

func NewScheduleService(feedURL string, redis RedisClient, logger *zap.Logger) ScheduleService {
	return &scheduleService{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		redis:      redis,
		logger:     logger.Sugar(),
	}
}

// UpcomingGames serves the cached schedule when fresh and refetches it from
// the feed otherwise. A feed outage falls back to whatever cached copy still
// exists rather than returning an error with an empty slate.
func (s *scheduleService) UpcomingGames(ctx context.Context) ([]models.GameInfo, error) {
	if cached, err := s.redis.Get(ctx, scheduleCacheKey).Result(); err == nil {
		var games []models.GameInfo
		if err := json.Unmarshal([]byte(cached), &games); err == nil {
			return games, nil
		}
	}

	games, err := s.fetchFeed(ctx)
	if err != nil {
		s.logger.Warnw("schedule feed fetch failed", "error", err)
		if stale, staleErr := s.redis.Get(ctx, scheduleStaleKey).Result(); staleErr == nil {
			var cached []models.GameInfo
			if unmarshalErr := json.Unmarshal([]byte(stale), &cached); unmarshalErr == nil {
				s.logger.Infow("serving stale schedule after feed failure", "games", len(cached))
				return cached, nil
			}
		}
		return nil, err
	}

	if payload, err := json.Marshal(games); err == nil {
		if err := s.redis.Set(ctx, scheduleCacheKey, payload, scheduleCacheTTL).Err(); err != nil {
			s.logger.Warnw("failed to cache schedule", "error", err)
		}
		if err := s.redis.Set(ctx, scheduleStaleKey, payload, scheduleStaleTTL).Err(); err != nil {
			s.logger.Warnw("failed to cache stale schedule copy", "error", err)
		}
	}
	return games, nil
}

func (s *scheduleService) fetchFeed(ctx context.Context) ([]models.GameInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating schedule request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule feed returned status %d", resp.StatusCode)
	}

	var feed scheduleFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding schedule feed: %w", err)
	}

	games := make([]models.GameInfo, 0, len(feed.Events))
	for _, ev := range feed.Events {
		if ev.HomeTeam == "" || ev.AwayTeam == "" {
			continue
		}
		games = append(games, models.GameInfo{
			HomeTeam: ev.HomeTeam,
			AwayTeam: ev.AwayTeam,
			Date:     ev.Date,
			Time:     ev.Time,
			Venue:    ev.Venue,
			EventID:  ev.EventID,
		})
	}
	return games, nil
}
