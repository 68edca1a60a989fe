package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/hoopsight/risk-api/internal/models"
)

const (
	statsCacheTTL      = 24 * time.Hour
	seasonLookbackDays = 365
)

type teamDataService struct {
	ch     driver.Conn
	pg     PgPool
	redis  RedisClient
	logger *zap.SugaredLogger
}

func NewTeamDataService(ch driver.Conn, pg PgPool, redis RedisClient, logger *zap.Logger) TeamDataService {
	return &teamDataService{ch: ch, pg: pg, redis: redis, logger: logger.Sugar()}
}

func statsCacheKey(team string) string {
	return "team_stats:" + team
}

// GetTeamStatistics returns the cached snapshot when fresh, otherwise
// rebuilds it from the game log and roster tables.
func (s *teamDataService) GetTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error) {
	if cached, err := s.redis.Get(ctx, statsCacheKey(team)).Result(); err == nil {
		var stats models.TeamStatistics
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		s.logger.Warnw("discarding corrupt cache entry", "team", team)
	}
	return s.RefreshTeamStatistics(ctx, team)
}

// RefreshTeamStatistics rebuilds the snapshot unconditionally and rewrites
// the cache entry.
func (s *teamDataService) RefreshTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error) {
	stats, err := s.buildTeamStatistics(ctx, team)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.redis.Set(ctx, statsCacheKey(team), payload, statsCacheTTL).Err(); err != nil {
			s.logger.Warnw("failed to cache team statistics", "team", team, "error", err)
		}
	}
	return stats, nil
}

func (s *teamDataService) buildTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error) {
	stats := models.TeamStatistics{TeamName: team}

	// Season aggregates in one pass over the game log.
	seasonQuery := `
		SELECT
			countIf(won) as wins,
			countIf(NOT won) as losses,
			avg(points_for) as ppg,
			avg(points_against) as oppg,
			countIf(won AND home) as home_wins,
			countIf(NOT won AND home) as home_losses,
			countIf(won AND NOT home) as away_wins,
			countIf(NOT won AND NOT home) as away_losses
		FROM nba_stats.game_results
		WHERE team = ? AND game_date >= now() - INTERVAL ? DAY
	`
	var wins, losses, homeWins, homeLosses, awayWins, awayLosses uint64
	err := s.ch.QueryRow(ctx, seasonQuery, team, seasonLookbackDays).Scan(
		&wins, &losses, &stats.PointsPerGame, &stats.OpponentPointsPerGame,
		&homeWins, &homeLosses, &awayWins, &awayLosses,
	)
	if err != nil {
		return nil, fmt.Errorf("season aggregate query failed: %w", err)
	}
	if wins+losses == 0 {
		return nil, fmt.Errorf("no game log for team %q", team)
	}
	stats.Wins = int(wins)
	stats.Losses = int(losses)
	stats.HomeRecord = fmt.Sprintf("%d-%d", homeWins, homeLosses)
	stats.AwayRecord = fmt.Sprintf("%d-%d", awayWins, awayLosses)

	// Recent games, newest first, for form and schedule context.
	recentQuery := `
		SELECT won, game_date
		FROM nba_stats.game_results
		WHERE team = ? AND game_date >= now() - INTERVAL ? DAY
		ORDER BY game_date DESC
		LIMIT 10
	`
	rows, err := s.ch.Query(ctx, recentQuery, team, seasonLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("recent games query failed: %w", err)
	}
	defer rows.Close()

	var recent []models.GameResult
	for rows.Next() {
		var g models.GameResult
		if err := rows.Scan(&g.Won, &g.GameDate); err != nil {
			return nil, fmt.Errorf("recent games scan failed: %w", err)
		}
		recent = append(recent, g)
	}
	applyRecentForm(&stats, recent, time.Now())

	players, err := s.GetUnavailablePlayers(ctx, team)
	if err != nil {
		// Roster data is an enrichment; an outage should degrade the
		// snapshot, not fail the whole analysis.
		s.logger.Warnw("unavailable players lookup failed", "team", team, "error", err)
		players = nil
	}
	stats.UnavailablePlayers = players

	finalized := models.NewTeamStatistics(stats)
	return &finalized, nil
}

// applyRecentForm fills the streak, recent-record and schedule fields from
// the newest-first game list.
func applyRecentForm(stats *models.TeamStatistics, recent []models.GameResult, now time.Time) {
	if len(recent) == 0 {
		stats.Last10Games = "0-0"
		stats.Last5Games = "0-0"
		return
	}

	var w10, l10, w5, l5 int
	for i, g := range recent {
		if g.Won {
			w10++
			if i < 5 {
				w5++
			}
		} else {
			l10++
			if i < 5 {
				l5++
			}
		}
	}
	stats.Last10Games = fmt.Sprintf("%d-%d", w10, l10)
	stats.Last5Games = fmt.Sprintf("%d-%d", w5, l5)

	streak := 1
	for i := 1; i < len(recent) && recent[i].Won == recent[0].Won; i++ {
		streak++
	}
	if recent[0].Won {
		stats.ConsecutiveWins = streak
		stats.Streak = fmt.Sprintf("W%d", streak)
	} else {
		stats.ConsecutiveLosses = streak
		stats.Streak = fmt.Sprintf("L%d", streak)
	}

	rest := int(now.Sub(recent[0].GameDate).Hours()/24) - 1
	if rest < 0 {
		rest = 0
	}
	stats.RestDays = rest
	stats.BackToBack = rest == 0
}

// GetUnavailablePlayers lists active injuries for the team and grades each
// player's importance from season averages, with the star-player table as
// fallback for players without recent numbers.
func (s *teamDataService) GetUnavailablePlayers(ctx context.Context, team string) ([]models.PlayerStatus, error) {
	query := `
		SELECT i.player_name,
		       i.reason,
		       s.points, s.rebounds, s.assists, s.minutes,
		       sp.description
		FROM player_injuries i
		LEFT JOIN player_season_stats s
		       ON s.player_name = i.player_name AND s.team = i.team
		LEFT JOIN star_players sp
		       ON sp.player_name = i.player_name AND sp.team = i.team
		WHERE i.team = $1 AND i.active
		ORDER BY i.player_name
	`
	rows, err := s.pg.Query(ctx, query, team)
	if err != nil {
		return nil, fmt.Errorf("injuries query failed: %w", err)
	}
	defer rows.Close()

	players := []models.PlayerStatus{}
	for rows.Next() {
		var (
			name, injuryReason          string
			points, rebounds            *float64
			assists, minutes            *float64
			starDescription             *string
		)
		if err := rows.Scan(&name, &injuryReason, &points, &rebounds, &assists, &minutes, &starDescription); err != nil {
			return nil, fmt.Errorf("injuries scan failed: %w", err)
		}
		status := classifyPlayer(name, deref(points), deref(rebounds), deref(assists), deref(minutes), points != nil, starDescription)
		if status.Reason == "" {
			status.Reason = injuryReason
		}
		players = append(players, status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("injuries rows failed: %w", err)
	}
	return players, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// classifyPlayer decides importance from season averages. A player with no
// stats row falls back to the star-player table; unknown players without
// numbers are role players.
func classifyPlayer(name string, points, rebounds, assists, minutes float64, hasStats bool, starDescription *string) models.PlayerStatus {
	status := models.PlayerStatus{Name: name}

	if !hasStats {
		if starDescription != nil && *starDescription != "" {
			status.IsKeyPlayer = true
			status.Reason = *starDescription
		} else {
			status.Reason = "Role player - not in recent games"
		}
		return status
	}

	switch {
	case points >= 15 || rebounds >= 8 || assists >= 6:
		status.IsKeyPlayer = true
		status.Reason = fmt.Sprintf("Avg: %.1fpts, %.1freb, %.1fast", points, rebounds, assists)
	case minutes >= 25:
		status.IsKeyPlayer = true
		status.Reason = fmt.Sprintf("Starter - %.1f min/game", minutes)
	case points >= 10 && minutes >= 20:
		status.IsKeyPlayer = true
		status.Reason = fmt.Sprintf("Impact player - %.1fpts, %.1fmin", points, minutes)
	default:
		status.Reason = "Role player"
	}
	return status
}
