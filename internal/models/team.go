package models

import "time"

// PlayerStatus describes one unavailable player. Importance is decided from
// season averages (or a known-star fallback) rather than sniffed out of a
// decorated string, so downstream consumers never have to parse markers.
type PlayerStatus struct {
	Name        string `json:"name"`
	IsKeyPlayer bool   `json:"is_key_player"`
	Reason      string `json:"reason"`
}

// TeamStatistics is the immutable per-team input to the decision engine.
// Instances are built once per analysis request (from the game log or the
// cache) and never mutated afterwards.
type TeamStatistics struct {
	TeamName string `json:"team_name"`

	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`

	PointsPerGame         float64 `json:"points_per_game"`
	OpponentPointsPerGame float64 `json:"opponent_points_per_game"`
	PointDifferential     float64 `json:"point_differential"`

	HomeRecord  string `json:"home_record"` // "W-L"
	AwayRecord  string `json:"away_record"` // "W-L"
	Last10Games string `json:"last_10_games"`
	Last5Games  string `json:"last_5_games"`
	Streak      string `json:"streak"` // e.g. "W3", "L5"

	// At most one of these is nonzero: both describe the most recent
	// contiguous same-result run.
	ConsecutiveWins   int `json:"consecutive_wins"`
	ConsecutiveLosses int `json:"consecutive_losses"`

	UnavailablePlayers         []PlayerStatus `json:"unavailable_players"`
	KeyPlayersUnavailable      bool           `json:"key_players_unavailable"`
	KeyPlayersUnavailableCount int            `json:"key_players_unavailable_count"`

	BackToBack bool `json:"back_to_back"`
	RestDays   int  `json:"rest_days"`
}

// NewTeamStatistics finalizes the derived fields so the two invariants
// (point differential, key-player flag) always hold by construction.
func NewTeamStatistics(s TeamStatistics) TeamStatistics {
	s.PointDifferential = s.PointsPerGame - s.OpponentPointsPerGame
	if total := s.Wins + s.Losses; total > 0 {
		s.WinPercentage = float64(s.Wins) / float64(total)
	} else {
		s.WinPercentage = 0
	}
	s.KeyPlayersUnavailableCount = 0
	for _, p := range s.UnavailablePlayers {
		if p.IsKeyPlayer {
			s.KeyPlayersUnavailableCount++
		}
	}
	s.KeyPlayersUnavailable = s.KeyPlayersUnavailableCount > 0
	if s.RestDays < 0 {
		s.RestDays = 0
	}
	return s
}

// RivalryInfo describes a historical rivalry between two teams. Intensity is
// one of "low", "medium", "high"; ImpactFactor stays close to 1.0 so the
// rivalry never dominates an analysis.
type RivalryInfo struct {
	IsRivalry    bool    `json:"is_rivalry"`
	Name         string  `json:"name,omitempty"`
	Intensity    string  `json:"intensity"`
	Description  string  `json:"description,omitempty"`
	ImpactFactor float64 `json:"impact_factor"`
}

// GameInfo is one upcoming game from the schedule feed.
type GameInfo struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Venue    string `json:"venue,omitempty"`
	EventID  string `json:"event_id,omitempty"`
}

// GameResult is one row of the game-results log in ClickHouse.
type GameResult struct {
	Team          string    `json:"team"`
	Opponent      string    `json:"opponent"`
	GameDate      time.Time `json:"game_date"`
	Home          bool      `json:"home"`
	PointsFor     float64   `json:"points_for"`
	PointsAgainst float64   `json:"points_against"`
	Won           bool      `json:"won"`
}
