// Package engine implements the betting decision core: a forward-chaining
// rule evaluator over declared team facts, a fixed discrete Bayesian risk
// network, and the policy that merges both verdicts into one analysis.
//
// Every Analyze call builds its own working memory and accumulator, so the
// package-level rule catalog and network tables are the only shared state
// and both are immutable after construction. Concurrent callers need no
// locking.
package engine

import (
	"strconv"
	"strings"

	"github.com/hoopsight/risk-api/internal/models"
)

// PerformanceFacts carries the numeric and record-string performance fields
// the rule predicates test. The same shape is used for the subject team and
// the opponent.
type PerformanceFacts struct {
	WinPercentage         float64
	ConsecutiveWins       int
	ConsecutiveLosses     int
	PointsPerGame         float64
	OpponentPointsPerGame float64
	Last10Record          string
	Last5Record           string
	HomeRecord            string
	AwayRecord            string
}

// AvailabilityFacts carries roster availability for one team.
type AvailabilityFacts struct {
	KeyPlayersUnavailable bool
	UnavailableCount      int
	KeyPlayersCount       int
}

// ContextFacts carries schedule context for the subject team.
type ContextFacts struct {
	BackToBack        bool
	PointDifferential float64
	RestDays          int
}

// MatchupFacts are the subject-vs-opponent differentials. Only present when
// opponent statistics were supplied.
type MatchupFacts struct {
	OffensiveAdvantage float64 // subject PPG - opponent PPG
	DefensiveAdvantage float64 // opponent OPPG - subject OPPG
	WinPercentageDiff  float64 // subject win% - opponent win%
}

// RivalryFacts flag a historical rivalry matchup.
type RivalryFacts struct {
	IsRivalry    bool
	Intensity    string
	ImpactFactor float64
}

// Facts is the working memory for one evaluation pass. Facts are declared
// once before matching begins; nothing is retracted or re-asserted mid-run.
type Facts struct {
	Performance  PerformanceFacts
	Availability AvailabilityFacts
	Venue        string
	Context      ContextFacts

	// Comparative facts; nil when no opponent data was supplied, which
	// simply keeps the opponent rule family from matching.
	Opponent             *PerformanceFacts
	OpponentAvailability *AvailabilityFacts
	Matchup              *MatchupFacts
	Rivalry              *RivalryFacts
}

// DeclareFacts maps immutable team statistics into the working memory
// consumed by the rule catalog. Pure: no I/O, no retained references.
func DeclareFacts(subject models.TeamStatistics, opponent *models.TeamStatistics, venue string, rivalry *models.RivalryInfo) Facts {
	f := Facts{
		Performance:  performanceFrom(subject),
		Availability: availabilityFrom(subject),
		Venue:        venue,
		Context: ContextFacts{
			BackToBack:        subject.BackToBack,
			PointDifferential: subject.PointsPerGame - subject.OpponentPointsPerGame,
			RestDays:          subject.RestDays,
		},
	}

	if opponent != nil {
		op := performanceFrom(*opponent)
		oa := availabilityFrom(*opponent)
		f.Opponent = &op
		f.OpponentAvailability = &oa
		f.Matchup = &MatchupFacts{
			OffensiveAdvantage: subject.PointsPerGame - opponent.PointsPerGame,
			DefensiveAdvantage: opponent.OpponentPointsPerGame - subject.OpponentPointsPerGame,
			WinPercentageDiff:  subject.WinPercentage - opponent.WinPercentage,
		}
	}

	if rivalry != nil && rivalry.IsRivalry {
		f.Rivalry = &RivalryFacts{
			IsRivalry:    true,
			Intensity:    rivalry.Intensity,
			ImpactFactor: rivalry.ImpactFactor,
		}
	}

	return f
}

func performanceFrom(s models.TeamStatistics) PerformanceFacts {
	return PerformanceFacts{
		WinPercentage:         s.WinPercentage,
		ConsecutiveWins:       s.ConsecutiveWins,
		ConsecutiveLosses:     s.ConsecutiveLosses,
		PointsPerGame:         s.PointsPerGame,
		OpponentPointsPerGame: s.OpponentPointsPerGame,
		Last10Record:          s.Last10Games,
		Last5Record:           s.Last5Games,
		HomeRecord:            s.HomeRecord,
		AwayRecord:            s.AwayRecord,
	}
}

func availabilityFrom(s models.TeamStatistics) AvailabilityFacts {
	return AvailabilityFacts{
		KeyPlayersUnavailable: s.KeyPlayersUnavailable,
		UnavailableCount:      len(s.UnavailablePlayers),
		KeyPlayersCount:       s.KeyPlayersUnavailableCount,
	}
}

// parseRecord splits a "W-L" record string. Malformed input yields (0, 0)
// so record-based predicates evaluate to false instead of failing the pass.
func parseRecord(record string) (wins, losses int) {
	wins, losses, _ = parseRecordStrict(record)
	return wins, losses
}

// parseRecordStrict is parseRecord plus an ok flag, for the one caller
// (recent-form categorization) that must tell a real 0-0 record apart from
// garbage input.
func parseRecordStrict(record string) (wins, losses int, ok bool) {
	parts := strings.SplitN(record, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	l, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if w < 0 || l < 0 {
		return 0, 0, false
	}
	return w, l, true
}

// isTerribleRoadRecord reports a road win rate below 25%. An empty record
// (0 games) is not terrible, it is unknown.
func isTerribleRoadRecord(record string) bool {
	wins, losses := parseRecord(record)
	total := wins + losses
	if total == 0 {
		return false
	}
	return float64(wins)/float64(total) < 0.25
}

// isExcellentHomeRecord reports a home win rate above 80%.
func isExcellentHomeRecord(record string) bool {
	wins, losses := parseRecord(record)
	total := wins + losses
	if total == 0 {
		return false
	}
	return float64(wins)/float64(total) > 0.8
}
