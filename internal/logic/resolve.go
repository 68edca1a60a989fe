package logic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnknownTeam is returned when input cannot be resolved to any canonical
// team name.
var ErrUnknownTeam = errors.New("unknown team")

// canonicalTeams is the full league as named in the game log. Resolution
// always lands on one of these or fails.
var canonicalTeams = []string{
	"Atlanta Hawks",
	"Boston Celtics",
	"Brooklyn Nets",
	"Charlotte Hornets",
	"Chicago Bulls",
	"Cleveland Cavaliers",
	"Dallas Mavericks",
	"Denver Nuggets",
	"Detroit Pistons",
	"Golden State Warriors",
	"Houston Rockets",
	"Indiana Pacers",
	"LA Clippers",
	"Los Angeles Lakers",
	"Memphis Grizzlies",
	"Miami Heat",
	"Milwaukee Bucks",
	"Minnesota Timberwolves",
	"New Orleans Pelicans",
	"New York Knicks",
	"Oklahoma City Thunder",
	"Orlando Magic",
	"Philadelphia 76ers",
	"Phoenix Suns",
	"Portland Trail Blazers",
	"Sacramento Kings",
	"San Antonio Spurs",
	"Toronto Raptors",
	"Utah Jazz",
	"Washington Wizards",
}

// teamAliases maps common short forms to canonical names.
var teamAliases = map[string]string{
	"hawks":        "Atlanta Hawks",
	"celtics":      "Boston Celtics",
	"nets":         "Brooklyn Nets",
	"hornets":      "Charlotte Hornets",
	"bulls":        "Chicago Bulls",
	"cavaliers":    "Cleveland Cavaliers",
	"cavs":         "Cleveland Cavaliers",
	"mavericks":    "Dallas Mavericks",
	"mavs":         "Dallas Mavericks",
	"nuggets":      "Denver Nuggets",
	"pistons":      "Detroit Pistons",
	"warriors":     "Golden State Warriors",
	"rockets":      "Houston Rockets",
	"pacers":       "Indiana Pacers",
	"clippers":     "LA Clippers",
	"lakers":       "Los Angeles Lakers",
	"grizzlies":    "Memphis Grizzlies",
	"heat":         "Miami Heat",
	"bucks":        "Milwaukee Bucks",
	"timberwolves": "Minnesota Timberwolves",
	"wolves":       "Minnesota Timberwolves",
	"pelicans":     "New Orleans Pelicans",
	"knicks":       "New York Knicks",
	"thunder":      "Oklahoma City Thunder",
	"magic":        "Orlando Magic",
	"sixers":       "Philadelphia 76ers",
	"76ers":        "Philadelphia 76ers",
	"suns":         "Phoenix Suns",
	"blazers":      "Portland Trail Blazers",
	"trail blazers": "Portland Trail Blazers",
	"kings":        "Sacramento Kings",
	"spurs":        "San Antonio Spurs",
	"raptors":      "Toronto Raptors",
	"jazz":         "Utah Jazz",
	"wizards":      "Washington Wizards",
}

// CanonicalTeams returns a copy of the full league list.
func CanonicalTeams() []string {
	teams := make([]string, len(canonicalTeams))
	copy(teams, canonicalTeams)
	return teams
}

// similarity threshold below which a fuzzy match is considered a guess and
// rejected.
const resolveThreshold = 0.7

// TeamResolver maps free-form user input ("lakers", "Los Angles Lakers") to
// a canonical team name. Stateless and safe for concurrent use.
type TeamResolver struct{}

func NewTeamResolver() *TeamResolver {
	return &TeamResolver{}
}

// Resolve returns the canonical team name for the input, trying exact match,
// alias lookup, substring containment and finally Levenshtein similarity.
func (r *TeamResolver) Resolve(input string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", fmt.Errorf("empty team name")
	}

	for _, team := range canonicalTeams {
		if strings.ToLower(team) == needle {
			return team, nil
		}
	}
	if team, ok := teamAliases[needle]; ok {
		return team, nil
	}
	for _, team := range canonicalTeams {
		if strings.Contains(strings.ToLower(team), needle) {
			return team, nil
		}
	}

	best := ""
	bestScore := 0.0
	for _, team := range canonicalTeams {
		haystack := strings.ToLower(team)
		distance := fuzzy.LevenshteinDistance(needle, haystack)
		maxLen := len(needle)
		if len(haystack) > maxLen {
			maxLen = len(haystack)
		}
		score := 1 - float64(distance)/float64(maxLen)
		if score > bestScore {
			bestScore = score
			best = team
		}
	}
	if bestScore >= resolveThreshold {
		return best, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTeam, input)
}
