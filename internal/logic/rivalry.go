package logic

import (
	"strings"

	"github.com/hoopsight/risk-api/internal/models"
)

type rivalryEntry struct {
	Name        string
	Teams       [2]string
	Era         string
	Description string
}

// rivalryCatalog is the fixed set of historical rivalries. Matchup order
// does not matter; both directions hit the same entry.
var rivalryCatalog = []rivalryEntry{
	{
		Name:        "Celtics-Lakers",
		Teams:       [2]string{"Boston Celtics", "Los Angeles Lakers"},
		Era:         "1960s-present",
		Description: "The defining NBA rivalry, meeting in the Finals a dozen times",
	},
	{
		Name:        "Warriors-Cavaliers",
		Teams:       [2]string{"Golden State Warriors", "Cleveland Cavaliers"},
		Era:         "2010s",
		Description: "Four consecutive Finals matchups",
	},
	{
		Name:        "Battle of Los Angeles",
		Teams:       [2]string{"Los Angeles Lakers", "LA Clippers"},
		Era:         "2010s-present",
		Description: "Same-arena rivalry for city bragging rights",
	},
	{
		Name:        "Heat-Celtics",
		Teams:       [2]string{"Miami Heat", "Boston Celtics"},
		Era:         "2010s-present",
		Description: "Repeated playoff collisions in the East",
	},
	{
		Name:        "Bulls-Pistons",
		Teams:       [2]string{"Chicago Bulls", "Detroit Pistons"},
		Era:         "1980s-1990s",
		Description: "The Bad Boys era and the Jordan Rules",
	},
	{
		Name:        "Knicks-Heat",
		Teams:       [2]string{"New York Knicks", "Miami Heat"},
		Era:         "1990s",
		Description: "Four straight bruising playoff series",
	},
	{
		Name:        "Spurs-Mavericks",
		Teams:       [2]string{"San Antonio Spurs", "Dallas Mavericks"},
		Era:         "2000s",
		Description: "Texas rivalry between two title-era rosters",
	},
	{
		Name:        "Celtics-76ers",
		Teams:       [2]string{"Boston Celtics", "Philadelphia 76ers"},
		Era:         "1960s-1980s",
		Description: "Russell vs Chamberlain through Bird vs Erving",
	},
	{
		Name:        "Lakers-Kings",
		Teams:       [2]string{"Los Angeles Lakers", "Sacramento Kings"},
		Era:         "2000s",
		Description: "Early-2000s Western Conference wars",
	},
	{
		Name:        "Bucks-76ers",
		Teams:       [2]string{"Milwaukee Bucks", "Philadelphia 76ers"},
		Era:         "2010s-present",
		Description: "Contending Eastern rivals",
	},
}

// rivalryIntensity grades an era string: active or recent rivalries carry
// more unpredictability than historical ones.
func rivalryIntensity(era string) string {
	era = strings.ToLower(era)
	switch {
	case strings.Contains(era, "present"), strings.Contains(era, "2020s"), strings.Contains(era, "2010s"):
		return "high"
	case strings.Contains(era, "2000s"), strings.Contains(era, "1990s"):
		return "medium"
	default:
		return "low"
	}
}

// rivalryImpact keeps the factor near 1.0 so a rivalry flavors the analysis
// without driving it.
func rivalryImpact(intensity string) float64 {
	switch intensity {
	case "high":
		return 1.05
	case "medium":
		return 1.03
	case "low":
		return 1.01
	default:
		return 1.0
	}
}

// CheckRivalry reports whether the matchup is a known rivalry. The returned
// info is never nil; non-rivalries come back with IsRivalry false and a
// neutral impact factor.
func CheckRivalry(team, opponent string) *models.RivalryInfo {
	info := &models.RivalryInfo{
		IsRivalry:    false,
		Intensity:    "normal",
		ImpactFactor: 1.0,
	}
	if team == "" || opponent == "" || team == opponent {
		return info
	}
	for _, entry := range rivalryCatalog {
		if matchesRivalry(entry, team, opponent) {
			intensity := rivalryIntensity(entry.Era)
			info.IsRivalry = true
			info.Name = entry.Name
			info.Intensity = intensity
			info.Description = entry.Description
			info.ImpactFactor = rivalryImpact(intensity)
			return info
		}
	}
	return info
}

func matchesRivalry(entry rivalryEntry, team, opponent string) bool {
	return (entry.Teams[0] == team && entry.Teams[1] == opponent) ||
		(entry.Teams[0] == opponent && entry.Teams[1] == team)
}
