package engine

import (
	"fmt"

	"github.com/hoopsight/risk-api/internal/models"
)

// Evidence states for the four observed variables. The network knows no
// other values; anything else supplied to Infer is a contract violation and
// is rejected loudly rather than defaulted.
const (
	WinPoor    = "Poor"
	WinAverage = "Average"
	WinGood    = "Good"

	Available   = "Available"
	Unavailable = "Unavailable"

	FormPoor    = "Poor"
	FormAverage = "Average"
	FormGood    = "Good"

	VenueHome = "Home"
	VenueAway = "Away"

	riskLowState    = "Low"
	riskMediumState = "Medium"
	riskHighState   = "High"
)

// Evidence is a full observation of the network's four root/intermediate
// variables.
type Evidence struct {
	WinPercentage string
	Availability  string
	RecentForm    string
	Venue         string
}

// Map renders the evidence for API responses and logs.
func (e Evidence) Map() map[string]string {
	return map[string]string{
		"WinPercentage":      e.WinPercentage,
		"AvailabilityStatus": e.Availability,
		"RecentForm":         e.RecentForm,
		"Venue":              e.Venue,
	}
}

// RiskAssessment is the posterior over betting risk plus the derived
// prediction.
type RiskAssessment struct {
	RiskLevel      models.RiskLevel
	Confidence     float64
	Recommendation string // "safe" or "risky"
	Low            float64
	Medium         float64
	High           float64
	Evidence       Evidence
}

// Probabilities returns the three-way distribution keyed by tier.
func (a RiskAssessment) Probabilities() map[string]float64 {
	return map[string]float64{"low": a.Low, "medium": a.Medium, "high": a.High}
}

// RiskNetwork is the fixed 5-node discrete network:
//
//	WinPercentage ─┬─────────────► BettingRisk ◄── Venue
//	               └► RecentForm ──────▲  ▲
//	AvailabilityStatus ─┴──────────────┘  │
//	        └─────────────────────────────┘
//
// All parameters are hand-specified constants; there is no derivation
// formula, so the tables below are the ground truth and must not be
// regenerated or approximated.
type RiskNetwork struct {
	winPrior   [3]float64
	availPrior [2]float64
	venuePrior [2]float64
	// formCPT[form][winIdx*2+availIdx] = P(RecentForm=form | WinPct, Availability)
	formCPT [3][6]float64
	// riskCPT[comb][risk] with comb = ((winIdx*2+availIdx)*3+formIdx)*2+venueIdx
	riskCPT [36][3]float64
}

// NewRiskNetwork builds the network. The returned value is immutable and
// safe to share between goroutines.
func NewRiskNetwork() *RiskNetwork {
	n := &RiskNetwork{
		winPrior:   [3]float64{0.25, 0.50, 0.25}, // Poor, Average, Good
		availPrior: [2]float64{0.70, 0.30},       // Available, Unavailable
		venuePrior: [2]float64{0.50, 0.50},       // Home, Away
		formCPT: [3][6]float64{
			// columns: Poor/Avail, Poor/Unav, Avg/Avail, Avg/Unav, Good/Avail, Good/Unav
			{0.70, 0.85, 0.40, 0.60, 0.20, 0.40}, // Poor form
			{0.25, 0.13, 0.45, 0.35, 0.30, 0.45}, // Average form
			{0.05, 0.02, 0.15, 0.05, 0.50, 0.15}, // Good form
		},
	}
	n.riskCPT = bettingRiskTable
	return n
}

// bettingRiskTable enumerates P(BettingRisk | WinPct, Availability,
// RecentForm, Venue) for all 36 parent combinations in the order
// WinPercentage x AvailabilityStatus x RecentForm x Venue. Each row is
// (Low, Medium, High).
var bettingRiskTable = [36][3]float64{
	{0.10, 0.30, 0.60}, // Poor/Available/Poor/Home
	{0.05, 0.25, 0.70}, // Poor/Available/Poor/Away
	{0.15, 0.40, 0.45}, // Poor/Available/Average/Home
	{0.10, 0.35, 0.55}, // Poor/Available/Average/Away
	{0.25, 0.45, 0.30}, // Poor/Available/Good/Home
	{0.20, 0.40, 0.40}, // Poor/Available/Good/Away
	{0.05, 0.20, 0.75}, // Poor/Unavailable/Poor/Home
	{0.02, 0.15, 0.83}, // Poor/Unavailable/Poor/Away
	{0.10, 0.30, 0.60}, // Poor/Unavailable/Average/Home
	{0.05, 0.25, 0.70}, // Poor/Unavailable/Average/Away
	{0.15, 0.35, 0.50}, // Poor/Unavailable/Good/Home
	{0.10, 0.30, 0.60}, // Poor/Unavailable/Good/Away
	{0.20, 0.40, 0.40}, // Average/Available/Poor/Home
	{0.15, 0.35, 0.50}, // Average/Available/Poor/Away
	{0.35, 0.45, 0.20}, // Average/Available/Average/Home
	{0.25, 0.45, 0.30}, // Average/Available/Average/Away
	{0.50, 0.35, 0.15}, // Average/Available/Good/Home
	{0.40, 0.40, 0.20}, // Average/Available/Good/Away
	{0.10, 0.30, 0.60}, // Average/Unavailable/Poor/Home
	{0.05, 0.25, 0.70}, // Average/Unavailable/Poor/Away
	{0.20, 0.40, 0.40}, // Average/Unavailable/Average/Home
	{0.15, 0.35, 0.50}, // Average/Unavailable/Average/Away
	{0.30, 0.45, 0.25}, // Average/Unavailable/Good/Home
	{0.25, 0.40, 0.35}, // Average/Unavailable/Good/Away
	{0.30, 0.45, 0.25}, // Good/Available/Poor/Home
	{0.25, 0.40, 0.35}, // Good/Available/Poor/Away
	{0.60, 0.30, 0.10}, // Good/Available/Average/Home
	{0.50, 0.35, 0.15}, // Good/Available/Average/Away
	{0.80, 0.15, 0.05}, // Good/Available/Good/Home
	{0.70, 0.25, 0.05}, // Good/Available/Good/Away
	{0.20, 0.40, 0.40}, // Good/Unavailable/Poor/Home
	{0.15, 0.35, 0.50}, // Good/Unavailable/Poor/Away
	{0.40, 0.40, 0.20}, // Good/Unavailable/Average/Home
	{0.35, 0.40, 0.25}, // Good/Unavailable/Average/Away
	{0.60, 0.30, 0.10}, // Good/Unavailable/Good/Home
	{0.50, 0.35, 0.15}, // Good/Unavailable/Good/Away
}

func winIndex(s string) (int, error) {
	switch s {
	case WinPoor:
		return 0, nil
	case WinAverage:
		return 1, nil
	case WinGood:
		return 2, nil
	}
	return 0, fmt.Errorf("evidence out of domain: WinPercentage=%q", s)
}

func availIndex(s string) (int, error) {
	switch s {
	case Available:
		return 0, nil
	case Unavailable:
		return 1, nil
	}
	return 0, fmt.Errorf("evidence out of domain: AvailabilityStatus=%q", s)
}

func formIndex(s string) (int, error) {
	switch s {
	case FormPoor:
		return 0, nil
	case FormAverage:
		return 1, nil
	case FormGood:
		return 2, nil
	}
	return 0, fmt.Errorf("evidence out of domain: RecentForm=%q", s)
}

func venueIndex(s string) (int, error) {
	switch s {
	case VenueHome:
		return 0, nil
	case VenueAway:
		return 1, nil
	}
	return 0, fmt.Errorf("evidence out of domain: Venue=%q", s)
}

// Infer computes the exact posterior P(BettingRisk | evidence) by summing
// the joint over all assignments consistent with the observation, then
// normalizing. The network is small enough that full enumeration is both
// exact and cheap; with all four parents observed the result coincides with
// the matching riskCPT row, which the tests pin down.
func (n *RiskNetwork) Infer(ev Evidence) (RiskAssessment, error) {
	wObs, err := winIndex(ev.WinPercentage)
	if err != nil {
		return RiskAssessment{}, err
	}
	aObs, err := availIndex(ev.Availability)
	if err != nil {
		return RiskAssessment{}, err
	}
	fObs, err := formIndex(ev.RecentForm)
	if err != nil {
		return RiskAssessment{}, err
	}
	vObs, err := venueIndex(ev.Venue)
	if err != nil {
		return RiskAssessment{}, err
	}

	var posterior [3]float64
	var norm float64
	for w := 0; w < 3; w++ {
		for a := 0; a < 2; a++ {
			for f := 0; f < 3; f++ {
				for v := 0; v < 2; v++ {
					if w != wObs || a != aObs || f != fObs || v != vObs {
						continue
					}
					base := n.winPrior[w] * n.availPrior[a] * n.venuePrior[v] * n.formCPT[f][w*2+a]
					comb := ((w*2+a)*3+f)*2 + v
					for r := 0; r < 3; r++ {
						p := base * n.riskCPT[comb][r]
						posterior[r] += p
						norm += p
					}
				}
			}
		}
	}

	if norm <= 0 {
		return RiskAssessment{}, fmt.Errorf("zero-probability evidence %v", ev.Map())
	}
	for r := range posterior {
		posterior[r] /= norm
	}

	// Highest-probability outcome wins; ties resolve to the highest-risk
	// member of the tied set (deliberate worst-case bias).
	best := 0
	for r := 1; r < 3; r++ {
		if posterior[r] >= posterior[best] {
			best = r
		}
	}

	assessment := RiskAssessment{
		Confidence: posterior[best],
		Low:        posterior[0],
		Medium:     posterior[1],
		High:       posterior[2],
		Evidence:   ev,
	}
	switch best {
	case 0:
		assessment.RiskLevel = models.RiskLow
		assessment.Recommendation = "safe"
	case 1:
		assessment.RiskLevel = models.RiskMedium
		assessment.Recommendation = "risky"
	default:
		assessment.RiskLevel = models.RiskHigh
		assessment.Recommendation = "risky"
	}
	return assessment, nil
}

// Assess categorizes raw team statistics into evidence and runs inference.
func (n *RiskNetwork) Assess(stats models.TeamStatistics, venue string) (RiskAssessment, error) {
	return n.Infer(Evidence{
		WinPercentage: CategorizeWinPercentage(stats.WinPercentage),
		Availability:  CategorizeAvailability(stats.KeyPlayersUnavailable),
		RecentForm:    CategorizeRecentForm(stats.Last10Games),
		Venue:         CategorizeVenue(venue),
	})
}

// CategorizeWinPercentage buckets a win rate into Poor (<0.4),
// Average (0.4-0.6) or Good (>=0.6).
func CategorizeWinPercentage(winPct float64) string {
	switch {
	case winPct < 0.4:
		return WinPoor
	case winPct < 0.6:
		return WinAverage
	default:
		return WinGood
	}
}

// CategorizeRecentForm buckets a last-10 record string: Good at 7+ wins,
// Average at 4+, otherwise Poor. Malformed strings fall back to Average
// rather than failing.
func CategorizeRecentForm(last10 string) string {
	wins, _, ok := parseRecordStrict(last10)
	if !ok {
		return FormAverage
	}
	switch {
	case wins >= 7:
		return FormGood
	case wins >= 4:
		return FormAverage
	default:
		return FormPoor
	}
}

// CategorizeAvailability maps the key-player flag to an evidence state.
func CategorizeAvailability(keyPlayersUnavailable bool) string {
	if keyPlayersUnavailable {
		return Unavailable
	}
	return Available
}

// CategorizeVenue maps a venue designator to evidence. The network only
// models Home and Away; a neutral floor removes the home edge, so it is
// categorized conservatively as Away.
func CategorizeVenue(venue string) string {
	if venue == models.VenueHome {
		return VenueHome
	}
	return VenueAway
}
