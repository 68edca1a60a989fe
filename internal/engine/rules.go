package engine

// RiskTier is the five-valued tier a single rule asserts. The overall
// verdict collapses very_high/very_low into the shared three-level scale
// during reduction.
type RiskTier string

const (
	TierVeryLow  RiskTier = "very_low"
	TierLow      RiskTier = "low"
	TierMedium   RiskTier = "medium"
	TierHigh     RiskTier = "high"
	TierVeryHigh RiskTier = "very_high"
)

// factorList says which factor accumulator a firing feeds. Informational
// rules (rivalry, neutral) feed neither: they appear in triggered_rules but
// deliberately stay out of the reasoning tally.
type factorList int

const (
	factorNone factorList = iota
	factorRisk
	factorSafe
)

// Rule is one compile-time-fixed expert rule: a conjunction of predicates
// over the working memory, a salience used for display ordering, the tier it
// asserts, and its human-readable texts. All rules whose condition holds
// fire in the same pass; salience never gates eligibility.
type Rule struct {
	Name     string // triggered-rules label
	Salience int
	Tier     RiskTier
	Reason   string
	Factor   string
	List     factorList
	When     func(f *Facts) bool
}

// ruleCatalog returns the full immutable rule set. Thresholds, labels,
// reasons and factor lines are tuned as a set; change them together or not
// at all.
func ruleCatalog() []Rule {
	return []Rule{
		// ---- High / very-high risk -------------------------------------
		{
			Name:     "High Risk: Losing streak + key players unavailable",
			Salience: 100,
			Tier:     TierHigh,
			Reason:   "Team has 3+ consecutive losses with key/star players unavailable",
			Factor:   "3+ consecutive losses with key/star players unavailable",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Performance.ConsecutiveLosses >= 3 && f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "High Risk: Key players out + struggling team",
			Salience: 95,
			Tier:     TierHigh,
			Reason:   "Key/star players unavailable on struggling team (win% < 50%)",
			Factor:   "Key/star players unavailable on struggling team",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Availability.KeyPlayersUnavailable && f.Performance.WinPercentage < 0.5
			},
		},
		{
			Name:     "Very High Risk: Multiple key players out",
			Salience: 95,
			Tier:     TierVeryHigh,
			Reason:   "Multiple key/star players unavailable (depth concerns)",
			Factor:   "Multiple key/star players unavailable - depth concerns",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Availability.KeyPlayersCount >= 2
			},
		},
		{
			Name:     "High Risk: Poor team away",
			Salience: 90,
			Tier:     TierHigh,
			Reason:   "Poor performing team (win% < 30%) playing away",
			Factor:   "Poor team performance playing away",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Performance.WinPercentage < 0.3 && f.Venue == "away"
			},
		},
		{
			Name:     "Very High Risk: Extended losing streak",
			Salience: 95,
			Tier:     TierVeryHigh,
			Reason:   "Team has 5+ consecutive losses",
			Factor:   "5+ consecutive losses",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Performance.ConsecutiveLosses >= 5
			},
		},
		{
			Name:     "High Risk: Poor offense and defense",
			Salience: 85,
			Tier:     TierHigh,
			Reason:   "Poor offense (<105 PPG) and defense (>115 OPPG)",
			Factor:   "Weak offense and defense",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Performance.PointsPerGame < 105 && f.Performance.OpponentPointsPerGame > 115
			},
		},
		{
			Name:     "High Risk: Struggling team + key player out",
			Salience: 85,
			Tier:     TierHigh,
			Reason:   "Struggling team (win% < 45%) with key/star player unavailable",
			Factor:   "Below .500 team missing key/star player",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Performance.WinPercentage < 0.45 && f.Availability.KeyPlayersCount >= 1
			},
		},
		{
			Name:     "High Risk: B2B road game",
			Salience: 85,
			Tier:     TierHigh,
			Reason:   "Back-to-back games on the road (fatigue factor)",
			Factor:   "Team playing consecutive games away",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Context.BackToBack && f.Venue == "away"
			},
		},
		{
			Name:     "High Risk: Poor scoring margin",
			Salience: 80,
			Tier:     TierHigh,
			Reason:   "Terrible point differential (losing by 8+ per game)",
			Factor:   "Consistently outscored by large margin",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Context.PointDifferential < -8
			},
		},
		{
			Name:     "High Risk: Terrible road team",
			Salience: 75,
			Tier:     TierHigh,
			Reason:   "Historically poor road performance (road win% < 25%)",
			Factor:   "Extremely poor away record",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Venue == "away" && isTerribleRoadRecord(f.Performance.AwayRecord)
			},
		},
		{
			Name:     "Medium Risk: B2B struggling team",
			Salience: 75,
			Tier:     TierMedium,
			Reason:   "Back-to-back games for struggling team (fatigue impact)",
			Factor:   "Fatigue factor for below .500 team",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Context.BackToBack && f.Performance.WinPercentage < 0.5
			},
		},
		{
			Name:     "Medium Risk: Rust factor",
			Salience: 70,
			Tier:     TierMedium,
			Reason:   "Long rest (4+ days) after recent struggles - potential rust",
			Factor:   "Extended rest following poor performance",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Context.RestDays >= 4 && f.Performance.ConsecutiveLosses >= 2
			},
		},
		{
			Name:     "Medium Risk: Healthy team underperforming",
			Salience: 65,
			Tier:     TierMedium,
			Reason:   "Recent poor form (4+ losses in last 5) despite healthy roster",
			Factor:   "Poor recent form with full roster",
			List:     factorRisk,
			When: func(f *Facts) bool {
				_, losses := parseRecord(f.Performance.Last5Record)
				return losses >= 4 && !f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Medium Risk: No rest away",
			Salience: 65,
			Tier:     TierMedium,
			Reason:   "No rest before away game (tired legs)",
			Factor:   "Playing away game without rest",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Context.RestDays == 0 && f.Venue == "away"
			},
		},

		// ---- Safe / very-safe ------------------------------------------
		{
			Name:     "Very Safe: Championship contender",
			Salience: 90,
			Tier:     TierVeryLow,
			Reason:   "Championship-level team (>75% wins, >118 PPG, <108 OPPG)",
			Factor:   "Elite performance on both ends of court",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.WinPercentage > 0.75 &&
					f.Performance.PointsPerGame > 118 &&
					f.Performance.OpponentPointsPerGame < 108
			},
		},
		{
			Name:     "Safe Bet: Dominant team at home",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Dominant point differential (+8 per game) at home",
			Factor:   "Strong scoring margin in home environment",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Context.PointDifferential > 8 && f.Venue == "home"
			},
		},
		{
			Name:     "Safe Bet: Hot form at home",
			Salience: 70,
			Tier:     TierLow,
			Reason:   "Hot recent form (4+ wins in last 5) at home",
			Factor:   "Excellent recent momentum in home environment",
			List:     factorSafe,
			When: func(f *Facts) bool {
				wins, _ := parseRecord(f.Performance.Last5Record)
				return wins >= 4 && f.Venue == "home"
			},
		},
		{
			Name:     "Very Safe: Hot home team",
			Salience: 85,
			Tier:     TierVeryLow,
			Reason:   "Hot streak (5+ wins) at home with full roster - excellent momentum",
			Factor:   "Strong momentum at home with healthy roster",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.ConsecutiveWins >= 5 && f.Venue == "home" &&
					!f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Dominant team at home",
			Salience: 80,
			Tier:     TierLow,
			Reason:   "Dominant team (>70% wins) at home with full roster",
			Factor:   "Strong team performance in home environment with full squad",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.WinPercentage > 0.7 && f.Venue == "home" &&
					!f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Hot offensive team",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Hot streak (3+ wins) with strong offense (>115 PPG) and healthy roster",
			Factor:   "Winning momentum with strong scoring and full roster",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.ConsecutiveWins >= 3 &&
					f.Performance.PointsPerGame > 115 &&
					!f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Home fortress",
			Salience: 70,
			Tier:     TierLow,
			Reason:   "Excellent home record (>80% wins) with healthy roster",
			Factor:   "Dominant home performance with full squad",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return isExcellentHomeRecord(f.Performance.HomeRecord) && f.Venue == "home" &&
					!f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Elite defense at home",
			Salience: 65,
			Tier:     TierLow,
			Reason:   "Elite defense (<105 OPPG) at home with good record",
			Factor:   "Strong defensive team in home environment",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.OpponentPointsPerGame < 105 && f.Venue == "home" &&
					f.Performance.WinPercentage > 0.6
			},
		},
		{
			Name:     "Safe Bet: Rested winners at home",
			Salience: 60,
			Tier:     TierLow,
			Reason:   "Well-rested (1-3 days) winning team at home",
			Factor:   "Optimal rest with winning momentum at home",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Context.RestDays >= 1 && f.Context.RestDays <= 3 &&
					f.Performance.ConsecutiveWins >= 2 && f.Venue == "home"
			},
		},
		{
			Name:     "Safe Bet: Excellent form",
			Salience: 65,
			Tier:     TierLow,
			Reason:   "Excellent recent form (8+ wins in last 10) with healthy roster",
			Factor:   "Sustained excellent performance with full squad",
			List:     factorSafe,
			When: func(f *Facts) bool {
				wins, _ := parseRecord(f.Performance.Last10Record)
				return wins >= 8 && !f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Elite team hot streak",
			Salience: 80,
			Tier:     TierLow,
			Reason:   "Elite team (>65% wins) on 4+ game winning streak with full roster",
			Factor:   "High-performing team with strong momentum and full roster",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.WinPercentage > 0.65 &&
					f.Performance.ConsecutiveWins >= 4 &&
					!f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Explosive offense at home",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Explosive offense (>120 PPG) at home with good record",
			Factor:   "High-scoring team in favorable home environment",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.PointsPerGame > 120 &&
					f.Performance.WinPercentage > 0.6 && f.Venue == "home"
			},
		},
		{
			Name:     "Safe Bet: Dominant scoring margin",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Dominant point differential (+10 per game) with healthy roster",
			Factor:   "Consistently outscoring opponents by large margin with full squad",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Context.PointDifferential > 10 && !f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Very Safe: Extended hot streak",
			Salience: 85,
			Tier:     TierVeryLow,
			Reason:   "Extended hot streak (6+ wins) with full roster - peak momentum",
			Factor:   "Exceptional momentum with healthy roster",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.ConsecutiveWins >= 6 && !f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Lockdown defense",
			Salience: 80,
			Tier:     TierLow,
			Reason:   "Lockdown defense (<100 OPPG) on elite team",
			Factor:   "Elite defensive performance on strong team",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.OpponentPointsPerGame < 100 && f.Performance.WinPercentage > 0.65
			},
		},
		{
			Name:     "Safe Bet: Elite team optimal rest",
			Salience: 70,
			Tier:     TierLow,
			Reason:   "Elite team (>70% wins) with optimal rest (2-3 days) at home",
			Factor:   "Strong team with perfect rest in home environment",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Context.RestDays >= 2 && f.Context.RestDays <= 3 &&
					f.Performance.WinPercentage > 0.7 && f.Venue == "home"
			},
		},
		{
			Name:     "Very Safe: Perfect recent form",
			Salience: 85,
			Tier:     TierVeryLow,
			Reason:   "Perfect recent form (5-0 in last 5) at home with healthy roster",
			Factor:   "Flawless recent performance at home with full squad",
			List:     factorSafe,
			When: func(f *Facts) bool {
				wins, _ := parseRecord(f.Performance.Last5Record)
				return wins == 5 && f.Venue == "home" && !f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Balanced excellence",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Strong offense (>115 PPG) and defense (<110 OPPG) at home with full roster",
			Factor:   "Strong two-way play at home with healthy squad",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Performance.PointsPerGame > 115 &&
					f.Performance.OpponentPointsPerGame < 110 &&
					f.Venue == "home" && !f.Availability.KeyPlayersUnavailable
			},
		},

		// ---- Informational ---------------------------------------------
		{
			// Low salience and no factor line: a rivalry is surfaced to the
			// reader but never sways the tally.
			Name:     "Info: Rivalry factor",
			Salience: 30,
			Tier:     TierMedium,
			Reason:   "Classic rivalry matchup - slight unpredictability factor",
			List:     factorNone,
			When: func(f *Facts) bool {
				return f.Rivalry != nil && f.Rivalry.IsRivalry && f.Rivalry.Intensity == "high"
			},
		},
		{
			Name:     "Neutral: Average team",
			Salience: 50,
			Tier:     TierMedium,
			Reason:   "Average team performance with no major red flags",
			List:     factorNone,
			When: func(f *Facts) bool {
				return f.Performance.WinPercentage >= 0.45 &&
					f.Performance.WinPercentage <= 0.6 &&
					!f.Availability.KeyPlayersUnavailable
			},
		},

		// ---- Comparative matchup (need opponent facts) ------------------
		{
			Name:     "Safe Bet: Strong vs weak matchup",
			Salience: 90,
			Tier:     TierLow,
			Reason:   "Strong team (>70% wins) facing weak opponent (<40% wins)",
			Factor:   "Favorable matchup against struggling opponent",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Opponent != nil && f.Performance.WinPercentage > 0.7 &&
					f.Opponent.WinPercentage < 0.4
			},
		},
		{
			Name:     "High Risk: Weak vs strong matchup",
			Salience: 90,
			Tier:     TierHigh,
			Reason:   "Weak team (<40% wins) facing strong opponent (>70% wins)",
			Factor:   "Difficult matchup against superior opponent",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Opponent != nil && f.Performance.WinPercentage < 0.4 &&
					f.Opponent.WinPercentage > 0.7
			},
		},
		{
			Name:     "Safe Bet: Major offensive advantage",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Major offensive advantage (>10 PPG) at home vs opponent",
			Factor:   "Significant scoring advantage over opponent",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Matchup != nil && f.Matchup.OffensiveAdvantage > 10 && f.Venue == "home"
			},
		},
		{
			Name:     "Safe Bet: Defensive mismatch",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Major defensive advantage (opponent allows 8+ more PPG) with full roster",
			Factor:   "Opponent's poor defense vs our healthy roster",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Matchup != nil && f.Matchup.DefensiveAdvantage > 8 &&
					!f.Availability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Hot vs cold momentum",
			Salience: 80,
			Tier:     TierLow,
			Reason:   "Hot team (3+ wins) facing cold opponent (3+ losses)",
			Factor:   "Positive momentum against struggling opponent",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Opponent != nil && f.Performance.ConsecutiveWins >= 3 &&
					f.Opponent.ConsecutiveLosses >= 3
			},
		},
		{
			Name:     "High Risk: Cold vs hot momentum",
			Salience: 80,
			Tier:     TierHigh,
			Reason:   "Cold team (2+ losses) facing hot opponent (3+ wins)",
			Factor:   "Poor momentum against surging opponent",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Opponent != nil && f.Performance.ConsecutiveLosses >= 2 &&
					f.Opponent.ConsecutiveWins >= 3
			},
		},
		{
			Name:     "High Risk: Injuries vs healthy opponent",
			Salience: 85,
			Tier:     TierHigh,
			Reason:   "Key players unavailable while opponent has full roster",
			Factor:   "Roster disadvantage against healthy opponent",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.OpponentAvailability != nil && f.Availability.KeyPlayersUnavailable &&
					!f.OpponentAvailability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Health advantage",
			Salience: 75,
			Tier:     TierLow,
			Reason:   "Full roster vs opponent with key players unavailable",
			Factor:   "Roster advantage over injured opponent",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.OpponentAvailability != nil && !f.Availability.KeyPlayersUnavailable &&
					f.OpponentAvailability.KeyPlayersUnavailable
			},
		},
		{
			Name:     "Safe Bet: Quality mismatch at home",
			Salience: 80,
			Tier:     TierLow,
			Reason:   "Significant quality advantage (25%+ win rate difference) at home",
			Factor:   "Superior team quality in home environment",
			List:     factorSafe,
			When: func(f *Facts) bool {
				return f.Matchup != nil && f.Matchup.WinPercentageDiff > 0.25 && f.Venue == "home"
			},
		},
		{
			Name:     "High Risk: Quality deficit away",
			Salience: 85,
			Tier:     TierHigh,
			Reason:   "Quality disadvantage (20%+ win rate deficit) on the road",
			Factor:   "Inferior team playing on opponent's court",
			List:     factorRisk,
			When: func(f *Facts) bool {
				return f.Matchup != nil && f.Matchup.WinPercentageDiff < -0.2 && f.Venue == "away"
			},
		},
	}
}
