package engine

import (
	"sort"

	"github.com/hoopsight/risk-api/internal/models"
)

// Result is the outcome of one rule pass: the collapsed risk level, the
// five-valued recommendation, and the accumulated rule output in salience
// order.
type Result struct {
	OverallRisk    models.RiskLevel
	Recommendation models.Recommendation
	TriggeredRules []string
	RiskFactors    []string
	SafeFactors    []string

	tiers map[RiskTier]int
}

// TierCount reports how many fired rules asserted the given tier.
func (r Result) TierCount(t RiskTier) int {
	return r.tiers[t]
}

// RuleEngine evaluates the fixed rule catalog against declared facts. The
// zero value is not usable; construct with NewRuleEngine.
type RuleEngine struct {
	rules []Rule
}

// NewRuleEngine builds an engine over the full catalog, ordered by salience
// descending. The sort is stable so rules sharing a salience keep their
// catalog order, which keeps triggered-rule output deterministic.
func NewRuleEngine() *RuleEngine {
	rules := ruleCatalog()
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Salience > rules[j].Salience
	})
	return &RuleEngine{rules: rules}
}

// Analyze declares facts for the subject team and runs a single match pass.
// Every rule whose condition holds fires; firing appends the rule's label
// and factor line to fresh accumulators, so concurrent and repeated calls
// never observe each other's state.
func (e *RuleEngine) Analyze(subject models.TeamStatistics, opponent *models.TeamStatistics, venue string, rivalry *models.RivalryInfo) Result {
	facts := DeclareFacts(subject, opponent, venue, rivalry)
	return e.Run(&facts)
}

// Run evaluates the catalog against already-declared working memory.
func (e *RuleEngine) Run(facts *Facts) Result {
	res := Result{
		TriggeredRules: []string{},
		RiskFactors:    []string{},
		SafeFactors:    []string{},
		tiers:          make(map[RiskTier]int),
	}
	for _, rule := range e.rules {
		if !rule.When(facts) {
			continue
		}
		res.TriggeredRules = append(res.TriggeredRules, rule.Name)
		res.tiers[rule.Tier]++
		switch rule.List {
		case factorRisk:
			res.RiskFactors = append(res.RiskFactors, rule.Factor)
		case factorSafe:
			res.SafeFactors = append(res.SafeFactors, rule.Factor)
		}
	}
	res.OverallRisk, res.Recommendation = reduce(res.tiers)
	return res
}

// reduce collapses tier counts into the final verdict. Branch order matters:
// any very-high signal or a pair of highs is an outright avoid before safe
// signals are even considered, and a lone high still caps the verdict at
// risky regardless of how many safe rules fired.
func reduce(tiers map[RiskTier]int) (models.RiskLevel, models.Recommendation) {
	veryHigh := tiers[TierVeryHigh]
	high := tiers[TierHigh]
	medium := tiers[TierMedium]
	low := tiers[TierLow]
	veryLow := tiers[TierVeryLow]

	switch {
	case veryHigh > 0 || high >= 2:
		return models.RiskHigh, models.RecommendAvoid
	case high > 0:
		return models.RiskHigh, models.RecommendRisky
	case veryLow >= 2 || (veryLow >= 1 && low >= 1):
		return models.RiskLow, models.RecommendHighly
	case low >= 2 || (low >= 1 && medium == 0):
		return models.RiskLow, models.RecommendSafe
	case low > high && medium <= 1:
		return models.RiskLow, models.RecommendSafe
	default:
		return models.RiskMedium, models.RecommendNeutral
	}
}
