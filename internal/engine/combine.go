package engine

import (
	"fmt"

	"github.com/hoopsight/risk-api/internal/models"
)

const (
	agreementBaseline      = 0.8
	disagreementConfidence = 0.6
)

// bucket collapses the five-valued rule verdict onto the binary scale the
// network reports, so the two systems can be compared at all.
func bucket(rec models.Recommendation) models.Recommendation {
	switch rec {
	case models.RecommendAvoid, models.RecommendRisky:
		return models.RecommendRisky
	default:
		return models.RecommendSafe
	}
}

var riskOrdinal = map[models.RiskLevel]float64{
	models.RiskLow:    1,
	models.RiskMedium: 2,
	models.RiskHigh:   3,
}

// Combine merges the rule verdict with the network assessment. When the two
// systems land in the same bucket the richer rule recommendation survives
// and confidence averages the network's posterior with a fixed baseline; on
// disagreement the verdict falls back to the cautious bucket at a flat
// reduced confidence.
func Combine(expert Result, bayes RiskAssessment) models.BettingAnalysis {
	var rec models.Recommendation
	var confidence float64

	expertBucket := bucket(expert.Recommendation)
	bayesBucket := bucket(models.Recommendation(bayes.Recommendation))

	if expertBucket == bayesBucket {
		rec = expert.Recommendation
		confidence = (bayes.Confidence + agreementBaseline) / 2
	} else {
		// Disagreement always has one risky side; be the cautious one.
		rec = models.RecommendRisky
		confidence = disagreementConfidence
	}

	avg := (riskOrdinal[expert.OverallRisk] + riskOrdinal[bayes.RiskLevel]) / 2
	var risk models.RiskLevel
	switch {
	case avg <= 1.5:
		risk = models.RiskLow
	case avg <= 2.5:
		risk = models.RiskMedium
	default:
		risk = models.RiskHigh
	}

	reasoning := make([]string, 0, len(expert.RiskFactors)+len(expert.SafeFactors)+1)
	reasoning = append(reasoning, expert.RiskFactors...)
	reasoning = append(reasoning, expert.SafeFactors...)
	reasoning = append(reasoning, fmt.Sprintf("Bayesian analysis: %s risk (%.1f%% confidence)",
		bayes.RiskLevel, bayes.Confidence*100))

	return models.BettingAnalysis{
		Recommendation:      rec,
		Confidence:          confidence,
		RiskLevel:           risk,
		Reasoning:           reasoning,
		TriggeredRules:      expert.TriggeredRules,
		BayesianProbability: bayes.Confidence,
	}
}
