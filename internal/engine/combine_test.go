package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/hoopsight/risk-api/internal/models"
)

func TestCombineAgreementKeepsExpertVerdict(t *testing.T) {
	expert := Result{
		OverallRisk:    models.RiskHigh,
		Recommendation: models.RecommendAvoid,
		RiskFactors:    []string{"5+ consecutive losses"},
		TriggeredRules: []string{"Very High Risk: Extended losing streak"},
	}
	bayes := RiskAssessment{
		RiskLevel:      models.RiskHigh,
		Confidence:     0.83,
		Recommendation: "risky",
		Low:            0.02, Medium: 0.15, High: 0.83,
	}

	got := Combine(expert, bayes)

	if got.Recommendation != models.RecommendAvoid {
		t.Errorf("Recommendation = %v, want %v (agreement keeps the richer verdict)",
			got.Recommendation, models.RecommendAvoid)
	}
	if math.Abs(got.Confidence-0.815) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.815", got.Confidence)
	}
	if got.RiskLevel != models.RiskHigh {
		t.Errorf("RiskLevel = %v, want %v", got.RiskLevel, models.RiskHigh)
	}
	if got.BayesianProbability != 0.83 {
		t.Errorf("BayesianProbability = %v, want 0.83", got.BayesianProbability)
	}
	last := got.Reasoning[len(got.Reasoning)-1]
	if !strings.Contains(last, "Bayesian analysis: high risk (83.0% confidence)") {
		t.Errorf("reasoning tail = %q, want the network summary line", last)
	}
}

func TestCombineAgreementOnSafeSide(t *testing.T) {
	expert := Result{
		OverallRisk:    models.RiskLow,
		Recommendation: models.RecommendHighly,
		SafeFactors:    []string{"Exceptional momentum with healthy roster"},
	}
	bayes := RiskAssessment{
		RiskLevel:      models.RiskLow,
		Confidence:     0.8,
		Recommendation: "safe",
	}

	got := Combine(expert, bayes)

	if got.Recommendation != models.RecommendHighly {
		t.Errorf("Recommendation = %v, want %v", got.Recommendation, models.RecommendHighly)
	}
	if math.Abs(got.Confidence-0.8) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.8", got.Confidence)
	}
	if got.RiskLevel != models.RiskLow {
		t.Errorf("RiskLevel = %v, want %v", got.RiskLevel, models.RiskLow)
	}
}

func TestCombineDisagreementFallsBackToRisky(t *testing.T) {
	expert := Result{
		OverallRisk:    models.RiskMedium,
		Recommendation: models.RecommendNeutral,
	}
	bayes := RiskAssessment{
		RiskLevel:      models.RiskMedium,
		Confidence:     0.45,
		Recommendation: "risky",
	}

	got := Combine(expert, bayes)

	if got.Recommendation != models.RecommendRisky {
		t.Errorf("Recommendation = %v, want %v on disagreement", got.Recommendation, models.RecommendRisky)
	}
	if got.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want the flat 0.6 disagreement value", got.Confidence)
	}
	if got.RiskLevel != models.RiskMedium {
		t.Errorf("RiskLevel = %v, want %v", got.RiskLevel, models.RiskMedium)
	}
}

func TestCombineRiskLevelAveraging(t *testing.T) {
	tests := []struct {
		expert models.RiskLevel
		bayes  models.RiskLevel
		want   models.RiskLevel
	}{
		{models.RiskLow, models.RiskLow, models.RiskLow},
		{models.RiskLow, models.RiskMedium, models.RiskLow},     // 1.5 rounds down
		{models.RiskLow, models.RiskHigh, models.RiskMedium},    // 2.0
		{models.RiskMedium, models.RiskHigh, models.RiskMedium}, // 2.5 rounds down
		{models.RiskHigh, models.RiskHigh, models.RiskHigh},
	}
	for _, tt := range tests {
		expert := Result{OverallRisk: tt.expert, Recommendation: models.RecommendSafe}
		bayes := RiskAssessment{RiskLevel: tt.bayes, Confidence: 0.5, Recommendation: "safe"}
		if got := Combine(expert, bayes).RiskLevel; got != tt.want {
			t.Errorf("Combine(%v, %v).RiskLevel = %v, want %v", tt.expert, tt.bayes, got, tt.want)
		}
	}
}

func TestCombineReasoningOrder(t *testing.T) {
	expert := Result{
		OverallRisk:    models.RiskLow,
		Recommendation: models.RecommendSafe,
		RiskFactors:    []string{"Playing away game without rest"},
		SafeFactors:    []string{"Favorable matchup against struggling opponent"},
	}
	bayes := RiskAssessment{RiskLevel: models.RiskLow, Confidence: 0.7, Recommendation: "safe"}

	got := Combine(expert, bayes)

	want := []string{
		"Playing away game without rest",
		"Favorable matchup against struggling opponent",
		"Bayesian analysis: low risk (70.0% confidence)",
	}
	if len(got.Reasoning) != len(want) {
		t.Fatalf("Reasoning = %v, want %v", got.Reasoning, want)
	}
	for i := range want {
		if got.Reasoning[i] != want[i] {
			t.Errorf("Reasoning[%d] = %q, want %q", i, got.Reasoning[i], want[i])
		}
	}
}
