package models

// Venue designators accepted by the analysis endpoint.
const (
	VenueHome    = "home"
	VenueAway    = "away"
	VenueNeutral = "neutral"
)

// Recommendation is the five-valued final verdict.
type Recommendation string

const (
	RecommendAvoid  Recommendation = "avoid"
	RecommendRisky  Recommendation = "risky"
	RecommendNeutral Recommendation = "neutral"
	RecommendSafe   Recommendation = "safe"
	RecommendHighly Recommendation = "highly_recommended"
)

// RiskLevel is the three-valued overall risk bucket shared by the rule
// engine, the Bayesian model, and the combined verdict.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// BettingAnalysis is the final combined output of one analysis call.
type BettingAnalysis struct {
	Recommendation      Recommendation `json:"recommendation"`
	Confidence          float64        `json:"confidence"`
	RiskLevel           RiskLevel      `json:"risk_level"`
	Reasoning           []string       `json:"reasoning"`
	TriggeredRules      []string       `json:"triggered_rules"`
	BayesianProbability float64        `json:"bayesian_probability"`
}

// AnalysisRequest is the POST /api/v1/analysis body.
type AnalysisRequest struct {
	Team     string `json:"team" validate:"required"`
	Opponent string `json:"opponent"`
	Venue    string `json:"venue" validate:"required,oneof=home away neutral"`
}

// AnalysisResponse wraps the combined verdict with the inputs that produced
// it, so callers can render a full report without extra round trips.
type AnalysisResponse struct {
	AnalysisID string          `json:"analysis_id"`
	Team       *TeamStatistics `json:"team"`
	Opponent   *TeamStatistics `json:"opponent,omitempty"`
	Venue      string          `json:"venue"`
	Rivalry    *RivalryInfo    `json:"rivalry,omitempty"`
	Analysis   BettingAnalysis `json:"analysis"`

	BayesianEvidence      map[string]string  `json:"bayesian_evidence"`
	BayesianProbabilities map[string]float64 `json:"bayesian_probabilities"`
}
