package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hoopsight/risk-api/internal/engine"
	"github.com/hoopsight/risk-api/internal/models"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "risk_api_analyses_total",
		Help: "Completed betting analyses by final recommendation",
	}, []string{"recommendation"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "risk_api_analysis_duration_seconds",
		Help:    "End-to-end analysis latency",
		Buckets: prometheus.DefBuckets,
	})
)

type analysisService struct {
	teams    TeamDataService
	resolver *TeamResolver
	rules    *engine.RuleEngine
	network  *engine.RiskNetwork
	logger   *zap.SugaredLogger
}

func NewAnalysisService(teams TeamDataService, resolver *TeamResolver, logger *zap.Logger) AnalysisService {
	return &analysisService{
		teams:    teams,
		resolver: resolver,
		rules:    engine.NewRuleEngine(),
		network:  engine.NewRiskNetwork(),
		logger:   logger.Sugar(),
	}
}

// Analyze resolves both team names, loads their statistics concurrently and
// runs the rule pass, the network inference and the combiner.
func (s *analysisService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error) {
	start := time.Now()

	team, err := s.resolver.Resolve(req.Team)
	if err != nil {
		return nil, fmt.Errorf("resolving team: %w", err)
	}

	opponent := ""
	if req.Opponent != "" {
		opponent, err = s.resolver.Resolve(req.Opponent)
		if err != nil {
			// Opponent data only enables the comparative rule family;
			// an unknown opponent degrades the analysis instead of
			// failing it.
			s.logger.Warnw("opponent did not resolve, continuing without comparative rules",
				"opponent", req.Opponent, "error", err)
			opponent = ""
		}
	}

	var teamStats, opponentStats *models.TeamStatistics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teamStats, err = s.teams.GetTeamStatistics(gctx, team)
		if err != nil {
			return fmt.Errorf("loading stats for %s: %w", team, err)
		}
		return nil
	})
	if opponent != "" {
		g.Go(func() error {
			stats, err := s.teams.GetTeamStatistics(gctx, opponent)
			if err != nil {
				s.logger.Warnw("opponent stats unavailable", "opponent", opponent, "error", err)
				return nil
			}
			opponentStats = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rivalry *models.RivalryInfo
	if opponent != "" {
		rivalry = CheckRivalry(team, opponent)
	}

	expert := s.rules.Analyze(*teamStats, opponentStats, req.Venue, rivalry)
	bayes, err := s.network.Assess(*teamStats, req.Venue)
	if err != nil {
		return nil, fmt.Errorf("bayesian assessment: %w", err)
	}
	analysis := engine.Combine(expert, bayes)

	analysesTotal.WithLabelValues(string(analysis.Recommendation)).Inc()
	analysisDuration.Observe(time.Since(start).Seconds())
	s.logger.Infow("analysis complete",
		"team", team,
		"opponent", opponent,
		"venue", req.Venue,
		"recommendation", analysis.Recommendation,
		"risk_level", analysis.RiskLevel,
		"confidence", analysis.Confidence,
	)

	resp := &models.AnalysisResponse{
		AnalysisID:            uuid.NewString(),
		Team:                  teamStats,
		Opponent:              opponentStats,
		Venue:                 req.Venue,
		Rivalry:               rivalry,
		Analysis:              analysis,
		BayesianEvidence:      bayes.Evidence.Map(),
		BayesianProbabilities: bayes.Probabilities(),
	}
	return resp, nil
}
