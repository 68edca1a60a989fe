package handlers

import (
	"context"

	"github.com/hoopsight/risk-api/internal/models"
)

// MockAnalysisService implements logic.AnalysisService for testing
type MockAnalysisService struct {
	AnalyzeFunc func(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, req)
	}
	return &models.AnalysisResponse{}, nil
}

// MockTeamDataService implements logic.TeamDataService for testing
type MockTeamDataService struct {
	GetTeamStatisticsFunc     func(ctx context.Context, team string) (*models.TeamStatistics, error)
	GetUnavailablePlayersFunc func(ctx context.Context, team string) ([]models.PlayerStatus, error)
}

func (m *MockTeamDataService) GetTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error) {
	if m.GetTeamStatisticsFunc != nil {
		return m.GetTeamStatisticsFunc(ctx, team)
	}
	return &models.TeamStatistics{TeamName: team}, nil
}

func (m *MockTeamDataService) RefreshTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error) {
	return m.GetTeamStatistics(ctx, team)
}

func (m *MockTeamDataService) GetUnavailablePlayers(ctx context.Context, team string) ([]models.PlayerStatus, error) {
	if m.GetUnavailablePlayersFunc != nil {
		return m.GetUnavailablePlayersFunc(ctx, team)
	}
	return nil, nil
}

// MockScheduleService implements logic.ScheduleService for testing
type MockScheduleService struct {
	UpcomingGamesFunc func(ctx context.Context) ([]models.GameInfo, error)
}

func (m *MockScheduleService) UpcomingGames(ctx context.Context) ([]models.GameInfo, error) {
	if m.UpcomingGamesFunc != nil {
		return m.UpcomingGamesFunc(ctx)
	}
	return nil, nil
}
