package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/hoopsight/risk-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// TeamDataService assembles per-team statistics from the game log, the
// roster tables and the cache.
type TeamDataService interface {
	GetTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error)
	GetUnavailablePlayers(ctx context.Context, team string) ([]models.PlayerStatus, error)
	RefreshTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error)
}

// AnalysisService runs the full decision pipeline for one request.
type AnalysisService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error)
}

// ScheduleService lists upcoming games from the external feed.
type ScheduleService interface {
	UpcomingGames(ctx context.Context) ([]models.GameInfo, error)
}
