// Package worker implements the background refresh pool that keeps team
// statistics warm. Analyses read from the cache; the pool repays that by
// rebuilding every team's snapshot on a fixed interval so request latency
// never includes a cold rebuild.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/hoopsight/risk-api/internal/logic"
)

// Prometheus metrics
var (
	teamsRefreshed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "risk_api_teams_refreshed_total",
		Help: "Total number of successful team statistic refreshes",
	})

	refreshFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "risk_api_refresh_failed_total",
		Help: "Total number of failed team statistic refreshes",
	})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "risk_api_refresh_duration_seconds",
		Help:    "Duration of a single team refresh",
		Buckets: prometheus.DefBuckets,
	})

	refreshQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "risk_api_refresh_queue_depth",
		Help: "Current depth of the refresh queue",
	})
)

type RefresherConfig struct {
	TeamData    logic.TeamDataService
	Teams       []string
	Interval    time.Duration
	WorkerCount int
	QueueSize   int
	Logger      *zap.Logger
}

// refreshTimeout bounds a single team rebuild so a wedged store call cannot
// stall shutdown drain forever.
const refreshTimeout = 2 * time.Minute

// Refresher fans team names out to a small worker pool on a fixed interval.
type Refresher struct {
	config    RefresherConfig
	queue     chan string
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	schedDone chan struct{}
	logger    *zap.SugaredLogger
}

func NewRefresher(cfg RefresherConfig) *Refresher {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 6 * time.Hour
	}
	if len(cfg.Teams) == 0 {
		cfg.Teams = logic.CanonicalTeams()
	}

	return &Refresher{
		config: cfg,
		queue:  make(chan string, cfg.QueueSize),
		logger: cfg.Logger.Sugar(),
	}
}

// Start launches the workers and the interval scheduler. The first sweep
// begins immediately.
func (r *Refresher) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.schedDone = make(chan struct{})

	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
	go r.schedule()

	r.logger.Infow("Refresh pool started",
		"workers", r.config.WorkerCount,
		"teams", len(r.config.Teams),
		"interval", r.config.Interval,
	)
}

// Stop gracefully shuts down the pool, letting in-flight refreshes finish.
// The scheduler is the only sender, so the queue closes only after it has
// exited.
func (r *Refresher) Stop() {
	r.logger.Info("Stopping refresh pool...")
	r.cancel()
	<-r.schedDone
	close(r.queue)
	r.wg.Wait()
	r.logger.Info("Refresh pool stopped")
}

// QueueDepth returns current queue size
func (r *Refresher) QueueDepth() int {
	return len(r.queue)
}

func (r *Refresher) schedule() {
	defer close(r.schedDone)

	r.sweep()

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.ctx.Done():
			return
		}
	}
}

// sweep enqueues every team once. A full queue skips the remainder of the
// sweep rather than blocking the scheduler; the next tick picks them up.
func (r *Refresher) sweep() {
	for _, team := range r.config.Teams {
		select {
		case r.queue <- team:
			refreshQueueDepth.Set(float64(len(r.queue)))
		case <-r.ctx.Done():
			return
		default:
			r.logger.Warnw("Refresh queue full, skipping rest of sweep", "depth", len(r.queue))
			return
		}
	}
}

func (r *Refresher) worker(id int) {
	defer r.wg.Done()

	for team := range r.queue {
		refreshQueueDepth.Set(float64(len(r.queue)))

		// Not derived from r.ctx so drained items still refresh after Stop.
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		start := time.Now()
		_, err := r.config.TeamData.RefreshTeamStatistics(ctx, team)
		refreshDuration.Observe(time.Since(start).Seconds())
		cancel()

		if err != nil {
			refreshFailed.Inc()
			r.logger.Warnw("Team refresh failed", "worker", id, "team", team, "error", err)
			continue
		}
		teamsRefreshed.Inc()
	}
}
