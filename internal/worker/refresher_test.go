package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hoopsight/risk-api/internal/models"
)

// MockTeamDataService counts refresh calls per team
type MockTeamDataService struct {
	mu             sync.Mutex
	Calls          map[string]int
	FailFor        map[string]bool
	CancelledCalls int
	Gate           chan struct{} // when set, every refresh blocks until it closes
}

func NewMockTeamDataService() *MockTeamDataService {
	return &MockTeamDataService{Calls: map[string]int{}, FailFor: map[string]bool{}}
}

func (m *MockTeamDataService) RefreshTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error) {
	m.mu.Lock()
	m.Calls[team]++
	if ctx.Err() != nil {
		m.CancelledCalls++
	}
	fail := m.FailFor[team]
	gate := m.Gate
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if fail {
		return nil, errors.New("clickhouse timeout")
	}
	return &models.TeamStatistics{TeamName: team}, nil
}

func (m *MockTeamDataService) GetTeamStatistics(ctx context.Context, team string) (*models.TeamStatistics, error) {
	return m.RefreshTeamStatistics(ctx, team)
}

func (m *MockTeamDataService) GetUnavailablePlayers(ctx context.Context, team string) ([]models.PlayerStatus, error) {
	return nil, nil
}

func (m *MockTeamDataService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.Calls {
		total += n
	}
	return total
}

func TestRefresherSweepsAllTeams(t *testing.T) {
	teams := []string{"Boston Celtics", "Miami Heat", "Utah Jazz"}
	svc := NewMockTeamDataService()

	r := NewRefresher(RefresherConfig{
		TeamData:    svc,
		Teams:       teams,
		Interval:    time.Hour, // only the initial sweep should run
		WorkerCount: 2,
		QueueSize:   8,
		Logger:      zap.NewNop(),
	})
	r.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for svc.callCount() < len(teams) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	r.Stop()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, team := range teams {
		if svc.Calls[team] != 1 {
			t.Errorf("refreshes for %s = %d, want 1", team, svc.Calls[team])
		}
	}
}

func TestRefresherSurvivesFailures(t *testing.T) {
	teams := []string{"Boston Celtics", "Miami Heat"}
	svc := NewMockTeamDataService()
	svc.FailFor["Boston Celtics"] = true

	r := NewRefresher(RefresherConfig{
		TeamData:    svc,
		Teams:       teams,
		Interval:    time.Hour,
		WorkerCount: 1,
		QueueSize:   4,
		Logger:      zap.NewNop(),
	})
	r.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for svc.callCount() < len(teams) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	r.Stop()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.Calls["Miami Heat"] != 1 {
		t.Errorf("a failing team must not stop the sweep, heat refreshes = %d", svc.Calls["Miami Heat"])
	}
}

func TestStopWhileSweepRunning(t *testing.T) {
	teams := make([]string, 500)
	for i := range teams {
		teams[i] = fmt.Sprintf("Team %03d", i)
	}

	// Stop racing a live sweep must not send on the closed queue.
	for i := 0; i < 25; i++ {
		r := NewRefresher(RefresherConfig{
			TeamData:    NewMockTeamDataService(),
			Teams:       teams,
			Interval:    time.Hour,
			WorkerCount: 4,
			QueueSize:   8,
			Logger:      zap.NewNop(),
		})
		r.Start(context.Background())
		r.Stop()
	}
}

func TestDrainedRefreshesKeepLiveContext(t *testing.T) {
	svc := NewMockTeamDataService()
	svc.Gate = make(chan struct{})

	r := NewRefresher(RefresherConfig{
		TeamData:    svc,
		Teams:       []string{"Boston Celtics", "Miami Heat", "Utah Jazz"},
		Interval:    time.Hour,
		WorkerCount: 1,
		QueueSize:   8,
		Logger:      zap.NewNop(),
	})
	r.Start(context.Background())

	// Wait for the worker to pick up the first team and park on the gate.
	deadline := time.Now().Add(2 * time.Second)
	for svc.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	stopped := make(chan struct{})
	go func() {
		r.Stop()
		close(stopped)
	}()
	time.Sleep(50 * time.Millisecond)
	close(svc.Gate)

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not drain the queue")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.CancelledCalls != 0 {
		t.Errorf("refreshes ran with a cancelled context %d times during drain, want 0", svc.CancelledCalls)
	}
	total := 0
	for _, n := range svc.Calls {
		total += n
	}
	if total != 3 {
		t.Errorf("drained refreshes = %d, want 3", total)
	}
}

func TestRefresherDefaultsToFullLeague(t *testing.T) {
	r := NewRefresher(RefresherConfig{
		TeamData: NewMockTeamDataService(),
		Logger:   zap.NewNop(),
	})
	if len(r.config.Teams) != 30 {
		t.Errorf("default team list = %d entries, want 30", len(r.config.Teams))
	}
}
