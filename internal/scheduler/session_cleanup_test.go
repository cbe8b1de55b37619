package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type fakeStore struct {
	purgeCalls []time.Duration
	removed    int
	open       int
}

func (s *fakeStore) PurgeIdle(maxIdle time.Duration) int {
	s.purgeCalls = append(s.purgeCalls, maxIdle)
	s.open -= s.removed
	return s.removed
}

func (s *fakeStore) Count() int {
	return s.open
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		Session: config.Session{
			CleanupEnabled: enabled,
			CleanupCron:    "*/10 * * * *",
			IdleTTL:        2 * time.Hour,
		},
	}
}

func TestSessionCleanupService_RunCleanup(t *testing.T) {
	store := &fakeStore{removed: 3, open: 5}
	service := NewSessionCleanupService(store, newTestConfig(true))

	removed := service.RunCleanup()

	assert.Equal(t, 3, removed)
	assert.Equal(t, []time.Duration{2 * time.Hour}, store.purgeCalls)

	status := service.GetStatus()
	assert.Equal(t, false, status["cleanup_running"])
	assert.Equal(t, 3, status["last_removed"])
	assert.Equal(t, 3, status["total_removed"])
	assert.Equal(t, 2, status["open_dashboards"])
	assert.Equal(t, "2h0m0s", status["idle_ttl"])

	store.removed = 1
	service.RunCleanup()
	assert.Equal(t, 4, service.GetStatus()["total_removed"])
}

func TestSessionCleanupService_SkipsWhenRunning(t *testing.T) {
	store := &fakeStore{}
	service := NewSessionCleanupService(store, newTestConfig(true))
	service.cleanupRunning = true

	assert.Equal(t, -1, service.RunCleanup())
	assert.Empty(t, store.purgeCalls)
}

func TestSessionCleanupService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := NewSessionCleanupService(&fakeStore{}, newTestConfig(false))

		assert.NoError(t, service.Start(context.Background()))
		assert.Equal(t, 0, service.scheduler.Len())
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		cfg := newTestConfig(true)
		cfg.Session.CleanupCron = "não é cron"
		service := NewSessionCleanupService(&fakeStore{}, cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Habilitado agenda e para com o contexto", func(t *testing.T) {
		service := NewSessionCleanupService(&fakeStore{}, newTestConfig(true))
		ctx, cancel := context.WithCancel(context.Background())

		assert.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, service.scheduler.Len())
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
