package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// SessionStore é a parte do serviço de dashboards que a limpeza precisa
type SessionStore interface {
	PurgeIdle(maxIdle time.Duration) int
	Count() int
}

// SessionCleanupConfig representa a configuração do agendador de limpeza
type SessionCleanupConfig struct {
	CronSchedule string
	IdleTTL      time.Duration
	Enabled      bool
}

// SessionCleanupService remove periodicamente os dashboards ociosos da memória
type SessionCleanupService struct {
	scheduler          *gocron.Scheduler
	config             SessionCleanupConfig
	store              SessionStore
	now                func() time.Time
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRemoved        int
	totalRemoved       int
}

func NewSessionCleanupService(store SessionStore, appConfig *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: appConfig.Session.CleanupCron,
		IdleTTL:      appConfig.Session.IdleTTL,
		Enabled:      appConfig.Session.CleanupEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"idle_ttl":      cleanupConfig.IdleTTL.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de dashboards carregada")

	return &SessionCleanupService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cleanupConfig,
		store:     store,
		now:       time.Now,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto for cancelado
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de dashboards ociosos desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de dashboards: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de dashboards")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup executa uma rodada de limpeza; retorna -1 se outra rodada já estiver em andamento
func (s *SessionCleanupService) RunCleanup() int {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de dashboards já em andamento, ignorando")
		return -1
	}
	s.cleanupRunning = true
	s.lastRunStartedAt = s.now()
	s.cleanupMutex.Unlock()

	removed := s.store.PurgeIdle(s.config.IdleTTL)

	s.cleanupMutex.Lock()
	s.cleanupRunning = false
	s.lastRunCompletedAt = s.now()
	s.lastRemoved = removed
	s.totalRemoved += removed
	s.cleanupMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.store.Count(),
	}).Debug("Limpeza de dashboards concluída")

	return removed
}

// GetStatus retorna o status atual da limpeza
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_running":       s.cleanupRunning,
		"cleanup_cron":          s.config.CronSchedule,
		"cleanup_enabled":       s.config.Enabled,
		"idle_ttl":              s.config.IdleTTL.String(),
		"open_dashboards":       s.store.Count(),
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_removed":          s.lastRemoved,
		"total_removed":         s.totalRemoved,
	}
}
