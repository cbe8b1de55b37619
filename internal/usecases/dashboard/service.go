package dashboard

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// DashboardService guarda o estado de seleção de cada dashboard aberto.
// Trocar o ano recalcula todos os agregados; trocar o time frame apenas
// escolhe outra visão já calculada.
type DashboardService interface {
	Create(year int, frame domain.TimeFrame) (*domain.Dashboard, error)
	Get(id string) (*domain.Dashboard, error)
	SelectYear(id string, year int) (*domain.Dashboard, error)
	SelectTimeFrame(id string, frame domain.TimeFrame) (*domain.Dashboard, error)
	View(id string) (*domain.DashboardView, error)
	Delete(id string) error
	PurgeIdle(maxIdle time.Duration) int
	Count() int
}

type Service struct {
	sales            aggregating.Aggregator
	profit           aggregating.Aggregator
	charter          charting.Charter
	defaultYear      int
	defaultTimeFrame domain.TimeFrame
	fillWeeks        bool
	generateID       func() (string, error)
	now              func() time.Time

	mu         sync.RWMutex
	dashboards map[string]*domain.Dashboard
}

func NewService(
	sales aggregating.Aggregator,
	profit aggregating.Aggregator,
	charter charting.Charter,
	cfg *config.Config,
) DashboardService {
	return &Service{
		sales:            sales,
		profit:           profit,
		charter:          charter,
		defaultYear:      sales.DefaultYear(cfg.Dashboard.DefaultYear),
		defaultTimeFrame: cfg.DefaultTimeFrame(),
		fillWeeks:        cfg.Dashboard.FillEmptyWeeks,
		generateID:       utils.GenerateID,
		now:              time.Now,
		dashboards:       make(map[string]*domain.Dashboard),
	}
}

func (s *Service) Create(year int, frame domain.TimeFrame) (*domain.Dashboard, error) {
	if year == 0 {
		year = s.defaultYear
	}
	if frame == "" {
		frame = s.defaultTimeFrame
	}
	frame, err := domain.ParseTimeFrame(string(frame))
	if err != nil {
		return nil, err
	}

	salesAggs, profitAggs, err := s.aggregate(year)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID do dashboard")
		return nil, NewDashboardError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	now := s.now()
	dashboard := &domain.Dashboard{
		ID:             id,
		Year:           year,
		TimeFrame:      frame,
		FillWeeks:      s.fillWeeks,
		Sales:          salesAggs,
		Profit:         profitAggs,
		Recomputations: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.dashboards[id] = dashboard
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"dashboard_id": id,
		"year":         year,
		"timeframe":    frame,
	}).Info("Dashboard criado")

	copied := *dashboard
	return &copied, nil
}

func (s *Service) Get(id string) (*domain.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dashboard, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	copied := *dashboard
	return &copied, nil
}

// SelectYear recalcula vendas e lucro para o novo ano
func (s *Service) SelectYear(id string, year int) (*domain.Dashboard, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	// o cálculo roda fora do lock; agregados são imutáveis depois de prontos
	salesAggs, profitAggs, err := s.aggregate(year)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dashboard, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	dashboard.Year = year
	dashboard.Sales = salesAggs
	dashboard.Profit = profitAggs
	dashboard.Recomputations++
	dashboard.UpdatedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"dashboard_id":   id,
		"year":           year,
		"recomputations": dashboard.Recomputations,
	}).Debug("Ano do dashboard alterado")

	copied := *dashboard
	return &copied, nil
}

// SelectTimeFrame apenas troca a visão exibida; os agregados não mudam
func (s *Service) SelectTimeFrame(id string, frame domain.TimeFrame) (*domain.Dashboard, error) {
	frame, err := domain.ParseTimeFrame(string(frame))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dashboard, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	dashboard.TimeFrame = frame
	dashboard.UpdatedAt = s.now()

	copied := *dashboard
	return &copied, nil
}

func (s *Service) View(id string) (*domain.DashboardView, error) {
	dashboard, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	salesChart, err := s.charter.SalesAreaChart(dashboard.Sales, dashboard.TimeFrame, dashboard.FillWeeks)
	if err != nil {
		return nil, err
	}

	profitChart, err := s.charter.ProfitBarChart(dashboard.Profit)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardView{
		ID:             dashboard.ID,
		Year:           dashboard.Year,
		TimeFrame:      dashboard.TimeFrame,
		FillWeeks:      dashboard.FillWeeks,
		Recomputations: dashboard.Recomputations,
		SalesChart:     salesChart,
		ProfitChart:    profitChart,
		CreatedAt:      dashboard.CreatedAt,
		UpdatedAt:      dashboard.UpdatedAt,
	}, nil
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}

	delete(s.dashboards, id)
	logrus.WithField("dashboard_id", id).Info("Dashboard removido")
	return nil
}

// PurgeIdle remove os dashboards sem alteração há mais de maxIdle e retorna quantos saíram
func (s *Service) PurgeIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, dashboard := range s.dashboards {
		if dashboard.UpdatedAt.Before(cutoff) {
			delete(s.dashboards, id)
			removed++
		}
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(s.dashboards),
		}).Info("Dashboards ociosos removidos")
	}
	return removed
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dashboards)
}

// lookup exige o lock já adquirido pelo chamador
func (s *Service) lookup(id string) (*domain.Dashboard, error) {
	if id == "" {
		return nil, NewDashboardError(ErrDashboardIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	dashboard, exists := s.dashboards[id]
	if !exists {
		return nil, NewDashboardErrorWithID(ErrDashboardNotFound, apiErrors.ErrDashboardNotFound, id, id)
	}
	return dashboard, nil
}

// aggregate calcula vendas e lucro do ano. O ano precisa existir no dataset de
// vendas; se o dataset de lucro não tiver o ano, o gráfico de lucro fica zerado.
func (s *Service) aggregate(year int) (*domain.Aggregates, *domain.Aggregates, error) {
	salesAggs, err := s.sales.AggregateYear(year)
	if err != nil {
		return nil, nil, err
	}

	profitAggs, err := s.profit.AggregateYear(year)
	if errors.Is(err, aggregating.ErrYearNotAvailable) {
		logrus.WithField("year", year).Warn("Ano sem dados de lucro, usando agregados zerados")
		profitAggs = aggregating.Aggregate(nil, year)
	} else if err != nil {
		return nil, nil, err
	}

	return salesAggs, profitAggs, nil
}
