package aggregating

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var (
	ErrYearNotAvailable = errors.New("ano não disponível no dataset")
	ErrNilAggregates    = errors.New("agregados não informados")
)

// Service implementa Aggregator sobre um repositório de registros
type Service struct {
	name       string
	repository repository.SalesRecordRepository
}

// NewService cria o serviço de agregação de um dataset (ex.: "sales", "profit")
func NewService(name string, repo repository.SalesRecordRepository) Aggregator {
	return &Service{
		name:       name,
		repository: repo,
	}
}

func (s *Service) AvailableYears() []int {
	return s.repository.AvailableYears()
}

func (s *Service) DefaultYear(preferred int) int {
	years := s.repository.AvailableYears()
	if len(years) == 0 {
		return preferred
	}

	if preferred != 0 && slices.Contains(years, preferred) {
		return preferred
	}

	return years[len(years)-1]
}

func (s *Service) SkippedRecords() []domain.SkippedRecord {
	return s.repository.SkippedRecords()
}

func (s *Service) AggregateYear(year int) (*domain.Aggregates, error) {
	if !slices.Contains(s.repository.AvailableYears(), year) {
		return nil, fmt.Errorf("%w: %d", ErrYearNotAvailable, year)
	}

	aggs := Aggregate(s.repository.ListByYear(year), year)

	logrus.WithFields(logrus.Fields{
		"dataset":      s.name,
		"year":         year,
		"records":      aggs.RecordCount,
		"weeks":        len(aggs.Weekly),
		"total_amount": aggs.Total.String(),
	}).Debug("Agregados recalculados")

	return aggs, nil
}

func (s *Service) Series(aggs *domain.Aggregates, frame domain.TimeFrame, fillWeeks bool) (*domain.Series, error) {
	if aggs == nil {
		return nil, ErrNilAggregates
	}
	return BuildSeries(aggs, frame, fillWeeks)
}
