package aggregating

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/aggregator.go -package=mocks

// Aggregator define as operações de agregação temporal sobre um dataset
type Aggregator interface {
	// AvailableYears retorna os anos presentes no dataset, em ordem crescente
	AvailableYears() []int

	// DefaultYear retorna o ano preferido se existir no dataset, senão o mais recente
	DefaultYear(preferred int) int

	// SkippedRecords retorna os registros descartados na carga do dataset
	SkippedRecords() []domain.SkippedRecord

	// AggregateYear calcula as visões semanal, mensal e trimestral de um ano
	AggregateYear(year int) (*domain.Aggregates, error)

	// Series escolhe a visão já calculada correspondente ao time frame
	Series(aggs *domain.Aggregates, frame domain.TimeFrame, fillWeeks bool) (*domain.Series, error)
}
