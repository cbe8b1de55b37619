package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	MonthsPerYear   = 12
	QuartersPerYear = 4
)

// WeekBucket é a soma de uma semana ISO; semanas sem registros não existem
type WeekBucket struct {
	Week   int
	Amount decimal.Decimal
}

// Aggregates guarda as três visões pré-calculadas de um ano
type Aggregates struct {
	Year        int
	Weekly      []WeekBucket
	Monthly     []decimal.Decimal // sempre 12 posições
	Quarterly   []decimal.Decimal // sempre 4 posições
	Total       decimal.Decimal
	RecordCount int
}

// Series é a sequência de uma visão pronta para o gráfico
type Series struct {
	Year      int
	TimeFrame TimeFrame
	Labels    []string
	Values    []decimal.Decimal
}

type WeekBucketResponse struct {
	Week   int     `json:"week"`
	Amount float64 `json:"amount"`
}

type AggregatesResponse struct {
	Year        int                  `json:"year"`
	Weekly      []WeekBucketResponse `json:"weekly"`
	Monthly     []float64            `json:"monthly"`
	Quarterly   []float64            `json:"quarterly"`
	Total       float64              `json:"total"`
	RecordCount int                  `json:"record_count"`
}

type SeriesResponse struct {
	Year      int       `json:"year"`
	TimeFrame TimeFrame `json:"timeframe"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
}

func (a *Aggregates) ToResponse() *AggregatesResponse {
	weekly := make([]WeekBucketResponse, len(a.Weekly))
	for i, bucket := range a.Weekly {
		weekly[i] = WeekBucketResponse{Week: bucket.Week, Amount: utils.DecimalToFloat(bucket.Amount)}
	}

	return &AggregatesResponse{
		Year:        a.Year,
		Weekly:      weekly,
		Monthly:     utils.DecimalsToFloats(a.Monthly),
		Quarterly:   utils.DecimalsToFloats(a.Quarterly),
		Total:       utils.DecimalToFloat(a.Total),
		RecordCount: a.RecordCount,
	}
}

func (s *Series) ToResponse() *SeriesResponse {
	return &SeriesResponse{
		Year:      s.Year,
		TimeFrame: s.TimeFrame,
		Labels:    s.Labels,
		Values:    utils.DecimalsToFloats(s.Values),
	}
}
