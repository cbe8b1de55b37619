package aggregating

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FilterByYear mantém apenas os registros cuja data de calendário cai no ano
func FilterByYear(records []domain.SalesRecord, year int) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if record.Date.Year() == year {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// WeeklyBuckets soma por número de semana ISO-8601 (semana que contém a
// quinta-feira da data). Só o número da semana é chave: datas do início de
// janeiro podem cair na semana 52/53 e as do fim de dezembro na semana 1.
// Semanas sem registros não aparecem no resultado.
func WeeklyBuckets(records []domain.SalesRecord) []domain.WeekBucket {
	sums := make(map[int]decimal.Decimal)
	for _, record := range records {
		_, week := record.Date.ISOWeek()
		sums[week] = sums[week].Add(record.Amount)
	}

	weeks := make([]int, 0, len(sums))
	for week := range sums {
		weeks = append(weeks, week)
	}
	slices.Sort(weeks)

	buckets := make([]domain.WeekBucket, len(weeks))
	for i, week := range weeks {
		buckets[i] = domain.WeekBucket{Week: week, Amount: sums[week]}
	}
	return buckets
}

// MonthlyBuckets sempre devolve 12 posições, zero para meses sem registros
func MonthlyBuckets(records []domain.SalesRecord) []decimal.Decimal {
	months := zeros(domain.MonthsPerYear)
	for _, record := range records {
		idx := int(record.Date.Month()) - 1
		months[idx] = months[idx].Add(record.Amount)
	}
	return months
}

// QuarterlyBuckets deriva os trimestres somando os meses de três em três
func QuarterlyBuckets(monthly []decimal.Decimal) []decimal.Decimal {
	quarters := zeros(domain.QuartersPerYear)
	for monthIndex, amount := range monthly {
		if monthIndex >= domain.MonthsPerYear {
			break
		}
		quarters[monthIndex/3] = quarters[monthIndex/3].Add(amount)
	}
	return quarters
}

// FillWeeks preenche com zero as semanas ausentes entre a semana 1 e a maior presente
func FillWeeks(weekly []domain.WeekBucket) []domain.WeekBucket {
	if len(weekly) == 0 {
		return []domain.WeekBucket{}
	}

	lastWeek := weekly[len(weekly)-1].Week
	filled := make([]domain.WeekBucket, lastWeek)
	for i := range filled {
		filled[i] = domain.WeekBucket{Week: i + 1, Amount: decimal.Zero}
	}
	for _, bucket := range weekly {
		filled[bucket.Week-1] = bucket
	}
	return filled
}

// Aggregate filtra pelo ano e calcula as três visões de uma vez
func Aggregate(records []domain.SalesRecord, year int) *domain.Aggregates {
	filtered := FilterByYear(records, year)

	total := decimal.Zero
	for _, record := range filtered {
		total = total.Add(record.Amount)
	}

	monthly := MonthlyBuckets(filtered)

	return &domain.Aggregates{
		Year:        year,
		Weekly:      WeeklyBuckets(filtered),
		Monthly:     monthly,
		Quarterly:   QuarterlyBuckets(monthly),
		Total:       total,
		RecordCount: len(filtered),
	}
}

// BuildSeries escolhe a visão pré-calculada do time frame, sem recalcular nada
func BuildSeries(aggs *domain.Aggregates, frame domain.TimeFrame, fillWeeks bool) (*domain.Series, error) {
	series := &domain.Series{Year: aggs.Year, TimeFrame: frame}

	switch frame {
	case domain.TimeFrameWeekly:
		weekly := aggs.Weekly
		if fillWeeks {
			weekly = FillWeeks(weekly)
		}
		series.Labels = make([]string, len(weekly))
		series.Values = make([]decimal.Decimal, len(weekly))
		for i, bucket := range weekly {
			series.Labels[i] = fmt.Sprintf("Week %d", bucket.Week)
			series.Values[i] = bucket.Amount
		}
	case domain.TimeFrameMonthly:
		series.Labels = make([]string, domain.MonthsPerYear)
		for i := range series.Labels {
			series.Labels[i] = fmt.Sprintf("Month %d", i+1)
		}
		series.Values = slices.Clone(aggs.Monthly)
	case domain.TimeFrameQuarterly:
		series.Labels = []string{"Q1", "Q2", "Q3", "Q4"}
		series.Values = slices.Clone(aggs.Quarterly)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFrame, frame)
	}

	return series, nil
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
