package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// RawSalesRecord é o formato em que os registros aparecem no dataset embutido
type RawSalesRecord struct {
	Date   string
	Amount float64
}

// SalesRecord é um registro validado; nunca é alterado depois da carga
type SalesRecord struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type SkipReason string

const (
	SkipReasonInvalidDate   SkipReason = "invalid_date"
	SkipReasonInvalidAmount SkipReason = "invalid_amount"
)

// SkippedRecord descreve um registro descartado na carga do dataset
type SkippedRecord struct {
	Index  int        `json:"index"`
	Date   string     `json:"date"`
	Reason SkipReason `json:"reason"`
	Error  string     `json:"error,omitempty"`
}

type ParseOptions struct {
	// AllowNegative aceita valores negativos (ex.: prejuízo no dataset de lucro)
	AllowNegative bool
}

type ParsedRecords struct {
	Records []SalesRecord
	Skipped []SkippedRecord
}

// ParseSalesRecords valida o dataset uma única vez. Registros com data ou valor
// inválidos são descartados e listados em Skipped, nunca chegam às somas.
func ParseSalesRecords(raw []RawSalesRecord, opts ParseOptions) *ParsedRecords {
	parsed := &ParsedRecords{
		Records: make([]SalesRecord, 0, len(raw)),
		Skipped: make([]SkippedRecord, 0),
	}

	for i, item := range raw {
		date, err := utils.ParseCalendarDate(item.Date)
		if err != nil {
			parsed.Skipped = append(parsed.Skipped, SkippedRecord{
				Index:  i,
				Date:   item.Date,
				Reason: SkipReasonInvalidDate,
				Error:  err.Error(),
			})
			continue
		}

		if math.IsNaN(item.Amount) || math.IsInf(item.Amount, 0) || (item.Amount < 0 && !opts.AllowNegative) {
			parsed.Skipped = append(parsed.Skipped, SkippedRecord{
				Index:  i,
				Date:   item.Date,
				Reason: SkipReasonInvalidAmount,
			})
			continue
		}

		parsed.Records = append(parsed.Records, SalesRecord{
			Date:   date,
			Amount: decimal.NewFromFloat(item.Amount),
		})
	}

	return parsed
}
