package sampledata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func TestSales_LoadsWithoutSkips(t *testing.T) {
	parsed := domain.ParseSalesRecords(Sales, domain.ParseOptions{})

	assert.Empty(t, parsed.Skipped)
	assert.Len(t, parsed.Records, 48)
}

func TestSales_Totals(t *testing.T) {
	parsed := domain.ParseSalesRecords(Sales, domain.ParseOptions{})

	tests := []struct {
		year      int
		total     float64
		quarterly []float64
	}{
		{year: 2023, total: 87575, quarterly: []float64{21225, 24450, 18800, 23100}},
		{year: 2024, total: 98125, quarterly: []float64{25125, 22700, 24075, 26225}},
	}

	for _, tt := range tests {
		aggs := aggregating.Aggregate(parsed.Records, tt.year)

		assert.Equal(t, tt.total, utils.DecimalToFloat(aggs.Total), "total %d", tt.year)
		assert.Equal(t, tt.quarterly, utils.DecimalsToFloats(aggs.Quarterly), "trimestres %d", tt.year)
		assert.Equal(t, 24, aggs.RecordCount)
	}
}

func TestProfit_KeepsLosses(t *testing.T) {
	parsed := domain.ParseSalesRecords(Profit, domain.ParseOptions{AllowNegative: true})
	require.Empty(t, parsed.Skipped)

	aggs := aggregating.Aggregate(parsed.Records, 2023)
	assert.Equal(t, -80.0, utils.DecimalToFloat(aggs.Monthly[7]))
	assert.Equal(t, -100.0, utils.DecimalToFloat(aggs.Monthly[9]))
	assert.Equal(t, 14850.0, utils.DecimalToFloat(aggs.Total))

	// sem AllowNegative os dois meses de prejuízo são descartados
	strict := domain.ParseSalesRecords(Profit, domain.ParseOptions{})
	assert.Len(t, strict.Skipped, 2)
}
