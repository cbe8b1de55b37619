package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregates_ToResponse(t *testing.T) {
	cent := decimal.RequireFromString("0.004")

	tests := []struct {
		name      string
		aggs      *Aggregates
		total     float64
		monthly   []float64
		quarterly []float64
	}{
		{
			name: "Valores inteiros",
			aggs: &Aggregates{
				Year:      2024,
				Weekly:    []WeekBucket{{Week: 1, Amount: decimal.NewFromInt(100)}},
				Monthly:   []decimal.Decimal{decimal.NewFromInt(100), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero},
				Quarterly: []decimal.Decimal{decimal.NewFromInt(100), decimal.Zero, decimal.Zero, decimal.Zero},
				Total:     decimal.NewFromInt(100),
			},
			total:     100,
			monthly:   []float64{100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			quarterly: []float64{100, 0, 0, 0},
		},
		{
			name: "Valores abaixo de um centavo não são arredondados por bucket",
			aggs: &Aggregates{
				Year: 2024,
				Weekly: []WeekBucket{
					{Week: 2, Amount: cent},
					{Week: 6, Amount: cent},
					{Week: 10, Amount: cent},
				},
				Monthly:   []decimal.Decimal{cent, cent, cent, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero},
				Quarterly: []decimal.Decimal{cent.Mul(decimal.NewFromInt(3)), decimal.Zero, decimal.Zero, decimal.Zero},
				Total:     cent.Mul(decimal.NewFromInt(3)),
			},
			total:     0.012,
			monthly:   []float64{0.004, 0.004, 0.004, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			quarterly: []float64{0.012, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.aggs.ToResponse()

			assert.Equal(t, tt.total, resp.Total)
			assert.Equal(t, tt.monthly, resp.Monthly)
			assert.Equal(t, tt.quarterly, resp.Quarterly)

			var monthlySum, weeklySum float64
			for _, v := range resp.Monthly {
				monthlySum += v
			}
			for _, bucket := range resp.Weekly {
				weeklySum += bucket.Amount
			}
			assert.InDelta(t, resp.Total, monthlySum, 1e-9)
			assert.InDelta(t, resp.Total, weeklySum, 1e-9)
		})
	}
}
