package utils

import "github.com/shopspring/decimal"

// DecimalToFloat converte sem arredondar, para que a soma dos buckets continue
// igual ao total na resposta. Arredondamento só no total formatado.
func DecimalToFloat(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}

	return d.InexactFloat64()
}

func DecimalsToFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = DecimalToFloat(v)
	}
	return out
}
