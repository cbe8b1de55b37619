package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesChart retorna a configuração do gráfico de área "Total Sales"
func GetSalesChart(service aggregating.Aggregator, charter charting.Charter, defaults Defaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYear(r, defaults.Year)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		frame, err := parseTimeFrame(r, defaults.TimeFrame)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		fill, err := parseBool(r, "fill", defaults.FillWeeks)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro fill inválido. Use true ou false", nil)
			return
		}

		aggs, err := service.AggregateYear(year)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		chart, err := charter.SalesAreaChart(aggs, frame, fill)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, chart)
	})
}

// GetProfitChart retorna a configuração do gráfico de barras "Profit"
func GetProfitChart(service aggregating.Aggregator, charter charting.Charter, defaults Defaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYear(r, defaults.Year)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		aggs, err := service.AggregateYear(year)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		chart, err := charter.ProfitBarChart(aggs)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, chart)
	})
}
