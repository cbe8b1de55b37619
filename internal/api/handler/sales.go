package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesAggregates retorna as três visões do ano e o total
func GetSalesAggregates(service aggregating.Aggregator, defaults Defaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYear(r, defaults.Year)
		if err != nil {
			logger.WithFields(log.Fields{
				"year":  r.URL.Query().Get("year"),
				"error": err.Error(),
			}).Warn("sales: parâmetro year inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		aggs, err := service.AggregateYear(year)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"year":    year,
			"records": aggs.RecordCount,
		}).Info("sales: agregados calculados")

		writeJSON(w, logger, http.StatusOK, aggs.ToResponse())
	})
}

// GetSalesSeries retorna apenas a sequência do time frame pedido
func GetSalesSeries(service aggregating.Aggregator, defaults Defaults) http.Handler {
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

		series, err := service.Series(aggs, frame, fill)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"year":      year,
			"timeframe": frame,
			"buckets":   len(series.Values),
		}).Debug("sales: série gerada")

		writeJSON(w, logger, http.StatusOK, series.ToResponse())
	})
}
