package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetAvailablePeriods retorna os anos e time frames que o dashboard aceita,
// junto com os registros descartados na carga de cada dataset
func GetAvailablePeriods(sales, profit aggregating.Aggregator, defaults Defaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods := &domain.AvailablePeriods{
			Years:                sales.AvailableYears(),
			TimeFrames:           domain.TimeFrames(),
			DefaultYear:          defaults.Year,
			DefaultTimeFrame:     defaults.TimeFrame,
			SkippedRecords:       len(sales.SkippedRecords()),
			ProfitSkippedRecords: len(profit.SkippedRecords()),
		}

		logger.WithFields(log.Fields{
			"years":                  periods.Years,
			"skipped_records":        periods.SkippedRecords,
			"profit_skipped_records": periods.ProfitSkippedRecords,
		}).Debug("periods: períodos disponíveis recuperados")

		writeJSON(w, logger, http.StatusOK, periods)
	})
}
