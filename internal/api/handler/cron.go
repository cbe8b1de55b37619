package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobTypeSessionCleanup é a única rotina agendada do dashboard
const CronJobTypeSessionCleanup = "session-cleanup"

// RunCronJob executa manualmente uma rotina agendada
func RunCronJob(cleanup *scheduler.SessionCleanupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType != CronJobTypeSessionCleanup {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", []string{CronJobTypeSessionCleanup})
			return
		}

		removed := cleanup.RunCleanup()
		if removed < 0 {
			writeJSON(w, logger, http.StatusAccepted, map[string]any{
				"message": "Cron job já em andamento",
				"type":    cronType,
			})
			return
		}

		logger.WithField("removed", removed).Info("cron: limpeza manual executada")

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
			"removed": removed,
		})
	})
}

func GetCronStatus(cleanup *scheduler.SessionCleanupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, map[string]any{
			CronJobTypeSessionCleanup: cleanup.GetStatus(),
		})
	})
}
