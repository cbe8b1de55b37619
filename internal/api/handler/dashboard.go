package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CreateDashboard abre um novo estado de seleção; ano e time frame são opcionais
func CreateDashboard(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateDashboardRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
				return
			}
		}

		created, err := service.Create(req.Year, domain.TimeFrame(req.TimeFrame))
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		view, err := service.View(created.ID)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"dashboard_id": view.ID,
			"year":         view.Year,
			"timeframe":    view.TimeFrame,
		}).Info("dashboard: criado")

		writeJSON(w, logger, http.StatusCreated, view)
	})
}

func GetDashboard(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		view, err := service.View(id)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, view)
	})
}

// SelectDashboardYear troca o ano e recalcula os agregados
func SelectDashboardYear(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.SelectYearRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Year == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o ano", nil)
			return
		}

		if _, err := service.SelectYear(id, req.Year); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		view, err := service.View(id)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"dashboard_id": id,
			"year":         req.Year,
		}).Info("dashboard: ano alterado")

		writeJSON(w, logger, http.StatusOK, view)
	})
}

// SelectDashboardTimeFrame troca apenas a visão exibida
func SelectDashboardTimeFrame(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.SelectTimeFrameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.TimeFrame == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o time frame", domain.TimeFrames())
			return
		}

		if _, err := service.SelectTimeFrame(id, domain.TimeFrame(req.TimeFrame)); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		view, err := service.View(id)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, view)
	})
}

func DeleteDashboard(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(id); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
