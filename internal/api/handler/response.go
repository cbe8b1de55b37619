package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Defaults são as seleções usadas quando a requisição não informa ano ou time frame
type Defaults struct {
	Year      int
	TimeFrame domain.TimeFrame
	FillWeeks bool
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// writeServiceError traduz erros dos casos de uso para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var dashboardErr *dashboard.DashboardError

	switch {
	case errors.As(err, &dashboardErr):
		if apiErrors.StatusFor(dashboardErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("erro interno no dashboard")
		}
		apiErrors.WriteError(w, dashboardErr.Code, dashboardErr.Error(), nil)
	case errors.Is(err, aggregating.ErrYearNotAvailable):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidTimeFrame):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), domain.TimeFrames())
	default:
		logger.WithError(err).Error("erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

// parseYear lê o parâmetro year; vazio usa o ano padrão
func parseYear(r *http.Request, fallback int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get("year"))
	if value == "" {
		return fallback, nil
	}

	year, err := strconv.Atoi(value)
	if err != nil || len(value) != 4 {
		return 0, errors.New("ano inválido, use formato de quatro dígitos (ex: 2024)")
	}
	return year, nil
}

func parseTimeFrame(r *http.Request, fallback domain.TimeFrame) (domain.TimeFrame, error) {
	value := r.URL.Query().Get("timeframe")
	if value == "" {
		return fallback, nil
	}
	return domain.ParseTimeFrame(value)
}

func parseBool(r *http.Request, name string, fallback bool) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}
