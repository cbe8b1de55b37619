package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardPage = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type pageData struct {
	Years            []int
	DefaultYear      int
	DefaultTimeFrame string
	TimeFrames       []string
}

// DashboardPage serve a página com o seletor de ano, os botões de time frame e os dois gráficos
func DashboardPage(service aggregating.Aggregator, defaults Defaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data := pageData{
			Years:            service.AvailableYears(),
			DefaultYear:      defaults.Year,
			DefaultTimeFrame: string(defaults.TimeFrame),
		}
		for _, frame := range domain.TimeFrames() {
			data.TimeFrames = append(data.TimeFrames, string(frame))
		}

		var buf bytes.Buffer
		if err := dashboardPage.Execute(&buf, data); err != nil {
			logger.WithError(err).Error("erro ao renderizar página do dashboard")
			http.Error(w, "Erro ao renderizar página", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})
}
