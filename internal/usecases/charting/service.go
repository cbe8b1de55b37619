package charting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	SalesChartTitle  = "Total Sales"
	ProfitChartTitle = "Profit"
)

// Charter converte agregados na configuração entregue ao componente de gráficos
type Charter interface {
	SalesAreaChart(aggs *domain.Aggregates, frame domain.TimeFrame, fillWeeks bool) (*domain.ChartConfig, error)
	ProfitBarChart(aggs *domain.Aggregates) (*domain.ChartConfig, error)
}

type Service struct {
	salesColor  string
	profitColor string
	printer     *message.Printer
}

func NewService(cfg *config.Config) Charter {
	tag, err := language.Parse(cfg.Chart.NumberLocale)
	if err != nil {
		logrus.WithError(err).Warnf("Locale inválido: %s, usando 'en-US'", cfg.Chart.NumberLocale)
		tag = language.AmericanEnglish
	}

	return &Service{
		salesColor:  cfg.Chart.SalesColor,
		profitColor: cfg.Chart.ProfitColor,
		printer:     message.NewPrinter(tag),
	}
}

func (s *Service) SalesAreaChart(aggs *domain.Aggregates, frame domain.TimeFrame, fillWeeks bool) (*domain.ChartConfig, error) {
	if aggs == nil {
		return nil, aggregating.ErrNilAggregates
	}

	series, err := aggregating.BuildSeries(aggs, frame, fillWeeks)
	if err != nil {
		return nil, err
	}

	return &domain.ChartConfig{
		Type:       "area",
		Title:      SalesChartTitle,
		Categories: series.Labels,
		Series: []domain.ChartSeries{
			{Name: SalesChartTitle, Data: utils.DecimalsToFloats(series.Values)},
		},
		Options: map[string]any{
			"chart":  map[string]any{"type": "area", "toolbar": map[string]any{"show": false}, "offsetY": 10},
			"stroke": map[string]any{"curve": "straight"},
			"colors": []string{s.salesColor},
			"fill": map[string]any{
				"type": "gradient",
				"gradient": map[string]any{
					"shadeIntensity": 1,
					"opacityFrom":    0.9,
					"opacityTo":      0.5,
					"stops":          []int{0, 75, 100},
				},
			},
			"xaxis":      map[string]any{"categories": series.Labels},
			"dataLabels": map[string]any{"enabled": false},
			"tooltip":    map[string]any{"theme": "light"},
			"markers":    map[string]any{"size": 4, "hover": map[string]any{"size": 8}},
		},
		Summary: s.summary(aggs, frame, len(series.Values)),
	}, nil
}

// ProfitBarChart mostra o lucro mensal do ano, uma barra por mês
func (s *Service) ProfitBarChart(aggs *domain.Aggregates) (*domain.ChartConfig, error) {
	if aggs == nil {
		return nil, aggregating.ErrNilAggregates
	}

	categories := make([]string, domain.MonthsPerYear)
	for i := range categories {
		categories[i] = time.Month(i + 1).String()[:3]
	}

	return &domain.ChartConfig{
		Type:       "bar",
		Title:      ProfitChartTitle,
		Categories: categories,
		Series: []domain.ChartSeries{
			{Name: ProfitChartTitle, Data: utils.DecimalsToFloats(aggs.Monthly)},
		},
		Options: map[string]any{
			"chart":       map[string]any{"type": "bar", "toolbar": map[string]any{"show": false}, "offsetY": 10},
			"colors":      []string{s.profitColor},
			"plotOptions": map[string]any{"bar": map[string]any{"borderRadius": 4, "columnWidth": "55%"}},
			"xaxis":       map[string]any{"categories": categories},
			"dataLabels":  map[string]any{"enabled": false},
			"tooltip":     map[string]any{"theme": "light"},
		},
		Summary: s.summary(aggs, domain.TimeFrameMonthly, domain.MonthsPerYear),
	}, nil
}

func (s *Service) summary(aggs *domain.Aggregates, frame domain.TimeFrame, buckets int) domain.ChartSummary {
	return domain.ChartSummary{
		Year:           aggs.Year,
		TimeFrame:      frame,
		Total:          utils.DecimalToFloat(aggs.Total),
		TotalFormatted: s.formatAmount(aggs.Total),
		RecordCount:    aggs.RecordCount,
		Buckets:        buckets,
	}
}

func (s *Service) formatAmount(amount decimal.Decimal) string {
	return s.printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
