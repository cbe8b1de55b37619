package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Periods(sales, profit aggregating.Aggregator, defaults Defaults) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(sales, profit, defaults),
		},
	}
}

func Sales(service aggregating.Aggregator, defaults Defaults) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/aggregates",
			Method:  http.MethodGet,
			Handler: GetSalesAggregates(service, defaults),
		},
		{
			Path:    "/v1/sales/series",
			Method:  http.MethodGet,
			Handler: GetSalesSeries(service, defaults),
		},
	}
}

func Charts(sales aggregating.Aggregator, profit aggregating.Aggregator, charter charting.Charter, defaults Defaults) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/sales",
			Method:  http.MethodGet,
			Handler: GetSalesChart(sales, charter, defaults),
		},
		{
			Path:    "/v1/charts/profit",
			Method:  http.MethodGet,
			Handler: GetProfitChart(profit, charter, defaults),
		},
	}
}

func Dashboards(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboards",
			Method:  http.MethodPost,
			Handler: CreateDashboard(service),
		},
		{
			Path:    "/v1/dashboards/:id",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboards/:id/year",
			Method:  http.MethodPut,
			Handler: SelectDashboardYear(service),
		},
		{
			Path:    "/v1/dashboards/:id/timeframe",
			Method:  http.MethodPut,
			Handler: SelectDashboardTimeFrame(service),
		},
		{
			Path:    "/v1/dashboards/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDashboard(service),
		},
	}
}

func Page(service aggregating.Aggregator, defaults Defaults) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, defaults),
		},
	}
}

func CronJobs(cleanup *scheduler.SessionCleanupService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(cleanup),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(cleanup),
		},
	}
}
