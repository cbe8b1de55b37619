package domain

import "time"

// Dashboard é o estado de seleção (ano e time frame) de um dashboard aberto
type Dashboard struct {
	ID        string
	Year      int
	TimeFrame TimeFrame
	FillWeeks bool
	Sales     *Aggregates
	Profit    *Aggregates
	// Recomputations conta quantas vezes os agregados foram recalculados
	Recomputations int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DashboardView struct {
	ID             string       `json:"id"`
	Year           int          `json:"year"`
	TimeFrame      TimeFrame    `json:"timeframe"`
	FillWeeks      bool         `json:"fill_weeks"`
	Recomputations int          `json:"recomputations"`
	SalesChart     *ChartConfig `json:"sales_chart"`
	ProfitChart    *ChartConfig `json:"profit_chart"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type CreateDashboardRequest struct {
	Year      int    `json:"year"`
	TimeFrame string `json:"timeframe"`
}

type SelectYearRequest struct {
	Year int `json:"year"`
}

type SelectTimeFrameRequest struct {
	TimeFrame string `json:"timeframe"`
}
