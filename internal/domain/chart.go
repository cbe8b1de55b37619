package domain

// ChartSeries segue o formato de séries do componente de gráficos do front
type ChartSeries struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type ChartSummary struct {
	Year           int       `json:"year"`
	TimeFrame      TimeFrame `json:"timeframe"`
	Total          float64   `json:"total"`
	TotalFormatted string    `json:"total_formatted"`
	RecordCount    int       `json:"record_count"`
	Buckets        int       `json:"buckets"`
}

// ChartConfig é entregue ao renderizador externo sem ser inspecionado depois
type ChartConfig struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Categories []string       `json:"categories"`
	Series     []ChartSeries  `json:"series"`
	Options    map[string]any `json:"options"`
	Summary    ChartSummary   `json:"summary"`
}
