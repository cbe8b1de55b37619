package domain

// AvailablePeriods representa as opções de seleção disponíveis no dashboard
type AvailablePeriods struct {
	Years                []int       `json:"years"`
	TimeFrames           []TimeFrame `json:"timeframes"`
	DefaultYear          int         `json:"default_year"`
	DefaultTimeFrame     TimeFrame   `json:"default_timeframe"`
	SkippedRecords       int         `json:"skipped_records"`
	ProfitSkippedRecords int         `json:"profit_skipped_records"`
}
