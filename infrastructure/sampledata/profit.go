package sampledata

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// Profit é o lucro fechado de cada mês; valores negativos são prejuízo.
var Profit = []domain.RawSalesRecord{
	{Date: "2023-01-28", Amount: 120},
	{Date: "2023-02-28", Amount: 2570},
	{Date: "2023-03-28", Amount: 2520},
	{Date: "2023-04-28", Amount: 560},
	{Date: "2023-05-28", Amount: 1500},
	{Date: "2023-06-28", Amount: 90},
	{Date: "2023-07-28", Amount: 2400},
	{Date: "2023-08-28", Amount: -80},
	{Date: "2023-09-28", Amount: 2480},
	{Date: "2023-10-28", Amount: -100},
	{Date: "2023-11-28", Amount: 650},
	{Date: "2023-12-28", Amount: 2140},
	{Date: "2024-01-28", Amount: 2320},
	{Date: "2024-02-28", Amount: 1780},
	{Date: "2024-03-28", Amount: 1200},
	{Date: "2024-04-28", Amount: 1980},
	{Date: "2024-05-28", Amount: 2590},
	{Date: "2024-06-28", Amount: 1920},
	{Date: "2024-07-28", Amount: 1450},
	{Date: "2024-08-28", Amount: 1130},
	{Date: "2024-09-28", Amount: 870},
	{Date: "2024-10-28", Amount: 520},
	{Date: "2024-11-28", Amount: 840},
	{Date: "2024-12-28", Amount: 10},
}
